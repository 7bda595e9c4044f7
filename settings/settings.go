// Package settings stores the shop configuration document.
package settings

import (
	"context"
	"log"

	"github.com/babagsm1/etsdiabalystore/models"
	"github.com/babagsm1/etsdiabalystore/store"
)

// Defaults is the configuration of a shop that never saved its settings.
func Defaults() models.ShopSettings {
	return models.ShopSettings{
		General: models.GeneralSettings{
			ShopName:               "ETS DIABALY",
			ShopEmail:              "contact@etsdiabaly.com",
			ShopPhone:              "+228 91 89 45 68",
			ShopAddress:            "Lomé, Togo",
			EnableFeaturedProducts: true,
			EnableTestimonials:     true,
		},
		Shipping: models.ShippingSettings{
			FreeShippingThreshold: 100000,
			DeliveryFee:           5000,
			EstimatedDeliveryTime: "2-5 jours",
		},
		Payment: models.PaymentSettings{
			AcceptMobileMoney:    true,
			AcceptCashOnDelivery: true,
			AcceptBankTransfer:   false,
			PaymentInstructions:  "Les détails de paiement vous seront envoyés par email après confirmation de la commande.",
		},
	}
}

type Service struct {
	store *store.Store
}

func NewService(s *store.Store) *Service {
	return &Service{store: s}
}

func (s *Service) Get(ctx context.Context) (models.ShopSettings, error) {
	return store.Load(ctx, s.store, store.SettingsKey, Defaults)
}

// Save replaces the whole settings document.
func (s *Service) Save(ctx context.Context, settings models.ShopSettings) error {
	if err := store.Save(ctx, s.store, store.SettingsKey, settings); err != nil {
		return err
	}
	log.Printf("Saved shop settings for %s", settings.General.ShopName)
	return nil
}

// DeliveryFee is the shipping fee for an order subtotal: free at or above the
// threshold, the flat fee otherwise.
func DeliveryFee(cfg models.ShippingSettings, subtotal int64) int64 {
	if cfg.FreeShippingThreshold > 0 && subtotal >= cfg.FreeShippingThreshold {
		return 0
	}
	return cfg.DeliveryFee
}
