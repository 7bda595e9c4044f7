package models

type ShopSettings struct {
	General  GeneralSettings  `json:"general"`
	Shipping ShippingSettings `json:"shipping"`
	Payment  PaymentSettings  `json:"payment"`
}

type GeneralSettings struct {
	ShopName               string `json:"shopName"`
	ShopEmail              string `json:"shopEmail"`
	ShopPhone              string `json:"shopPhone"`
	ShopAddress            string `json:"shopAddress"`
	EnableFeaturedProducts bool   `json:"enableFeaturedProducts"`
	EnableTestimonials     bool   `json:"enableTestimonials"`
}

type ShippingSettings struct {
	FreeShippingThreshold int64  `json:"freeShippingThreshold"`
	DeliveryFee           int64  `json:"deliveryFee"`
	EstimatedDeliveryTime string `json:"estimatedDeliveryTime"`
}

type PaymentSettings struct {
	AcceptMobileMoney    bool   `json:"acceptMobileMoney"`
	AcceptCashOnDelivery bool   `json:"acceptCashOnDelivery"`
	AcceptBankTransfer   bool   `json:"acceptBankTransfer"`
	PaymentInstructions  string `json:"paymentInstructions"`
}

type ShopStats struct {
	ProductCount       int   `json:"productCount"`
	PendingOrdersCount int   `json:"pendingOrdersCount"`
	TestimonialCount   int   `json:"testimonialCount"`
	TotalRevenue       int64 `json:"totalRevenue"`
}
