package store

import "github.com/babagsm1/etsdiabalystore/models"

func price(v int64) *int64 { return &v }

const unsplash = "https://images.unsplash.com/"

// DefaultProducts returns a fresh copy of the catalog a new shop starts with.
func DefaultProducts() []models.Product {
	return []models.Product{
		{
			ID:          "1",
			Name:        "MacBook Pro M1",
			Description: "Ordinateur portable Apple avec processeur M1, 8GB RAM, 256GB SSD",
			Price:       675000,
			OldPrice:    price(750000),
			Images: []string{
				unsplash + "photo-1517336714731-489689fd1ca8?auto=format&fit=crop&w=1626&q=80",
				unsplash + "photo-1611186871348-b1ce696e52c9?auto=format&fit=crop&w=1470&q=80",
			},
			Category: "Ordinateurs",
			Featured: true,
			Stock:    10,
		},
		{
			ID:          "2",
			Name:        "iPhone 15 Pro",
			Description: "Smartphone Apple avec écran 6.1\", 256GB de stockage, couleur Titane",
			Price:       550000,
			Images: []string{
				unsplash + "photo-1678685387845-62e21232281e?auto=format&fit=crop&w=774&q=80",
				unsplash + "photo-1592750475338-74b7b21085ab?auto=format&fit=crop&w=1470&q=80",
			},
			Category: "Smartphones",
			Featured: true,
			Stock:    15,
		},
		{
			ID:          "3",
			Name:        "Samsung Galaxy S23 Ultra",
			Description: "Smartphone Samsung avec écran 6.8\", 512GB de stockage, 12GB RAM",
			Price:       480000,
			OldPrice:    price(500000),
			Images: []string{
				unsplash + "photo-1678685387832-a75975c3ca59?auto=format&fit=crop&w=774&q=80",
				unsplash + "photo-1610945415295-d9bbf067e59c?auto=format&fit=crop&w=1471&q=80",
			},
			Category: "Smartphones",
			Featured: true,
			Stock:    8,
		},
		{
			ID:          "4",
			Name:        "Dell XPS 15",
			Description: "Ordinateur portable Dell avec processeur Intel i7, 16GB RAM, 512GB SSD",
			Price:       450000,
			Images: []string{
				unsplash + "photo-1593642632823-8f785ba67e45?auto=format&fit=crop&w=1632&q=80",
				unsplash + "photo-1588872657578-7efd1f1555ed?auto=format&fit=crop&w=1470&q=80",
			},
			Category: "Ordinateurs",
			Stock:    5,
		},
		{
			ID:          "5",
			Name:        "iPad Pro 12.9\"",
			Description: "Tablette Apple avec écran 12.9\", M2 chip, 256GB de stockage",
			Price:       375000,
			Images: []string{
				unsplash + "photo-1544244015-0df4b3ffc6b0?auto=format&fit=crop&w=1633&q=80",
				unsplash + "photo-1589739900575-9ca4f183fefb?auto=format&fit=crop&w=1074&q=80",
			},
			Category: "Tablettes",
			Stock:    12,
		},
		{
			ID:          "6",
			Name:        "AirPods Pro 2",
			Description: "Écouteurs sans fil Apple avec annulation active du bruit",
			Price:       95000,
			Images: []string{
				unsplash + "photo-1606741965429-5a66b36320ae?auto=format&fit=crop&w=1633&q=80",
				unsplash + "photo-1572569511254-d8f925fe2cbb?auto=format&fit=crop&w=1074&q=80",
			},
			Category: "Accessoires",
			Stock:    20,
		},
		{
			ID:          "7",
			Name:        "Sony WH-1000XM5",
			Description: "Casque sans fil Sony avec annulation active du bruit",
			Price:       125000,
			Images: []string{
				unsplash + "photo-1546435770-a3e426bf472b?auto=format&fit=crop&w=1646&q=80",
				unsplash + "photo-1590658268037-6bf12165a8df?auto=format&fit=crop&w=1632&q=80",
			},
			Category: "Accessoires",
			Stock:    7,
		},
		{
			ID:          "8",
			Name:        "Microsoft Surface Laptop 5",
			Description: "Ordinateur portable Microsoft avec processeur Intel i5, 8GB RAM, 256GB SSD",
			Price:       425000,
			Images: []string{
				unsplash + "photo-1661961110372-8a7682543120?auto=format&fit=crop&w=1470&q=80",
				unsplash + "photo-1593642702909-dec73df255d7?auto=format&fit=crop&w=1469&q=80",
			},
			Category: "Ordinateurs",
			Stock:    6,
		},
	}
}

// DefaultTestimonials returns the approved testimonials a new shop starts with.
func DefaultTestimonials() []models.Testimonial {
	return []models.Testimonial{
		{ID: "1", Name: "Yawo Komla", Country: "Togo", Comment: "Produits de qualité et service impeccable ! Je recommande.", Rating: 5, Date: "2024-03-10", Status: models.TestimonialApproved},
		{ID: "2", Name: "Awa Zongo", Country: "Burkina Faso", Comment: "J'ai trouvé tout ce dont j'avais besoin pour mon bureau. Bravo !", Rating: 4, Date: "2024-03-15", Status: models.TestimonialApproved},
		{ID: "3", Name: "Kodjo Tchegan", Country: "Togo", Comment: "Super site avec une bonne interface utilisateur.", Rating: 5, Date: "2024-04-02", Status: models.TestimonialApproved},
		{ID: "4", Name: "Moussa Diabaté", Country: "Bénin", Comment: "Commande rapide et produits authentiques. Merci !", Rating: 4, Date: "2024-04-05", Status: models.TestimonialApproved},
		{ID: "5", Name: "Mariam Sawadogo", Country: "Burkina Faso", Comment: "Service clientèle très réactif, je suis satisfaite.", Rating: 5, Date: "2024-03-20", Status: models.TestimonialApproved},
	}
}
