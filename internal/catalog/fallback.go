package catalog

import "github.com/texcare/storefront/internal/models"

// Fallback is the static catalog served when the Admin API is unreachable.
// It mirrors the two live SKUs so the storefront never renders empty.
func Fallback() []models.Product {
	home := 14.90
	homeOriginal := 17.90
	homeDiscount := 17

	return []models.Product{
		{
			ID:            "fallback-texcare-home",
			SKU:           "TC-HOME-500",
			Name:          "TexCare Home 500 ml",
			Description:   "Fabric-care concentrate for household washing machines. Protects fibres and colours across 50 wash cycles.",
			Price:         home,
			OriginalPrice: &homeOriginal,
			Discount:      &homeDiscount,
			Rating:        4.8,
			ReviewCount:   132,
			Volume:        "500 ml",
			Application:   "Household laundry, all fabric types",
			Image:         "/images/texcare-home-500.png",
			Gallery:       []string{"/images/texcare-home-500.png", "/images/texcare-home-500-back.png"},
			Category:      models.CategoryB2C,
			DetailsURL:    "/products/home/texcare-home",
		},
		{
			ID:          "fallback-texcare-pro",
			SKU:         "TC-PRO-5L",
			Name:        "TexCare Pro 5 L",
			Description: "Industrial fabric-care concentrate for commercial laundries and textile services. Dosing instructions included.",
			Price:       89.00,
			Rating:      4.9,
			ReviewCount: 41,
			Volume:      "5 L",
			Application: "Commercial laundry, industrial textile care",
			Image:       "/images/texcare-pro-5l.png",
			Category:    models.CategoryB2B,
			DetailsURL:  "/products/professional/texcare-pro",
		},
	}
}
