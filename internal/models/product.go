package models

// NutritionalInfo is present for grocery items and null for everything else.
type NutritionalInfo struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
}

// PlatformOffer is one delivery platform's price for a product.
// DeliveryTime is a display string and meaningless when Available is false.
type PlatformOffer struct {
	Platform     string  `json:"platform"`
	Price        float64 `json:"price"`
	Available    bool    `json:"available"`
	DeliveryTime string  `json:"deliveryTime"`
}

// Product is a single catalog entry. The catalog is loaded once at startup
// and never mutated, so products are shared freely across requests.
type Product struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Brand           string           `json:"brand"`
	Category        string           `json:"category"`
	Subcategory     string           `json:"subcategory,omitempty"`
	PackageSize     string           `json:"packageSize"`
	UnitPrice       float64          `json:"unitPrice"`
	Unit            string           `json:"unit"`
	NutritionalInfo *NutritionalInfo `json:"nutritionalInfo"`
	Platforms       []PlatformOffer  `json:"platforms"`
}
