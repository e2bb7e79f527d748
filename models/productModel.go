package models

// Product is a catalog entity owned by the upstream commerce API. The
// gateway consumes it read-only; field names mirror the upstream JSON.
type Product struct {
	ID              string   `json:"_id"`
	Name            string   `json:"name"`
	Imgs            []string `json:"imgs"`
	Price           float64  `json:"price"`
	DiscountedPrice float64  `json:"discountedPrice,omitempty"`
	HasDiscount     bool     `json:"hasDiscount"`
	Stock           int      `json:"stock"`
	AvailableColors []string `json:"availableColors"`
	Collection      string   `json:"collection,omitempty"`
	Rating          float64  `json:"rating,omitempty"`
	Description     string   `json:"description,omitempty"`
	IsNew           bool     `json:"isNew,omitempty"`
	CreatedAt       string   `json:"createdAt,omitempty"`
	UpdatedAt       string   `json:"updatedAt,omitempty"`
}

// UnitPrice is the price a single unit sells for, discount applied.
func (p Product) UnitPrice() float64 {
	if p.HasDiscount && p.DiscountedPrice > 0 {
		return p.DiscountedPrice
	}
	return p.Price
}

type Collection struct {
	ID               string `json:"_id,omitempty"`
	Name             string `json:"name"`
	Slug             string `json:"slug"`
	Image            string `json:"image"`
	RemainingInStock int    `json:"remainingInStock"`
	CreatedAt        string `json:"createdAt,omitempty"`
}
