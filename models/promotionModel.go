package models

// Promotion is a storewide or per-product discount campaign managed from
// the admin dashboard and applied upstream.
type Promotion struct {
	DiscountPercentage float64  `json:"discountPercentage"`
	ApplicableTo       string   `json:"applicableTo"` // AllProducts | SelectedProducts
	ProductIDs         []string `json:"productIds,omitempty"`
	StartDate          string   `json:"startDate"`
	EndDate            string   `json:"endDate"`
	IsActive           bool     `json:"isActive"`
}

type Banner struct {
	Message     string `json:"message"`
	Description string `json:"description,omitempty"`
	ProductID   string `json:"productId"`
}

// AdminMessage is a broadcast note sent to newsletter subscribers.
type AdminMessage struct {
	ID      string `json:"id,omitempty"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Date    string `json:"date,omitempty"`
}

type DashboardContent struct {
	Revenue                     float64 `json:"revenue"`
	Users                       int     `json:"users"`
	ThisMonthSales              float64 `json:"thisMonthSales"`
	SalesChangePercentage       float64 `json:"salesChangePercentage"`
	ThisMonthUsers              int     `json:"thisMonthUsers"`
	ThisWeekSales               float64 `json:"thisWeekSales"`
	WeeklySalesChangePercentage float64 `json:"weeklySalesChangePercentage"`
}

type SalesPoint struct {
	Name  string  `json:"name"`
	Total float64 `json:"total"`
}

// BankAccount is one of the shop's receiving accounts shown during a
// manual bank-transfer payment.
type BankAccount struct {
	Bank   string `json:"bank"`
	Name   string `json:"name"`
	Number string `json:"number"`
}
