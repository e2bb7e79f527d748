package models

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "Pending"
	PaymentPaid    PaymentStatus = "Paid"
	PaymentFailed  PaymentStatus = "Failed"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "Pending"
	OrderShipped   OrderStatus = "Shipped"
	OrderDelivered OrderStatus = "Delivered"
	OrderCancelled OrderStatus = "Cancelled"
)

type DeliveryMethod string

const (
	DeliveryPickUp  DeliveryMethod = "pick_up"
	DeliveryWaybill DeliveryMethod = "waybill"
)

type Customer struct {
	Name        string `json:"name,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Email       string `json:"email"`
	Note        string `json:"note,omitempty"`
}

type OrderAddress struct {
	State   string `json:"state"`
	LGA     string `json:"lga,omitempty"`
	Address string `json:"address,omitempty"`
}

// OrderItem is a catalog product plus the buyer's color preference.
type OrderItem struct {
	Product
	ColorPreference string `json:"colorPrefrence,omitempty"`
}

// Order is owned by the upstream API. TotalAmount is the item subtotal and
// excludes DeliveryFee; the grand total is TotalAmount + DeliveryFee. The
// gateway never computes either field itself.
type Order struct {
	ID             string         `json:"_id"`
	Items          []OrderItem    `json:"items"`
	OrderDate      string         `json:"orderDate"`
	TotalAmount    float64        `json:"totalAmount"`
	DeliveryFee    float64        `json:"deliveryFee"`
	Address        OrderAddress   `json:"address"`
	Customer       Customer       `json:"customer"`
	DeliveryMethod DeliveryMethod `json:"deliveryMethod,omitempty"`
	PaymentStatus  PaymentStatus  `json:"paymentStatus"`
	OrderStatus    OrderStatus    `json:"orderStatus"`
	PaymentLink    string         `json:"paymentLink,omitempty"`
}

// GrandTotal is the amount the customer pays.
func (o Order) GrandTotal() float64 {
	return o.TotalAmount + o.DeliveryFee
}
