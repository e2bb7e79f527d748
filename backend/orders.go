package backend

import (
	"context"
	"strconv"

	"github.com/zaliyastore/shopit-gateway/models"
)

// OrderProductRef references one cart line in an order creation request.
type OrderProductRef struct {
	IDs   string `json:"ids"`
	Color string `json:"color,omitempty"`
}

type CreateOrderRequest struct {
	Address        models.OrderAddress   `json:"address"`
	Customer       models.Customer       `json:"customer"`
	DeliveryMethod models.DeliveryMethod `json:"deliveryMethod"`
	Products       []OrderProductRef     `json:"products"`
}

// CreateOrder submits an order. The response carries the computed totals
// and either a hosted payment link or manual-payment instructions.
func (c *Client) CreateOrder(ctx context.Context, token string, req CreateOrderRequest) (models.Order, error) {
	var order models.Order
	_, err := c.post(ctx, "/order/", token, req, &order)
	return order, err
}

func (c *Client) GetOrder(ctx context.Context, token, orderID string) (models.Order, error) {
	var order models.Order
	_, err := c.get(ctx, "/order/"+orderID+"/", token, nil, &order)
	return order, err
}

func (c *Client) GetOrderHistories(ctx context.Context, token string, page int, asAdmin bool) ([]models.Order, error) {
	params := map[string]string{"asAdmin": strconv.FormatBool(asAdmin)}
	if page > 0 {
		params["page"] = strconv.Itoa(page)
	}
	var orders []models.Order
	_, err := c.get(ctx, "/order-histories/", token, params, &orders)
	return orders, err
}

func (c *Client) GetRecentOrders(ctx context.Context, token string) ([]models.Order, error) {
	var orders []models.Order
	_, err := c.get(ctx, "/recent-orders/", token, nil, &orders)
	return orders, err
}

func (c *Client) EditOrder(ctx context.Context, token, orderID string, order models.Order) (models.Order, error) {
	var updated models.Order
	_, err := c.patch(ctx, "/order/"+orderID+"/", token, order, &updated)
	return updated, err
}

func (c *Client) CancelOrder(ctx context.Context, token, orderID string) (models.Order, error) {
	var cancelled models.Order
	_, err := c.patch(ctx, "/cancel-order/"+orderID+"/", token, nil, &cancelled)
	return cancelled, err
}

// SendOrderReminder asks the backend to nudge the customer about an unpaid
// order; returns the upstream confirmation message.
func (c *Client) SendOrderReminder(ctx context.Context, token, orderID string) (string, error) {
	return c.get(ctx, "/order-reminder/"+orderID, token, nil, nil)
}

// ClaimPayment records the customer's assertion that a manual bank
// transfer was made. Verification happens upstream.
func (c *Client) ClaimPayment(ctx context.Context, token, orderID string) error {
	_, err := c.post(ctx, "/user-claims-payment/"+orderID+"/", token, nil, nil)
	return err
}
