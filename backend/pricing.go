package backend

import (
	"context"
	"strconv"
)

// CalculateItemsPrice returns the authoritative subtotal for a set of
// product ids. Quantity is represented by repeating an id, matching the
// upstream contract.
func (c *Client) CalculateItemsPrice(ctx context.Context, productIDs []string) (float64, error) {
	var result struct {
		TotalAmount float64 `json:"totalAmount"`
	}
	_, err := c.post(ctx, "/calculate-items-price/", "", map[string][]string{"productIds": productIDs}, &result)
	return result.TotalAmount, err
}

// CalculateDeliveryFee returns the authoritative delivery fee for a
// destination state and item count.
func (c *Client) CalculateDeliveryFee(ctx context.Context, state string, quantity int) (float64, error) {
	var result struct {
		Price float64 `json:"price"`
	}
	params := map[string]string{
		"state":    state,
		"quantity": strconv.Itoa(quantity),
	}
	_, err := c.get(ctx, "/calculate-delivery-price/", "", params, &result)
	return result.Price, err
}

func (c *Client) GetStates(ctx context.Context) ([]string, error) {
	var states []string
	_, err := c.get(ctx, "/get-states/", "", nil, &states)
	return states, err
}

func (c *Client) GetLGAs(ctx context.Context, state string) ([]string, error) {
	var lgas []string
	_, err := c.get(ctx, "/get-lga/"+state, "", nil, &lgas)
	return lgas, err
}
