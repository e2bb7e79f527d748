package backend

import (
	"context"

	"github.com/zaliyastore/shopit-gateway/models"
)

func (c *Client) GetDashboardContent(ctx context.Context, token string) (models.DashboardContent, error) {
	var content models.DashboardContent
	_, err := c.get(ctx, "/dashboard-content/", token, nil, &content)
	return content, err
}

func (c *Client) GetSalesOverview(ctx context.Context, token string) ([]models.SalesPoint, error) {
	var overview []models.SalesPoint
	_, err := c.get(ctx, "/sales-overview/", token, nil, &overview)
	return overview, err
}

// UpsertProduct creates a product, or edits one when editMode is set.
func (c *Client) UpsertProduct(ctx context.Context, token string, product models.Product, editMode bool, productID string) (string, error) {
	body := struct {
		models.Product
		EditMode  bool   `json:"editMode,omitempty"`
		ProductID string `json:"productId,omitempty"`
	}{Product: product, EditMode: editMode, ProductID: productID}
	return c.post(ctx, "/product/", token, body, nil)
}

func (c *Client) DeleteProduct(ctx context.Context, token, productID string) (string, error) {
	return c.delete(ctx, "/product/"+productID+"/", token)
}

func (c *Client) CreateCategory(ctx context.Context, token string, collection models.Collection) (string, error) {
	return c.post(ctx, "/category/", token, collection, nil)
}

func (c *Client) SendMessageToUsers(ctx context.Context, token string, message models.AdminMessage) (string, error) {
	return c.post(ctx, "/send-message/", token, message, nil)
}

func (c *Client) GetMessage(ctx context.Context, token string) (models.AdminMessage, error) {
	var message models.AdminMessage
	_, err := c.get(ctx, "/get-message/", token, nil, &message)
	return message, err
}

func (c *Client) DeleteMessage(ctx context.Context, token, messageID string) (string, error) {
	return c.delete(ctx, "/message/"+messageID+"/", token)
}

func (c *Client) UpsertStorePromotion(ctx context.Context, token string, promotion models.Promotion) (models.Promotion, error) {
	var saved models.Promotion
	_, err := c.post(ctx, "/create-or-edit-store-promotion/", token, promotion, &saved)
	return saved, err
}

// StorePromotion is the active campaign plus the products it selects.
type StorePromotion struct {
	models.Promotion
	Products []models.Product `json:"products"`
}

func (c *Client) GetStorePromotion(ctx context.Context, token string) (StorePromotion, error) {
	var promotion StorePromotion
	_, err := c.get(ctx, "/get-store-promotion/", token, nil, &promotion)
	return promotion, err
}

func (c *Client) UpsertStoreBanner(ctx context.Context, token string, banner models.Banner) (string, error) {
	return c.post(ctx, "/create-or-edit-store-banner/", token, banner, nil)
}

// UpsertStoreSetRequest selects the bundle product and the pieces that
// make it up.
type UpsertStoreSetRequest struct {
	CompleteSetID string   `json:"completeSetId"`
	Products      []string `json:"products"`
}

func (c *Client) UpsertStoreSet(ctx context.Context, token string, req UpsertStoreSetRequest) (string, error) {
	return c.post(ctx, "/create-or-edit-store-set/", token, req, nil)
}

// GetStoreSet is the admin view of the active product set.
func (c *Client) GetStoreSet(ctx context.Context, token string) (ProductSet, error) {
	var set ProductSet
	_, err := c.get(ctx, "/get-store-sets/", token, nil, &set)
	return set, err
}
