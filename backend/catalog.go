package backend

import (
	"context"
	"strconv"

	"github.com/zaliyastore/shopit-gateway/models"
)

// ProductQuery narrows a paginated catalog listing.
type ProductQuery struct {
	Page       int
	Filter     string
	Query      string
	Collection string
}

func (q ProductQuery) params() map[string]string {
	params := map[string]string{}
	if q.Page > 0 {
		params["page"] = strconv.Itoa(q.Page)
	}
	if q.Filter != "" {
		params["filter"] = q.Filter
	}
	if q.Query != "" {
		params["query"] = q.Query
	}
	if q.Collection != "" {
		params["collection"] = q.Collection
	}
	return params
}

func (c *Client) GetProducts(ctx context.Context, q ProductQuery) ([]models.Product, error) {
	var products []models.Product
	_, err := c.get(ctx, "/products/", "", q.params(), &products)
	return products, err
}

func (c *Client) GetProduct(ctx context.Context, productID string) (models.Product, error) {
	var product models.Product
	_, err := c.get(ctx, "/products/"+productID, "", nil, &product)
	return product, err
}

func (c *Client) GetCollections(ctx context.Context) ([]models.Collection, error) {
	var collections []models.Collection
	_, err := c.get(ctx, "/collections/", "", nil, &collections)
	return collections, err
}

func (c *Client) GetCollectionProducts(ctx context.Context, slug string, page int) ([]models.Product, error) {
	params := map[string]string{}
	if page > 0 {
		params["page"] = strconv.Itoa(page)
	}
	var products []models.Product
	_, err := c.get(ctx, "/collections/"+slug+"/", "", params, &products)
	return products, err
}

func (c *Client) GetBestSellingProduct(ctx context.Context) (models.Product, error) {
	var product models.Product
	_, err := c.get(ctx, "/best-selling-product/", "", nil, &product)
	return product, err
}

func (c *Client) GetLatestDiscountedProduct(ctx context.Context) (models.Product, error) {
	var product models.Product
	_, err := c.get(ctx, "/latest-discounted-product/", "", nil, &product)
	return product, err
}

func (c *Client) GetTopSellers(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	_, err := c.get(ctx, "/top-sellers/", "", nil, &products)
	return products, err
}

func (c *Client) GetSuggestedForYou(ctx context.Context, category string, size int) ([]models.Product, error) {
	params := map[string]string{}
	if category != "" {
		params["category"] = category
	}
	if size > 0 {
		params["size"] = strconv.Itoa(size)
	}
	var products []models.Product
	_, err := c.get(ctx, "/suggested-for-you/", "", params, &products)
	return products, err
}

// ProductSet is the "buy the set" merchandising block: the bundle product
// sold as a whole plus the individual pieces it is composed of.
type ProductSet struct {
	CompleteSet models.Product   `json:"completeSet"`
	Products    []models.Product `json:"products"`
}

func (c *Client) GetProductSet(ctx context.Context) (ProductSet, error) {
	var set ProductSet
	_, err := c.get(ctx, "/product-set/", "", nil, &set)
	return set, err
}

// PromoBanner is the storefront banner plus the product it advertises.
type PromoBanner struct {
	models.Banner
	Product models.Product `json:"product"`
}

func (c *Client) GetPromoBanner(ctx context.Context) (PromoBanner, error) {
	var banner PromoBanner
	_, err := c.get(ctx, "/get-promo-banner/", "", nil, &banner)
	return banner, err
}
