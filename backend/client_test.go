package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(server.URL, 5*time.Second, zap.NewNop())
}

func TestGetProductDecodesEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/p1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"success","message":"ok","data":{"_id":"p1","name":"Ankara Gown","price":12000,"stock":3}}`))
	})

	product, err := client.GetProduct(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", product.ID)
	assert.Equal(t, "Ankara Gown", product.Name)
	assert.Equal(t, 3, product.Stock)
}

func TestErrorEnvelopeBecomesAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"status":400,"message":"Invalid address"}`))
	})

	_, err := client.CreateOrder(context.Background(), "tok", CreateOrderRequest{})
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 400, apiErr.Status)
	assert.Equal(t, "Invalid address", apiErr.Message)
}

func TestErrorWithoutEnvelopeFallsBackToStatusText(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	})

	_, err := client.GetStates(context.Background())
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, http.StatusText(http.StatusBadGateway), apiErr.Message)
}

func TestAuthorizationHeaderForwarded(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "session-token", r.Header.Get("Authorization"))
		w.Write([]byte(`{"status":"success","message":"ok","data":{"_id":"u1","email":"z@example.com","role":"user"}}`))
	})

	user, err := client.GetUser(context.Background(), "session-token")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
}

func TestCalculateItemsPricePostsRepeatedIDs(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			ProductIDs []string `json:"productIds"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []string{"p1", "p1", "p2"}, body.ProductIDs)
		w.Write([]byte(`{"status":"success","message":"ok","data":{"totalAmount":27000}}`))
	})

	total, err := client.CalculateItemsPrice(context.Background(), []string{"p1", "p1", "p2"})
	require.NoError(t, err)
	assert.Equal(t, 27000.0, total)
}

func TestGetProductSetDecodesBundleAndPieces(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/product-set/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"success","message":"ok","data":{"completeSet":{"_id":"set1","name":"Full Ankara Set","price":30000},"products":[{"_id":"p1","name":"Gown"},{"_id":"p2","name":"Headwrap"}]}}`))
	})

	set, err := client.GetProductSet(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "set1", set.CompleteSet.ID)
	require.Len(t, set.Products, 2)
	assert.Equal(t, "p2", set.Products[1].ID)
}

func TestUpsertStoreSetPostsSelection(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/create-or-edit-store-set/", r.URL.Path)
		var body UpsertStoreSetRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "set1", body.CompleteSetID)
		assert.Equal(t, []string{"p1", "p2"}, body.Products)
		w.Write([]byte(`{"status":"success","message":"Set saved."}`))
	})

	message, err := client.UpsertStoreSet(context.Background(), "tok", UpsertStoreSetRequest{
		CompleteSetID: "set1",
		Products:      []string{"p1", "p2"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Set saved.", message)
}

func TestCalculateDeliveryFeeQueryParams(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Kaduna", r.URL.Query().Get("state"))
		assert.Equal(t, "4", r.URL.Query().Get("quantity"))
		w.Write([]byte(`{"status":"success","message":"ok","data":{"price":5000}}`))
	})

	fee, err := client.CalculateDeliveryFee(context.Background(), "Kaduna", 4)
	require.NoError(t, err)
	assert.Equal(t, 5000.0, fee)
}
