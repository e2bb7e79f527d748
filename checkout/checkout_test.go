package checkout

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zaliyastore/shopit-gateway/backend"
	"github.com/zaliyastore/shopit-gateway/models"
	"github.com/zaliyastore/shopit-gateway/pricing"
	"github.com/zaliyastore/shopit-gateway/store"
)

type fakeOrders struct {
	mu        sync.Mutex
	createErr error
	created   []backend.CreateOrderRequest
	order     models.Order
	claimed   []string
	claimErr  error
}

func (f *fakeOrders) CreateOrder(ctx context.Context, token string, req backend.CreateOrderRequest) (models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, req)
	return f.order, f.createErr
}

func (f *fakeOrders) ClaimPayment(ctx context.Context, token, orderID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.claimed = append(f.claimed, orderID)
	return f.claimErr
}

type fakeQuoter struct {
	mu       sync.Mutex
	feeCalls []string
}

func (f *fakeQuoter) CalculateItemsPrice(ctx context.Context, ids []string) (float64, error) {
	return 1000, nil
}

func (f *fakeQuoter) CalculateDeliveryFee(ctx context.Context, state string, quantity int) (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.feeCalls = append(f.feeCalls, state)
	return 2500, nil
}

func (f *fakeQuoter) states() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.feeCalls...)
}

func newCheckout(orders *fakeOrders) (*Checkout, *store.Store, *fakeQuoter) {
	st := store.New()
	q := &fakeQuoter{}
	agg := pricing.New(q, zap.NewNop())
	c := New(st, agg, orders, nil, zap.NewNop())
	return c, st, q
}

func cartLine(id string, quantity int) models.CartLine {
	return models.CartLine{
		Product:  models.Product{ID: id, Price: 500, Stock: 10},
		Quantity: quantity,
		Color:    "black",
	}
}

func validForm() Form {
	return Form{
		FullName:       "Amina Bello",
		Email:          "amina@example.com",
		State:          "Kaduna",
		LGA:            "Zaria",
		DeliveryMethod: models.DeliveryWaybill,
	}
}

func TestOpenPrefillsFromAuthenticatedUser(t *testing.T) {
	c, st, _ := newCheckout(&fakeOrders{})
	st.SetUser(&models.User{
		Name:    "Amina Bello",
		Email:   "amina@example.com",
		Address: models.Address{State: "Kaduna", LGA: "Zaria"},
	})

	require.NoError(t, c.Open(context.Background()))

	form := c.Form()
	assert.Equal(t, StateFormOpen, c.State())
	assert.Equal(t, "Amina Bello", form.FullName)
	assert.Equal(t, "Kaduna", form.State)
	assert.Equal(t, "Zaria", form.LGA)
	assert.Equal(t, models.DeliveryWaybill, form.DeliveryMethod)
}

func TestSubmitRejectsInvalidFormWithoutUpstreamCall(t *testing.T) {
	orders := &fakeOrders{}
	c, st, _ := newCheckout(orders)
	st.AddItemToCart(cartLine("p1", 1))
	require.NoError(t, c.Open(context.Background()))

	form := validForm()
	form.Email = "not-an-email"
	_, err := c.Submit(context.Background(), "tok", form)

	var invalid *ValidationError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.Fields, "Email")
	assert.Empty(t, orders.created)
	assert.Equal(t, StateFormOpen, c.State())
}

func TestSubmitRequiresLGAForWaybillOnly(t *testing.T) {
	orders := &fakeOrders{order: models.Order{ID: "ord-1"}}
	c, st, _ := newCheckout(orders)
	st.AddItemToCart(cartLine("p1", 1))
	require.NoError(t, c.Open(context.Background()))

	form := validForm()
	form.LGA = ""
	_, err := c.Submit(context.Background(), "tok", form)
	var invalid *ValidationError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.Fields, "LGA")

	form.DeliveryMethod = models.DeliveryPickUp
	_, err = c.Submit(context.Background(), "tok", form)
	require.NoError(t, err)
}

func TestSubmitSuccessWithPaymentLink(t *testing.T) {
	orders := &fakeOrders{order: models.Order{ID: "ord-1", PaymentLink: "https://pay.example/ord-1"}}
	c, st, _ := newCheckout(orders)
	st.AddItemToCart(cartLine("p1", 2))
	st.AddItemToCart(cartLine("p2", 1))
	require.NoError(t, c.Open(context.Background()))

	result, err := c.Submit(context.Background(), "tok", validForm())

	require.NoError(t, err)
	assert.Equal(t, StateSucceeded, c.State())
	assert.Equal(t, "https://pay.example/ord-1", result.PaymentLink)
	assert.Empty(t, result.BankAccounts)

	require.Len(t, orders.created, 1)
	req := orders.created[0]
	assert.Equal(t, "Kaduna", req.Address.State)
	assert.Equal(t, []backend.OrderProductRef{
		{IDs: "p1", Color: "black"},
		{IDs: "p2", Color: "black"},
	}, req.Products)
}

func TestSubmitWithoutPaymentLinkOffersBankAccounts(t *testing.T) {
	orders := &fakeOrders{order: models.Order{ID: "ord-2"}}
	c, st, _ := newCheckout(orders)
	st.AddItemToCart(cartLine("p1", 1))
	require.NoError(t, c.Open(context.Background()))

	result, err := c.Submit(context.Background(), "tok", validForm())

	require.NoError(t, err)
	assert.Equal(t, DefaultBankAccounts, result.BankAccounts)
}

func TestConfiguredBankAccountsAreQuoted(t *testing.T) {
	custom := []models.BankAccount{{Bank: "GTBank", Name: "Shop Ltd", Number: "0123456789"}}
	orders := &fakeOrders{order: models.Order{ID: "ord-5"}}

	st := store.New()
	st.AddItemToCart(cartLine("p1", 1))
	reg := NewRegistry(orders, &fakeQuoter{}, custom, zap.NewNop())
	c := reg.Get("sid-a", st)

	assert.Equal(t, custom, c.BankAccounts())

	require.NoError(t, c.Open(context.Background()))
	result, err := c.Submit(context.Background(), "tok", validForm())
	require.NoError(t, err)
	assert.Equal(t, custom, result.BankAccounts)
}

func TestSubmitFailureReturnsToFormWithInputsIntact(t *testing.T) {
	orders := &fakeOrders{createErr: &backend.APIError{Status: http.StatusBadRequest, Message: "Invalid address"}}
	c, st, _ := newCheckout(orders)
	st.AddItemToCart(cartLine("p1", 1))
	require.NoError(t, c.Open(context.Background()))

	form := validForm()
	_, err := c.Submit(context.Background(), "tok", form)

	var apiErr *backend.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Invalid address", apiErr.Message)
	assert.Equal(t, StateFormOpen, c.State())
	assert.Equal(t, form, c.Form())
	assert.Len(t, st.Cart(), 1, "cart survives a failed submission")

	orders.createErr = nil
	orders.order = models.Order{ID: "ord-3"}
	_, err = c.Submit(context.Background(), "tok", form)
	require.NoError(t, err)
}

func TestSubmitWithEmptyCart(t *testing.T) {
	c, _, _ := newCheckout(&fakeOrders{})
	require.NoError(t, c.Open(context.Background()))

	_, err := c.Submit(context.Background(), "tok", validForm())
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestSetAddressStateChangeResetsLGAAndRequotes(t *testing.T) {
	c, st, q := newCheckout(&fakeOrders{})
	st.AddItemToCart(cartLine("p1", 2))
	require.NoError(t, c.Open(context.Background()))

	require.NoError(t, c.SetAddress(context.Background(), "Kaduna", "Zaria"))
	assert.Equal(t, "Zaria", c.Form().LGA)

	require.NoError(t, c.SetAddress(context.Background(), "Lagos", "Zaria"))
	assert.Empty(t, c.Form().LGA, "LGA from the previous state must not carry over")

	states := q.states()
	assert.Contains(t, states, "Kaduna")
	assert.Contains(t, states, "Lagos")
}

func TestCloseDiscardsEverything(t *testing.T) {
	c, st, _ := newCheckout(&fakeOrders{})
	st.SetUser(&models.User{Name: "Amina Bello", Email: "amina@example.com"})
	require.NoError(t, c.Open(context.Background()))
	require.NoError(t, c.SetAddress(context.Background(), "Kano", ""))

	require.NoError(t, c.Close())

	assert.Equal(t, StateIdle, c.State())
	assert.Equal(t, Form{}, c.Form())
	assert.Nil(t, c.Result())
}

func TestConfirmManualPaymentClaimsCreatedOrder(t *testing.T) {
	orders := &fakeOrders{order: models.Order{ID: "ord-9"}}
	c, st, _ := newCheckout(orders)
	st.AddItemToCart(cartLine("p1", 1))
	require.NoError(t, c.Open(context.Background()))
	_, err := c.Submit(context.Background(), "tok", validForm())
	require.NoError(t, err)

	orderID, err := c.ConfirmManualPayment(context.Background(), "tok")

	require.NoError(t, err)
	assert.Equal(t, "ord-9", orderID)
	assert.Equal(t, []string{"ord-9"}, orders.claimed)
}

func TestConfirmManualPaymentBeforeAnyOrder(t *testing.T) {
	c, _, _ := newCheckout(&fakeOrders{})

	_, err := c.ConfirmManualPayment(context.Background(), "tok")
	assert.ErrorIs(t, err, ErrNotOpen)
}

func TestOperationsRequireOpenForm(t *testing.T) {
	c, _, _ := newCheckout(&fakeOrders{})

	assert.ErrorIs(t, c.SetAddress(context.Background(), "Kano", ""), ErrNotOpen)
	assert.ErrorIs(t, c.SetDeliveryMethod(models.DeliveryPickUp), ErrNotOpen)
	_, err := c.Submit(context.Background(), "tok", validForm())
	assert.ErrorIs(t, err, ErrNotOpen)
}
