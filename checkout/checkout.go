package checkout

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/zaliyastore/shopit-gateway/backend"
	"github.com/zaliyastore/shopit-gateway/models"
	"github.com/zaliyastore/shopit-gateway/pricing"
	"github.com/zaliyastore/shopit-gateway/store"
)

type State string

const (
	StateIdle       State = "Idle"
	StateFormOpen   State = "FormOpen"
	StateSubmitting State = "Submitting"
	StateSucceeded  State = "Succeeded"
)

var (
	ErrNotOpen   = errors.New("checkout: form is not open")
	ErrBusy      = errors.New("checkout: submission in progress")
	ErrEmptyCart = errors.New("checkout: cart is empty")
)

// ValidationError reports per-field schema violations before any upstream
// call is attempted.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("checkout: %d invalid fields", len(e.Fields))
}

// Form is the customer/address data collected while the form is open.
// State and LGA cascade: picking a new state clears the LGA.
type Form struct {
	FullName       string                `json:"fullName" validate:"required"`
	Email          string                `json:"email" validate:"required,email"`
	PhoneNumber    string                `json:"phoneNumber,omitempty"`
	State          string                `json:"state" validate:"required"`
	LGA            string                `json:"lga,omitempty" validate:"required_if=DeliveryMethod waybill"`
	DeliveryMethod models.DeliveryMethod `json:"deliveryMethod" validate:"required,oneof=pick_up waybill"`
	Note           string                `json:"note,omitempty"`
}

// OrderAPI is the slice of the upstream client checkout needs.
type OrderAPI interface {
	CreateOrder(ctx context.Context, token string, req backend.CreateOrderRequest) (models.Order, error)
	ClaimPayment(ctx context.Context, token, orderID string) error
}

// Result is what a successful submission leaves behind: the created order
// and either a hosted payment link or the manual-transfer instructions.
type Result struct {
	Order        models.Order         `json:"order"`
	PaymentLink  string               `json:"paymentLink,omitempty"`
	BankAccounts []models.BankAccount `json:"bankAccounts,omitempty"`
}

// DefaultBankAccounts are the shop's receiving accounts for manual
// transfers. Customers are told to tag the transfer with the order id.
var DefaultBankAccounts = []models.BankAccount{
	{Bank: "Opay", Name: "Zaliya Suleiman", Number: "8036317990"},
	{Bank: "First Bank", Name: "Zaliya Suleiman", Number: "3006462764"},
}

// Checkout drives one session's order flow:
//
//	Idle -> FormOpen -> Submitting -> Succeeded
//	                 ^------ failure returns here with the form intact
//
// Closing before Submitting discards everything; no partial order exists.
type Checkout struct {
	mu       sync.Mutex
	state    State
	form     Form
	store    *store.Store
	agg      *pricing.Aggregator
	orders   OrderAPI
	accounts []models.BankAccount
	validate *validator.Validate
	log      *zap.Logger
	result   *Result
}

func New(st *store.Store, agg *pricing.Aggregator, orders OrderAPI, accounts []models.BankAccount, log *zap.Logger) *Checkout {
	if len(accounts) == 0 {
		accounts = DefaultBankAccounts
	}
	return &Checkout{
		state:    StateIdle,
		store:    st,
		agg:      agg,
		orders:   orders,
		accounts: accounts,
		validate: validator.New(),
		log:      log,
	}
}

func (c *Checkout) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Checkout) Form() Form {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form
}

// BankAccounts are the receiving accounts quoted for manual transfers.
func (c *Checkout) BankAccounts() []models.BankAccount {
	return c.accounts
}

func (c *Checkout) Result() *Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.result == nil {
		return nil
	}
	result := *c.result
	return &result
}

// Aggregator exposes the session's pricing view for quote endpoints.
func (c *Checkout) Aggregator() *pricing.Aggregator {
	return c.agg
}

// Open moves to FormOpen, pre-filling known fields for an authenticated
// user with a default address, and kicks off the pricing queries.
func (c *Checkout) Open(ctx context.Context) error {
	c.mu.Lock()
	if c.state == StateSubmitting {
		c.mu.Unlock()
		return ErrBusy
	}
	c.state = StateFormOpen
	c.result = nil
	c.form = Form{DeliveryMethod: models.DeliveryWaybill}
	snap := c.store.Snapshot()
	if snap.User != nil {
		c.form.FullName = snap.User.Name
		c.form.Email = snap.User.Email
		c.form.State = snap.User.Address.State
		c.form.LGA = snap.User.Address.LGA
	}
	state := c.form.State
	c.mu.Unlock()

	c.agg.RefreshItems(ctx, snap.Cart)
	c.agg.RefreshDeliveryFee(ctx, state, pricing.TotalQuantity(snap.Cart))
	return nil
}

// SetAddress records the destination. A state change resets the LGA and
// re-triggers the delivery quote; the stale quote can never apply.
func (c *Checkout) SetAddress(ctx context.Context, stateName, lga string) error {
	c.mu.Lock()
	if c.state != StateFormOpen {
		c.mu.Unlock()
		return ErrNotOpen
	}
	if stateName != c.form.State {
		lga = ""
	}
	c.form.State = stateName
	c.form.LGA = lga
	cart := c.store.Cart()
	c.mu.Unlock()

	c.agg.RefreshDeliveryFee(ctx, stateName, pricing.TotalQuantity(cart))
	return nil
}

func (c *Checkout) SetDeliveryMethod(method models.DeliveryMethod) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateFormOpen {
		return ErrNotOpen
	}
	c.form.DeliveryMethod = method
	return nil
}

// Submit validates the form and posts the order. On upstream failure the
// form stays populated and the state returns to FormOpen for a retry.
func (c *Checkout) Submit(ctx context.Context, token string, form Form) (*Result, error) {
	c.mu.Lock()
	if c.state == StateSubmitting {
		c.mu.Unlock()
		return nil, ErrBusy
	}
	if c.state != StateFormOpen {
		c.mu.Unlock()
		return nil, ErrNotOpen
	}
	// Retained even when validation or the upstream call fails, so the
	// user never re-enters data.
	c.form = form

	if err := c.validateForm(form); err != nil {
		c.mu.Unlock()
		return nil, err
	}

	cart := c.store.Cart()
	if len(cart) == 0 {
		c.mu.Unlock()
		return nil, ErrEmptyCart
	}

	c.state = StateSubmitting
	c.mu.Unlock()

	req := backend.CreateOrderRequest{
		Address: models.OrderAddress{State: form.State, LGA: form.LGA},
		Customer: models.Customer{
			Name:        form.FullName,
			Email:       form.Email,
			PhoneNumber: form.PhoneNumber,
			Note:        form.Note,
		},
		DeliveryMethod: form.DeliveryMethod,
	}
	for _, line := range cart {
		req.Products = append(req.Products, backend.OrderProductRef{IDs: line.ID, Color: line.Color})
	}

	order, err := c.orders.CreateOrder(ctx, token, req)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.state = StateFormOpen
		c.log.Warn("order submission failed", zap.Error(err))
		return nil, err
	}

	result := &Result{Order: order, PaymentLink: order.PaymentLink}
	if order.PaymentLink == "" {
		result.BankAccounts = c.accounts
	}
	c.result = result
	c.state = StateSucceeded

	copied := *result
	return &copied, nil
}

// ConfirmManualPayment forwards the customer's bank-transfer claim for the
// created order. Verification stays upstream.
func (c *Checkout) ConfirmManualPayment(ctx context.Context, token string) (string, error) {
	c.mu.Lock()
	if c.state != StateSucceeded || c.result == nil {
		c.mu.Unlock()
		return "", ErrNotOpen
	}
	orderID := c.result.Order.ID
	c.mu.Unlock()

	if err := c.orders.ClaimPayment(ctx, token, orderID); err != nil {
		return "", err
	}
	return orderID, nil
}

// Close discards all entered state. It is rejected mid-submission; the
// upstream order creation, once issued, cannot be cancelled from here.
func (c *Checkout) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateSubmitting {
		return ErrBusy
	}
	c.state = StateIdle
	c.form = Form{}
	c.result = nil
	return nil
}

func (c *Checkout) validateForm(form Form) error {
	err := c.validate.Struct(form)
	if err == nil {
		return nil
	}
	var invalid validator.ValidationErrors
	if !errors.As(err, &invalid) {
		return err
	}
	fields := make(map[string]string, len(invalid))
	for _, fe := range invalid {
		fields[fe.Field()] = fmt.Sprintf("failed on %q", fe.Tag())
	}
	return &ValidationError{Fields: fields}
}
