package pricing

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/zaliyastore/shopit-gateway/models"
	"github.com/zaliyastore/shopit-gateway/utils"
)

// Calculating is shown whenever an authoritative figure has not resolved.
// The UI never displays a guessed or partial total in its place.
const Calculating = "Calculating..."

// Quoter is the slice of the upstream client the aggregator needs.
type Quoter interface {
	CalculateItemsPrice(ctx context.Context, productIDs []string) (float64, error)
	CalculateDeliveryFee(ctx context.Context, state string, quantity int) (float64, error)
}

// Quote is the reconciled view of upstream pricing. A nil field means the
// figure is still pending (or its last fetch failed and a retry is due).
type Quote struct {
	Subtotal    *float64 `json:"subtotal"`
	DeliveryFee *float64 `json:"deliveryFee"`
}

// Aggregator reconciles locally-held cart lines with the authoritative
// prices the upstream computes. Every refresh is keyed by its inputs and
// tagged with a sequence number; only the newest issued request may apply
// its result, so a response for superseded inputs can never overwrite the
// figure for the current selection.
type Aggregator struct {
	mu     sync.Mutex
	quoter Quoter
	log    *zap.Logger

	itemsSeq uint64
	itemsKey string
	subtotal *float64

	feeSeq uint64
	feeKey string
	fee    *float64
}

func New(quoter Quoter, log *zap.Logger) *Aggregator {
	return &Aggregator{quoter: quoter, log: log}
}

// ExpandProductIDs represents quantity by repeating each product id, which
// is how the upstream subtotal endpoint expects its input.
func ExpandProductIDs(lines []models.CartLine) []string {
	var ids []string
	for _, line := range lines {
		for i := 0; i < line.Quantity; i++ {
			ids = append(ids, line.ID)
		}
	}
	return ids
}

// TotalQuantity is the unit count across all lines, the granularity the
// delivery-fee endpoint prices at.
func TotalQuantity(lines []models.CartLine) int {
	total := 0
	for _, line := range lines {
		total += line.Quantity
	}
	return total
}

// RefreshItems re-fetches the subtotal when the cart contents changed.
// Unchanged inputs do not issue a request.
func (a *Aggregator) RefreshItems(ctx context.Context, lines []models.CartLine) {
	ids := ExpandProductIDs(lines)
	key := strings.Join(ids, ",")

	a.mu.Lock()
	if key == a.itemsKey && a.subtotal != nil {
		a.mu.Unlock()
		return
	}
	a.itemsKey = key
	a.itemsSeq++
	seq := a.itemsSeq
	a.subtotal = nil
	if len(ids) == 0 {
		zero := 0.0
		a.subtotal = &zero
		a.mu.Unlock()
		return
	}
	a.mu.Unlock()

	// Request-scoped contexts are cancelled the moment the handler
	// returns; the fetch has to outlive the request that triggered it.
	ctx = context.WithoutCancel(ctx)

	go func() {
		amount, err := a.quoter.CalculateItemsPrice(ctx, ids)

		a.mu.Lock()
		defer a.mu.Unlock()
		if seq != a.itemsSeq {
			// A newer cart superseded this request.
			return
		}
		if err != nil {
			a.log.Warn("items price fetch failed", zap.Error(err))
			return
		}
		a.subtotal = &amount
	}()
}

// RefreshDeliveryFee re-fetches the fee for a destination. With no state
// selected the fetch is not issued and any in-flight result is invalidated.
func (a *Aggregator) RefreshDeliveryFee(ctx context.Context, state string, quantity int) {
	a.mu.Lock()
	if state == "" {
		a.feeKey = ""
		a.feeSeq++
		a.fee = nil
		a.mu.Unlock()
		return
	}

	key := state + "|" + strconv.Itoa(quantity)
	if key == a.feeKey && a.fee != nil {
		a.mu.Unlock()
		return
	}
	a.feeKey = key
	a.feeSeq++
	seq := a.feeSeq
	a.fee = nil
	a.mu.Unlock()

	ctx = context.WithoutCancel(ctx)

	go func() {
		price, err := a.quoter.CalculateDeliveryFee(ctx, state, quantity)

		a.mu.Lock()
		defer a.mu.Unlock()
		if seq != a.feeSeq {
			// The destination changed while this quote was in flight.
			return
		}
		if err != nil {
			a.log.Warn("delivery fee fetch failed", zap.String("state", state), zap.Error(err))
			return
		}
		a.fee = &price
	}()
}

func (a *Aggregator) Snapshot() Quote {
	a.mu.Lock()
	defer a.mu.Unlock()
	quote := Quote{}
	if a.subtotal != nil {
		v := *a.subtotal
		quote.Subtotal = &v
	}
	if a.fee != nil {
		v := *a.fee
		quote.DeliveryFee = &v
	}
	return quote
}

// DisplayTotal is the formatted grand total, or the pending marker while
// any required component is unresolved. includeFee is false for pick-up
// orders, which carry no delivery fee.
func (a *Aggregator) DisplayTotal(includeFee bool) string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.subtotal == nil {
		return Calculating
	}
	total := *a.subtotal
	if includeFee {
		if a.fee == nil {
			return Calculating
		}
		total += *a.fee
	}
	return utils.FormatNaira(total)
}
