package pricing

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zaliyastore/shopit-gateway/models"
)

type fakeQuoter struct {
	mu         sync.Mutex
	itemCalls  int
	feeCalls   []string
	itemsTotal float64
	itemsErr   error
	feeResults map[string]float64
	feeErr     error
	// latency makes the quoter honor cancellation the way the real
	// client does: a fetch whose context dies mid-flight fails.
	latency time.Duration
	// gates block a delivery quote for a state until released, letting
	// tests interleave resolutions.
	gates map[string]chan struct{}
}

func (f *fakeQuoter) wait(ctx context.Context) error {
	if f.latency == 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(f.latency):
		return nil
	}
}

func (f *fakeQuoter) CalculateItemsPrice(ctx context.Context, ids []string) (float64, error) {
	f.mu.Lock()
	f.itemCalls++
	total, err := f.itemsTotal, f.itemsErr
	f.mu.Unlock()
	if waitErr := f.wait(ctx); waitErr != nil {
		return 0, waitErr
	}
	return total, err
}

func (f *fakeQuoter) CalculateDeliveryFee(ctx context.Context, state string, quantity int) (float64, error) {
	f.mu.Lock()
	f.feeCalls = append(f.feeCalls, state)
	gate := f.gates[state]
	result := f.feeResults[state]
	err := f.feeErr
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}
	if waitErr := f.wait(ctx); waitErr != nil {
		return 0, waitErr
	}
	return result, err
}

func (f *fakeQuoter) calls() (int, []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.itemCalls, append([]string(nil), f.feeCalls...)
}

func cartWith(quantities map[string]int) []models.CartLine {
	var lines []models.CartLine
	for id, q := range quantities {
		lines = append(lines, models.CartLine{
			Product:  models.Product{ID: id, Stock: 100},
			Quantity: q,
		})
	}
	return lines
}

func TestExpandProductIDsRepeatsByQuantity(t *testing.T) {
	ids := ExpandProductIDs([]models.CartLine{
		{Product: models.Product{ID: "p1"}, Quantity: 3},
		{Product: models.Product{ID: "p2"}, Quantity: 1},
	})
	assert.Equal(t, []string{"p1", "p1", "p1", "p2"}, ids)
}

func TestSubtotalPendingUntilResolved(t *testing.T) {
	q := &fakeQuoter{itemsTotal: 12000, gates: map[string]chan struct{}{}}
	a := New(q, zap.NewNop())

	a.RefreshItems(context.Background(), cartWith(map[string]int{"p1": 2}))

	require.Eventually(t, func() bool {
		return a.Snapshot().Subtotal != nil
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, 12000.0, *a.Snapshot().Subtotal)
}

func TestUnchangedCartDoesNotRefetch(t *testing.T) {
	q := &fakeQuoter{itemsTotal: 500}
	a := New(q, zap.NewNop())
	cart := cartWith(map[string]int{"p1": 1})

	a.RefreshItems(context.Background(), cart)
	require.Eventually(t, func() bool { return a.Snapshot().Subtotal != nil }, time.Second, 5*time.Millisecond)

	a.RefreshItems(context.Background(), cart)
	a.RefreshItems(context.Background(), cart)

	itemCalls, _ := q.calls()
	assert.Equal(t, 1, itemCalls)
}

func TestEmptyCartNeedsNoUpstreamCall(t *testing.T) {
	q := &fakeQuoter{}
	a := New(q, zap.NewNop())

	a.RefreshItems(context.Background(), nil)

	snap := a.Snapshot()
	require.NotNil(t, snap.Subtotal)
	assert.Equal(t, 0.0, *snap.Subtotal)
	itemCalls, _ := q.calls()
	assert.Zero(t, itemCalls)
}

func TestDeliveryFeeNotIssuedWithoutState(t *testing.T) {
	q := &fakeQuoter{feeResults: map[string]float64{}}
	a := New(q, zap.NewNop())

	a.RefreshDeliveryFee(context.Background(), "", 3)

	_, feeCalls := q.calls()
	assert.Empty(t, feeCalls)
	assert.Nil(t, a.Snapshot().DeliveryFee)
}

func TestStaleDeliveryFeeResponseIsDiscarded(t *testing.T) {
	gateA := make(chan struct{})
	q := &fakeQuoter{
		feeResults: map[string]float64{"Kaduna": 7000, "Lagos": 3000},
		gates:      map[string]chan struct{}{"Kaduna": gateA},
	}
	a := New(q, zap.NewNop())
	ctx := context.Background()

	// Quote for Kaduna is held in flight while the user picks Lagos.
	a.RefreshDeliveryFee(ctx, "Kaduna", 2)
	a.RefreshDeliveryFee(ctx, "Lagos", 2)

	require.Eventually(t, func() bool {
		fee := a.Snapshot().DeliveryFee
		return fee != nil && *fee == 3000
	}, time.Second, 5*time.Millisecond)

	// The superseded Kaduna quote resolves late and must not win.
	close(gateA)
	assert.Never(t, func() bool {
		fee := a.Snapshot().DeliveryFee
		return fee == nil || *fee != 3000
	}, 200*time.Millisecond, 10*time.Millisecond)
}

func TestDisplayTotalShowsCalculatingWhileFeePending(t *testing.T) {
	gate := make(chan struct{})
	q := &fakeQuoter{
		itemsTotal: 10000,
		feeResults: map[string]float64{"Kaduna": 5000},
		gates:      map[string]chan struct{}{"Kaduna": gate},
	}
	a := New(q, zap.NewNop())
	ctx := context.Background()

	a.RefreshItems(ctx, cartWith(map[string]int{"p1": 1}))
	require.Eventually(t, func() bool { return a.Snapshot().Subtotal != nil }, time.Second, 5*time.Millisecond)

	a.RefreshDeliveryFee(ctx, "Kaduna", 1)
	assert.Equal(t, Calculating, a.DisplayTotal(true))

	// A pick-up order needs no fee, so the subtotal alone may display.
	assert.NotEqual(t, Calculating, a.DisplayTotal(false))

	close(gate)
	require.Eventually(t, func() bool {
		return a.DisplayTotal(true) != Calculating
	}, time.Second, 5*time.Millisecond)
}

func TestRefreshSurvivesCallerCancellation(t *testing.T) {
	q := &fakeQuoter{
		itemsTotal: 8000,
		feeResults: map[string]float64{"Kano": 1500},
		latency:    20 * time.Millisecond,
	}
	a := New(q, zap.NewNop())

	// The caller's context dies as soon as the handler returns, the way
	// a request-scoped context does.
	ctx, cancel := context.WithCancel(context.Background())
	a.RefreshItems(ctx, cartWith(map[string]int{"p1": 2}))
	a.RefreshDeliveryFee(ctx, "Kano", 2)
	cancel()

	require.Eventually(t, func() bool {
		snap := a.Snapshot()
		return snap.Subtotal != nil && snap.DeliveryFee != nil
	}, time.Second, 5*time.Millisecond)

	snap := a.Snapshot()
	assert.Equal(t, 8000.0, *snap.Subtotal)
	assert.Equal(t, 1500.0, *snap.DeliveryFee)
}

func TestFailedFetchNeverFabricatesATotal(t *testing.T) {
	q := &fakeQuoter{itemsErr: errors.New("upstream down")}
	a := New(q, zap.NewNop())

	a.RefreshItems(context.Background(), cartWith(map[string]int{"p1": 1}))

	assert.Never(t, func() bool {
		return a.DisplayTotal(false) != Calculating
	}, 200*time.Millisecond, 10*time.Millisecond)
}
