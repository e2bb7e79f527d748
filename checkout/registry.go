package checkout

import (
	"sync"

	"go.uber.org/zap"

	"github.com/zaliyastore/shopit-gateway/models"
	"github.com/zaliyastore/shopit-gateway/pricing"
	"github.com/zaliyastore/shopit-gateway/store"
)

// Registry holds one Checkout per session. The checkout owns the session's
// pricing aggregator, so cart quote endpoints share the same newest-wins
// view the checkout form uses.
type Registry struct {
	mu        sync.Mutex
	checkouts map[string]*Checkout
	orders    OrderAPI
	quoter    pricing.Quoter
	accounts  []models.BankAccount
	log       *zap.Logger
}

// NewRegistry builds a registry. accounts may be nil to use the default
// receiving accounts.
func NewRegistry(orders OrderAPI, quoter pricing.Quoter, accounts []models.BankAccount, log *zap.Logger) *Registry {
	return &Registry{
		checkouts: make(map[string]*Checkout),
		orders:    orders,
		quoter:    quoter,
		accounts:  accounts,
		log:       log,
	}
}

// Get returns the checkout for sid, creating it on first use.
func (r *Registry) Get(sid string, st *store.Store) *Checkout {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.checkouts[sid]; ok {
		return c
	}
	agg := pricing.New(r.quoter, r.log)
	c := New(st, agg, r.orders, r.accounts, r.log)
	r.checkouts[sid] = c
	return c
}
