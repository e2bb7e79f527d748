package store

import (
	"sync"

	"github.com/zaliyastore/shopit-gateway/models"
	"github.com/zaliyastore/shopit-gateway/utils"
)

// Snapshot is a consistent copy of the store's state. Mutating a snapshot
// never affects the store.
type Snapshot struct {
	User *models.User
	Cart []models.CartLine
}

// Subscriber receives the updated snapshot synchronously after every
// mutation, in mutation order.
type Subscriber func(Snapshot)

// Store holds the authenticated user and the shopping cart for one browser
// session. It is constructed explicitly and passed to whoever needs it;
// there is no process-wide instance, so tests get independent stores.
//
// All mutations go through the action methods below and are atomic; readers
// never observe a partial update.
type Store struct {
	mu   sync.Mutex
	user *models.User
	cart []models.CartLine
	subs []Subscriber
}

func New() *Store {
	return &Store{}
}

// Subscribe registers fn for future mutations. Registration order is
// notification order.
func (s *Store) Subscribe(fn Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

func (s *Store) SetUser(user *models.User) {
	s.mu.Lock()
	s.user = user
	snap := s.snapshotLocked()
	subs := s.subs
	s.mu.Unlock()
	notify(subs, snap)
}

// InitializeCart merges a previously-persisted cart into the current one,
// skipping ids already present. Calling it twice with the same items is a
// no-op the second time.
func (s *Store) InitializeCart(items []models.CartLine) {
	s.mu.Lock()
	for _, item := range items {
		if utils.CheckDuplicates(s.cart, lineID, item.ID) {
			continue
		}
		s.cart = append(s.cart, item)
	}
	snap := s.snapshotLocked()
	subs := s.subs
	s.mu.Unlock()
	notify(subs, snap)
}

// AddItemToCart appends item unless a line with the same product id exists;
// duplicates are rejected outright, not quantity-merged.
func (s *Store) AddItemToCart(item models.CartLine) {
	s.mu.Lock()
	if !utils.CheckDuplicates(s.cart, lineID, item.ID) {
		s.cart = append(s.cart, item)
	}
	snap := s.snapshotLocked()
	subs := s.subs
	s.mu.Unlock()
	notify(subs, snap)
}

// RemoveItemFromCart drops the line with the given product id. Absent ids
// are ignored.
func (s *Store) RemoveItemFromCart(productID string) {
	s.mu.Lock()
	kept := s.cart[:0]
	for _, line := range s.cart {
		if line.ID != productID {
			kept = append(kept, line)
		}
	}
	s.cart = kept
	snap := s.snapshotLocked()
	subs := s.subs
	s.mu.Unlock()
	notify(subs, snap)
}

// UpdateItemQuantity clamps newQuantity to [1, stock] for the matching
// line. Invalid input is clamped, never rejected; other lines are
// untouched.
func (s *Store) UpdateItemQuantity(productID string, newQuantity int) {
	s.mu.Lock()
	for i, line := range s.cart {
		if line.ID != productID {
			continue
		}
		s.cart[i].Quantity = max(1, min(newQuantity, line.Stock))
	}
	snap := s.snapshotLocked()
	subs := s.subs
	s.mu.Unlock()
	notify(subs, snap)
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) Cart() []models.CartLine {
	return s.Snapshot().Cart
}

func (s *Store) User() *models.User {
	return s.Snapshot().User
}

func (s *Store) snapshotLocked() Snapshot {
	snap := Snapshot{Cart: make([]models.CartLine, len(s.cart))}
	copy(snap.Cart, s.cart)
	if s.user != nil {
		user := *s.user
		snap.User = &user
	}
	return snap
}

func notify(subs []Subscriber, snap Snapshot) {
	for _, fn := range subs {
		fn(snap)
	}
}

func lineID(line models.CartLine) string { return line.ID }
