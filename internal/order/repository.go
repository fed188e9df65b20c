package order

import (
	"sort"
	"sync"
	"time"
)

// Repository defines persistence operations for orders.
type Repository interface {
	Create(ord Order) (Order, error)
	GetByID(id int) (Order, error)
	GetByReference(reference string) (Order, error)
	// MarkPaid moves the order for reference from UNDER_REVIEW to PAID as a
	// single conditional write, so concurrent duplicate confirmations resolve
	// to exactly one winner. An order already past UNDER_REVIEW is returned
	// unchanged with ErrAlreadyVerified.
	MarkPaid(reference string) (Order, error)
	UpdateStatus(id int, status Status) error
	// SetDelivered records the buyer's receipt confirmation: status plus the
	// delivered_at timestamp in one write. The timestamp is never cleared.
	SetDelivered(id int, at time.Time) error
	SetSatisfaction(id int, s Satisfaction) error
	ListByBuyer(buyerID int) ([]Order, error)
	ListBySeller(sellerID int) ([]Order, error)
	ListAll() ([]Order, error)
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu     sync.RWMutex
	nextID int
	orders map[int]Order
}

func NewInMemoryRepository(seed []Order) *InMemoryRepository {
	r := &InMemoryRepository{nextID: 1, orders: make(map[int]Order, len(seed))}
	for _, o := range seed {
		if o.ID == 0 {
			o.ID = r.nextID
		}
		if o.ID >= r.nextID {
			r.nextID = o.ID + 1
		}
		r.orders[o.ID] = o
	}
	return r
}

func (r *InMemoryRepository) Create(ord Order) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ord.ID = r.nextID
	r.nextID++
	r.orders[ord.ID] = ord
	return ord, nil
}

func (r *InMemoryRepository) GetByID(id int) (Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orders[id]
	if !ok {
		return Order{}, ErrNotFound
	}
	return o, nil
}

func (r *InMemoryRepository) GetByReference(reference string) (Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, o := range r.orders {
		if o.Reference == reference {
			return o, nil
		}
	}
	return Order{}, ErrNotFound
}

func (r *InMemoryRepository) MarkPaid(reference string) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, o := range r.orders {
		if o.Reference != reference {
			continue
		}
		if o.Status != StatusUnderReview {
			return o, ErrAlreadyVerified
		}
		o.Status = StatusPaid
		r.orders[id] = o
		return o, nil
	}
	return Order{}, ErrNotFound
}

func (r *InMemoryRepository) UpdateStatus(id int, status Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return ErrNotFound
	}
	o.Status = status
	r.orders[id] = o
	return nil
}

func (r *InMemoryRepository) SetDelivered(id int, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return ErrNotFound
	}
	o.Status = StatusDelivered
	o.DeliveredAt = &at
	r.orders[id] = o
	return nil
}

func (r *InMemoryRepository) SetSatisfaction(id int, s Satisfaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return ErrNotFound
	}
	o.Satisfaction = s
	r.orders[id] = o
	return nil
}

func (r *InMemoryRepository) ListByBuyer(buyerID int) ([]Order, error) {
	return r.list(func(o Order) bool { return o.BuyerID == buyerID })
}

func (r *InMemoryRepository) ListBySeller(sellerID int) ([]Order, error) {
	return r.list(func(o Order) bool { return o.SellerID == sellerID })
}

func (r *InMemoryRepository) ListAll() ([]Order, error) {
	return r.list(func(Order) bool { return true })
}

func (r *InMemoryRepository) list(keep func(Order) bool) ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Order, 0)
	for _, o := range r.orders {
		if keep(o) {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
