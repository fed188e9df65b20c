package cart

import (
	"sort"
	"sync"
	"time"
)

// Repository defines persistence for cart entries, keyed by (user, product).
type Repository interface {
	// Add inserts the entry or increments its quantity when it exists.
	Add(userID, productID, qty int, at time.Time) (Item, error)
	// SetQuantity replaces the entry's quantity; ErrNotInCart when absent.
	SetQuantity(userID, productID, qty int) (Item, error)
	Remove(userID, productID int) error
	Clear(userID int) error
	List(userID int) ([]Item, error)
	Count(userID int) (int, error)
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu     sync.RWMutex
	nextID int
	items  map[int][]Item // userID -> items
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1, items: make(map[int][]Item)}
}

func (r *InMemoryRepository) Add(userID, productID, qty int, at time.Time) (Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, it := range r.items[userID] {
		if it.ProductID == productID {
			it.Quantity += qty
			r.items[userID][i] = it
			return it, nil
		}
	}
	it := Item{ID: r.nextID, ProductID: productID, Quantity: qty, CreatedAt: at}
	r.nextID++
	r.items[userID] = append(r.items[userID], it)
	return it, nil
}

func (r *InMemoryRepository) SetQuantity(userID, productID, qty int) (Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, it := range r.items[userID] {
		if it.ProductID == productID {
			it.Quantity = qty
			r.items[userID][i] = it
			return it, nil
		}
	}
	return Item{}, ErrNotInCart
}

func (r *InMemoryRepository) Remove(userID, productID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := r.items[userID]
	for i, it := range items {
		if it.ProductID == productID {
			r.items[userID] = append(items[:i], items[i+1:]...)
			return nil
		}
	}
	return ErrNotInCart
}

func (r *InMemoryRepository) Clear(userID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[userID] = nil
	return nil
}

func (r *InMemoryRepository) List(userID int) ([]Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Item, len(r.items[userID]))
	copy(out, r.items[userID])
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *InMemoryRepository) Count(userID int) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, it := range r.items[userID] {
		n += it.Quantity
	}
	return n, nil
}
