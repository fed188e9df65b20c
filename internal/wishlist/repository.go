package wishlist

import (
	"sort"
	"sync"
	"time"
)

// Repository defines persistence for wishlist entries, keyed by
// (user, product). Adding an existing entry is a no-op.
type Repository interface {
	Add(userID, productID int, at time.Time) (Item, error)
	Remove(userID, productID int) error
	Has(userID, productID int) (bool, error)
	Clear(userID int) error
	List(userID int) ([]Item, error)
	Count(userID int) (int, error)
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu     sync.RWMutex
	nextID int
	items  map[int][]Item
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1, items: make(map[int][]Item)}
}

func (r *InMemoryRepository) Add(userID, productID int, at time.Time) (Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range r.items[userID] {
		if it.ProductID == productID {
			return it, nil
		}
	}
	it := Item{ID: r.nextID, ProductID: productID, CreatedAt: at}
	r.nextID++
	r.items[userID] = append(r.items[userID], it)
	return it, nil
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
	return ErrNotWishlisted
}

func (r *InMemoryRepository) Has(userID, productID int) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, it := range r.items[userID] {
		if it.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
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
	return len(r.items[userID]), nil
}
