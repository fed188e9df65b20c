package product

import (
	"strings"
	"sync"
)

// Repository defines persistence operations for products.
type Repository interface {
	List(f Filter) ([]Product, error)
	GetByID(id int) (Product, error)
	Create(p Product) (Product, error)
	Update(id int, p Product) (Product, error)
	// DecrementStock takes one unit off the product's quantity and flags it
	// out of stock when none remain. Returns ErrUnavailable when the product
	// has no stock left to take.
	DecrementStock(id int) (Product, error)
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu       sync.RWMutex
	nextID   int
	products map[int]Product
}

func NewInMemoryRepository(seed []Product) *InMemoryRepository {
	r := &InMemoryRepository{nextID: 1, products: make(map[int]Product, len(seed))}
	for _, p := range seed {
		if p.ID == 0 {
			p.ID = r.nextID
		}
		if p.ID >= r.nextID {
			r.nextID = p.ID + 1
		}
		r.products[p.ID] = p
	}
	return r
}

func (r *InMemoryRepository) List(f Filter) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Product, 0)
	for _, p := range r.products {
		if matches(p, f) {
			out = append(out, p)
		}
	}
	return out, nil
}

func matches(p Product, f Filter) bool {
	if f.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Search)) {
		return false
	}
	if f.Location != "" && !strings.EqualFold(p.LocationState, f.Location) {
		return false
	}
	if f.Condition != "" && !strings.EqualFold(p.Condition, f.Condition) {
		return false
	}
	return true
}

func (r *InMemoryRepository) GetByID(id int) (Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.products[id]
	if !ok {
		return Product{}, ErrNotFound
	}
	return p, nil
}

func (r *InMemoryRepository) Create(p Product) (Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.ID = r.nextID
	r.nextID++
	r.products[p.ID] = p
	return p, nil
}

func (r *InMemoryRepository) Update(id int, p Product) (Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[id]; !ok {
		return Product{}, ErrNotFound
	}
	p.ID = id
	r.products[id] = p
	return p, nil
}

func (r *InMemoryRepository) DecrementStock(id int) (Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return Product{}, ErrNotFound
	}
	if p.Quantity <= 0 {
		return Product{}, ErrUnavailable
	}
	p.Quantity--
	if p.Quantity == 0 {
		p.OutOfStock = true
	}
	r.products[id] = p
	return p, nil
}
