package complaint

import (
	"sync"
)

// Repository defines persistence for complaints.
type Repository interface {
	Create(c Complaint) (Complaint, error)
	ListByOrder(orderID int) ([]Complaint, error)
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu         sync.RWMutex
	nextID     int
	complaints []Complaint
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1}
}

func (r *InMemoryRepository) Create(c Complaint) (Complaint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c.ID = r.nextID
	r.nextID++
	r.complaints = append(r.complaints, c)
	return c, nil
}

func (r *InMemoryRepository) ListByOrder(orderID int) ([]Complaint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Complaint, 0)
	for _, c := range r.complaints {
		if c.OrderID == orderID {
			out = append(out, c)
		}
	}
	return out, nil
}
