package wishlist

import (
	"time"

	"github.com/declutterhub/marketplace-backend/internal/product"
)

// Service orchestrates wishlist operations.
type Service struct {
	repo     Repository
	products *product.Service
	now      func() time.Time
}

func NewService(repo Repository, products *product.Service) *Service {
	return &Service{repo: repo, products: products, now: time.Now}
}

func (s *Service) Add(userID, productID int) (Item, error) {
	if _, err := s.products.GetByID(productID); err != nil {
		return Item{}, err
	}
	return s.repo.Add(userID, productID, s.now().UTC())
}

// Toggle flips membership and reports the resulting state.
func (s *Service) Toggle(userID, productID int) (bool, error) {
	has, err := s.repo.Has(userID, productID)
	if err != nil {
		return false, err
	}
	if has {
		if err := s.repo.Remove(userID, productID); err != nil {
			return false, err
		}
		return false, nil
	}
	if _, err := s.Add(userID, productID); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Service) Remove(userID, productID int) error {
	return s.repo.Remove(userID, productID)
}

func (s *Service) Has(userID, productID int) (bool, error) {
	return s.repo.Has(userID, productID)
}

func (s *Service) Clear(userID int) error {
	return s.repo.Clear(userID)
}

func (s *Service) Count(userID int) (int, error) {
	return s.repo.Count(userID)
}

func (s *Service) Get(userID int) (Wishlist, error) {
	items, err := s.repo.List(userID)
	if err != nil {
		return Wishlist{}, err
	}
	w := Wishlist{Items: make([]Item, 0, len(items))}
	for _, it := range items {
		if p, err := s.products.GetByID(it.ProductID); err == nil {
			it.Product = &p
		}
		w.Items = append(w.Items, it)
	}
	w.ItemCount = len(w.Items)
	return w, nil
}
