package cart

import (
	"time"

	"github.com/declutterhub/marketplace-backend/internal/product"
)

// Service orchestrates cart operations and computes the totals the client
// displays.
type Service struct {
	repo     Repository
	products *product.Service
	now      func() time.Time
}

func NewService(repo Repository, products *product.Service) *Service {
	return &Service{repo: repo, products: products, now: time.Now}
}

func (s *Service) Add(userID, productID, qty int) (Item, error) {
	if qty <= 0 {
		qty = 1
	}
	if _, err := s.products.GetByID(productID); err != nil {
		return Item{}, err
	}
	it, err := s.repo.Add(userID, productID, qty, s.now().UTC())
	if err != nil {
		return Item{}, err
	}
	s.attachProduct(&it)
	return it, nil
}

func (s *Service) SetQuantity(userID, productID, qty int) (Item, error) {
	if qty <= 0 {
		if err := s.repo.Remove(userID, productID); err != nil {
			return Item{}, err
		}
		return Item{ProductID: productID}, nil
	}
	it, err := s.repo.SetQuantity(userID, productID, qty)
	if err != nil {
		return Item{}, err
	}
	s.attachProduct(&it)
	return it, nil
}

func (s *Service) Remove(userID, productID int) error {
	return s.repo.Remove(userID, productID)
}

func (s *Service) Clear(userID int) error {
	return s.repo.Clear(userID)
}

func (s *Service) Count(userID int) (int, error) {
	return s.repo.Count(userID)
}

// Get assembles the full cart view with product details and totals.
func (s *Service) Get(userID int) (Cart, error) {
	items, err := s.repo.List(userID)
	if err != nil {
		return Cart{}, err
	}
	c := Cart{Items: make([]Item, 0, len(items))}
	for _, it := range items {
		s.attachProduct(&it)
		c.Items = append(c.Items, it)
		c.ItemCount += it.Quantity
		if it.Product != nil {
			c.Subtotal += it.Product.Price * float64(it.Quantity)
			c.DeliveryTotal += it.Product.DeliveryFee * float64(it.Quantity)
		}
	}
	c.Total = c.Subtotal + c.DeliveryTotal
	return c, nil
}

func (s *Service) attachProduct(it *Item) {
	p, err := s.products.GetByID(it.ProductID)
	if err != nil {
		// entry still lists; product may have been removed since
		return
	}
	it.Product = &p
}
