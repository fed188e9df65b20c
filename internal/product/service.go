package product

import (
	"time"

	"github.com/declutterhub/marketplace-backend/internal/user"
)

// Service provides business logic for product listings. The user repository
// is only used to attach the seller's public profile to responses.
type Service struct {
	repo  Repository
	users user.Repository
	now   func() time.Time
}

func NewService(repo Repository, users user.Repository) *Service {
	return &Service{repo: repo, users: users, now: time.Now}
}

func (s *Service) List(f Filter) ([]Product, error) {
	products, err := s.repo.List(f)
	if err != nil {
		return nil, err
	}
	for i := range products {
		s.attachSeller(&products[i])
	}
	return products, nil
}

func (s *Service) GetByID(id int) (Product, error) {
	p, err := s.repo.GetByID(id)
	if err != nil {
		return Product{}, err
	}
	s.attachSeller(&p)
	return p, nil
}

func (s *Service) Create(p Product, sellerID int) (Product, error) {
	p.SellerID = sellerID
	p.Active = true
	p.CreatedAt = s.now().UTC()
	if p.Type == "" {
		p.Type = TypeDeclutter
	}
	// a one-off listing is a single unit by definition
	if p.Type == TypeDeclutter || p.Quantity <= 0 {
		p.Quantity = 1
	}
	return s.repo.Create(p)
}

// Update lets the listing's seller change it; anyone else is rejected.
func (s *Service) Update(id int, updated Product, sellerID int) (Product, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return Product{}, err
	}
	if existing.SellerID != sellerID {
		return Product{}, ErrForbidden
	}
	updated.SellerID = existing.SellerID
	updated.CreatedAt = existing.CreatedAt
	return s.repo.Update(id, updated)
}

// RecordSale decrements stock after a confirmed payment. The front end never
// computes inventory; it only reflects the flags set here.
func (s *Service) RecordSale(id int) (Product, error) {
	return s.repo.DecrementStock(id)
}

func (s *Service) attachSeller(p *Product) {
	if s.users == nil || p.SellerID == 0 {
		return
	}
	seller, err := s.users.GetByID(p.SellerID)
	if err != nil {
		// listing still renders without the seller card
		return
	}
	pub := seller.AsPublic()
	p.Seller = &pub
}
