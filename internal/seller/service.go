package seller

import (
	"github.com/declutterhub/marketplace-backend/internal/order"
	"github.com/declutterhub/marketplace-backend/internal/product"
)

// Service derives seller dashboard figures from listings and orders.
type Service struct {
	orders   *order.Service
	products *product.Service
}

func NewService(orders *order.Service, products *product.Service) *Service {
	return &Service{orders: orders, products: products}
}

// Stats counts a sale once the order reaches DELIVERED; COMPLETED keeps
// counting it.
func (s *Service) Stats(sellerID int) (Stats, error) {
	listings, err := s.products.List(product.Filter{})
	if err != nil {
		return Stats{}, err
	}
	sold, err := s.orders.ListForSeller(sellerID)
	if err != nil {
		return Stats{}, err
	}

	var st Stats
	for _, p := range listings {
		if p.SellerID != sellerID {
			continue
		}
		st.ItemsListed++
		if p.Active && !p.IsDisabled && !p.OutOfStock {
			st.ActiveListings++
		}
	}
	for _, o := range sold {
		if o.Status == order.StatusDelivered || o.Status == order.StatusCompleted {
			st.ItemsSold++
			st.Revenue += o.Price
		}
	}
	return st, nil
}

// TotalSales is the escrow-released revenue figure shown on the sales page.
func (s *Service) TotalSales(sellerID int) (float64, error) {
	st, err := s.Stats(sellerID)
	if err != nil {
		return 0, err
	}
	return st.Revenue, nil
}
