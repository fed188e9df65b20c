package complaint

import (
	"strings"
	"time"

	"github.com/declutterhub/marketplace-backend/internal/order"
)

// Service files complaints. Filing one marks the order as disputed so it
// stops on DELIVERED instead of completing when the satisfaction window
// elapses.
type Service struct {
	repo   Repository
	orders *order.Service
	now    func() time.Time
}

func NewService(r Repository, orders *order.Service) *Service {
	return &Service{repo: r, orders: orders, now: time.Now}
}

func (s *Service) File(orderID, buyerID int, reasons []string, description string, images []string) (Complaint, error) {
	if len(reasons) == 0 && strings.TrimSpace(description) == "" {
		return Complaint{}, ErrEmptyComplaint
	}
	if _, err := s.orders.RecordDissatisfaction(orderID, buyerID); err != nil {
		return Complaint{}, err
	}
	c := Complaint{
		OrderID:     orderID,
		BuyerID:     buyerID,
		Reasons:     reasons,
		Description: description,
		Images:      images,
		Status:      StatusOpen,
		CreatedAt:   s.now().UTC(),
	}
	return s.repo.Create(c)
}

func (s *Service) ListByOrder(orderID int) ([]Complaint, error) {
	return s.repo.ListByOrder(orderID)
}
