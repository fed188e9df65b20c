package order

import (
	"time"
)

// Service enforces the order lifecycle rules: who may trigger each
// transition, forward-only movement, and the post-delivery satisfaction
// window.
type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(r Repository) *Service {
	return &Service{repo: r, now: time.Now}
}

// CreatePending records a new order awaiting payment confirmation. The
// commercial terms are fixed here and never change afterwards.
func (s *Service) CreatePending(reference string, productID, buyerID, sellerID int, price, deliveryFee float64) (Order, error) {
	ord := Order{
		Reference:    reference,
		ProductID:    productID,
		BuyerID:      buyerID,
		SellerID:     sellerID,
		Price:        price,
		DeliveryFee:  deliveryFee,
		Status:       StatusUnderReview,
		Satisfaction: SatisfactionPending,
		CreatedAt:    s.now().UTC(),
	}
	ord.TotalAmount = ord.Total()
	return s.repo.Create(ord)
}

// MarkPaid applies the gateway-confirmed payment for the given reference.
// The repository performs the transition as one conditional write, so two
// concurrent verifications of the same reference produce exactly one PAID
// transition; the loser gets the current order with ErrAlreadyVerified,
// which callers treat as a duplicate attempt rather than a failure.
func (s *Service) MarkPaid(reference string) (Order, error) {
	return s.repo.MarkPaid(reference)
}

// UpdateStatus is the seller's explicit status-update action. Only the
// order's seller may call it, and only for the forward moves the seller
// owns (PAID -> PROCESSING -> SHIPPED).
func (s *Service) UpdateStatus(orderID, sellerID int, target Status) (Order, error) {
	ord, err := s.repo.GetByID(orderID)
	if err != nil {
		return Order{}, err
	}
	if ord.SellerID != sellerID {
		return Order{}, ErrForbidden
	}
	if err := ValidateTransition(ActorSeller, ord.Status, target); err != nil {
		return Order{}, err
	}
	if err := s.repo.UpdateStatus(ord.ID, target); err != nil {
		return Order{}, err
	}
	ord.Status = target
	return ord, nil
}

// ConfirmReceived is the buyer's receipt confirmation. It moves the order to
// DELIVERED, stamps DeliveredAt and opens the satisfaction window.
func (s *Service) ConfirmReceived(orderID, buyerID int) (Order, error) {
	ord, err := s.repo.GetByID(orderID)
	if err != nil {
		return Order{}, err
	}
	if ord.BuyerID != buyerID {
		return Order{}, ErrForbidden
	}
	if err := ValidateTransition(ActorBuyer, ord.Status, StatusDelivered); err != nil {
		return Order{}, err
	}
	at := s.now().UTC()
	if err := s.repo.SetDelivered(ord.ID, at); err != nil {
		return Order{}, err
	}
	ord.Status = StatusDelivered
	ord.DeliveredAt = &at
	return ord, nil
}

// ConfirmSatisfied is the buyer marking the order as satisfactory, which
// completes it.
func (s *Service) ConfirmSatisfied(orderID, buyerID int) (Order, error) {
	ord, err := s.repo.GetByID(orderID)
	if err != nil {
		return Order{}, err
	}
	if ord.BuyerID != buyerID {
		return Order{}, ErrForbidden
	}
	if err := ValidateTransition(ActorBuyer, ord.Status, StatusCompleted); err != nil {
		return Order{}, err
	}
	if err := s.repo.SetSatisfaction(ord.ID, SatisfactionSatisfied); err != nil {
		return Order{}, err
	}
	if err := s.repo.UpdateStatus(ord.ID, StatusCompleted); err != nil {
		return Order{}, err
	}
	ord.Satisfaction = SatisfactionSatisfied
	ord.Status = StatusCompleted
	return ord, nil
}

// RecordDissatisfaction flags a delivered order as disputed so it will not
// complete on its own when the satisfaction window elapses. Used when a
// complaint is filed; the complaint itself is recorded elsewhere.
func (s *Service) RecordDissatisfaction(orderID, buyerID int) (Order, error) {
	ord, err := s.repo.GetByID(orderID)
	if err != nil {
		return Order{}, err
	}
	if ord.BuyerID != buyerID {
		return Order{}, ErrForbidden
	}
	if ord.Status != StatusDelivered {
		return Order{}, ErrInvalidTransition
	}
	if ord.DeliveredAt != nil && s.now().After(ord.DeliveredAt.Add(SatisfactionWindow)) {
		return Order{}, ErrInvalidTransition
	}
	if err := s.repo.SetSatisfaction(ord.ID, SatisfactionNotSatisfied); err != nil {
		return Order{}, err
	}
	ord.Satisfaction = SatisfactionNotSatisfied
	return ord, nil
}

func (s *Service) GetByID(id int) (Order, error) {
	ord, err := s.repo.GetByID(id)
	if err != nil {
		return Order{}, err
	}
	return s.finalizeExpired(ord)
}

func (s *Service) GetByReference(reference string) (Order, error) {
	return s.repo.GetByReference(reference)
}

// ListForUser returns every order the user participates in, as buyer or as
// seller. Self-purchase is rejected at checkout, so the two sets are
// disjoint.
func (s *Service) ListForUser(userID int) ([]Order, error) {
	bought, err := s.repo.ListByBuyer(userID)
	if err != nil {
		return nil, err
	}
	sold, err := s.repo.ListBySeller(userID)
	if err != nil {
		return nil, err
	}
	return s.finalizeAll(append(bought, sold...))
}

func (s *Service) ListForSeller(sellerID int) ([]Order, error) {
	sold, err := s.repo.ListBySeller(sellerID)
	if err != nil {
		return nil, err
	}
	return s.finalizeAll(sold)
}

// ListAll is the admin view over every order.
func (s *Service) ListAll() ([]Order, error) {
	all, err := s.repo.ListAll()
	if err != nil {
		return nil, err
	}
	return s.finalizeAll(all)
}

func (s *Service) finalizeAll(orders []Order) ([]Order, error) {
	for i, ord := range orders {
		done, err := s.finalizeExpired(ord)
		if err != nil {
			return nil, err
		}
		orders[i] = done
	}
	return orders, nil
}

// finalizeExpired completes a delivered order whose satisfaction window has
// elapsed without a dispute. Run lazily on reads; the backend stays the sole
// arbiter of the transition.
func (s *Service) finalizeExpired(ord Order) (Order, error) {
	if ord.Status != StatusDelivered || ord.Satisfaction != SatisfactionPending {
		return ord, nil
	}
	if ord.DeliveredAt == nil || s.now().Before(ord.DeliveredAt.Add(SatisfactionWindow)) {
		return ord, nil
	}
	if err := s.repo.UpdateStatus(ord.ID, StatusCompleted); err != nil {
		return Order{}, err
	}
	ord.Status = StatusCompleted
	return ord, nil
}
