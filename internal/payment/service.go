package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/declutterhub/marketplace-backend/internal/order"
	"github.com/declutterhub/marketplace-backend/internal/product"
	"github.com/declutterhub/marketplace-backend/internal/user"
)

var (
	ErrOwnListing = errors.New("you cannot buy your own listing")
)

// InitializeResult is the checkout initiation outcome. Exactly one of
// AuthorizationURL (hand off to the gateway) or a bare OrderID (settled
// directly, zero-cost path) is meaningful; OK covers both.
type InitializeResult struct {
	OK               bool   `json:"ok"`
	OrderID          int    `json:"orderId,omitempty"`
	Reference        string `json:"reference,omitempty"`
	AuthorizationURL string `json:"authorization_url,omitempty"`
}

// VerifyResult is the verification outcome reported to the client.
type VerifyResult struct {
	OK      bool   `json:"ok"`
	Status  string `json:"status"`
	OrderID int    `json:"orderId,omitempty"`
	Message string `json:"message,omitempty"`
}

// Service ties checkout initiation and payment verification to the order
// lifecycle. It is the only code that moves an order to PAID.
type Service struct {
	orders   *order.Service
	products *product.Service
	users    user.Repository
	gateway  Gateway
}

func NewService(orders *order.Service, products *product.Service, users user.Repository, gateway Gateway) *Service {
	return &Service{orders: orders, products: products, users: users, gateway: gateway}
}

// Initialize creates a pending order for the product and asks the gateway
// for an authorization URL the buyer must be navigated to. Self-purchase is
// rejected here as well as in the client; the client guard is UX, this one
// is the rule.
func (s *Service) Initialize(ctx context.Context, buyerID, productID int, callbackURL string) (InitializeResult, error) {
	p, err := s.products.GetByID(productID)
	if err != nil {
		return InitializeResult{}, err
	}
	if p.SellerID == buyerID {
		return InitializeResult{}, ErrOwnListing
	}
	if !p.Purchasable() {
		return InitializeResult{}, product.ErrUnavailable
	}
	buyer, err := s.users.GetByID(buyerID)
	if err != nil {
		return InitializeResult{}, err
	}

	reference := uuid.NewString()
	ord, err := s.orders.CreatePending(reference, p.ID, buyerID, p.SellerID, p.Price, p.DeliveryFee)
	if err != nil {
		return InitializeResult{}, err
	}

	// nothing to charge: settle the order immediately, no gateway handoff
	if ord.TotalAmount == 0 {
		if _, err := s.orders.MarkPaid(reference); err != nil && err != order.ErrAlreadyVerified {
			return InitializeResult{}, err
		}
		if _, err := s.products.RecordSale(p.ID); err != nil {
			fmt.Printf("warning: could not record sale for product %d: %v\n", p.ID, err)
		}
		return InitializeResult{OK: true, OrderID: ord.ID, Reference: reference}, nil
	}

	authURL, err := s.gateway.Initialize(ctx, InitializeParams{
		Reference:   reference,
		Email:       buyer.Email,
		Amount:      ord.TotalAmount,
		CallbackURL: callbackURL,
	})
	if err != nil {
		return InitializeResult{}, err
	}
	return InitializeResult{
		OK:               true,
		OrderID:          ord.ID,
		Reference:        reference,
		AuthorizationURL: authURL,
	}, nil
}

// Verify checks the reference with the gateway and, on confirmation, moves
// the order to PAID and records the sale against the product's stock.
// Verifying an already-paid order returns order.ErrAlreadyVerified; callers
// surface that as the documented "already verified" conflict, which clients
// treat as success.
func (s *Service) Verify(ctx context.Context, reference string) (VerifyResult, error) {
	ord, err := s.orders.GetByReference(reference)
	if err != nil {
		return VerifyResult{}, err
	}
	if ord.Status != order.StatusUnderReview {
		return VerifyResult{}, order.ErrAlreadyVerified
	}

	v, err := s.gateway.Verify(ctx, reference)
	if err != nil {
		return VerifyResult{}, err
	}
	if !v.Verified {
		return VerifyResult{
			OK:      false,
			Status:  "failed",
			OrderID: ord.ID,
			Message: v.Message,
		}, nil
	}

	paid, err := s.orders.MarkPaid(reference)
	if err != nil {
		return VerifyResult{}, err
	}
	if _, err := s.products.RecordSale(paid.ProductID); err != nil {
		fmt.Printf("warning: could not record sale for product %d: %v\n", paid.ProductID, err)
	}

	return VerifyResult{
		OK:      true,
		Status:  "success",
		OrderID: paid.ID,
	}, nil
}
