package order

import (
	"errors"
	"time"
)

var (
	ErrNotFound          = errors.New("order not found")
	ErrForbidden         = errors.New("not allowed for this order")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrAlreadyVerified   = errors.New("payment already verified")
)

// SatisfactionWindow is how long a buyer has after confirming receipt to
// report a problem before the order completes on its own.
const SatisfactionWindow = time.Hour

// Satisfaction tracks the buyer's post-delivery verdict, independent of the
// lifecycle status.
type Satisfaction string

const (
	SatisfactionPending      Satisfaction = "PENDING"
	SatisfactionNotSatisfied Satisfaction = "NOT_SATISFIED"
	SatisfactionSatisfied    Satisfaction = "SATISFIED"
)

// Order represents one buyer's purchase of one listed product. Parties and
// commercial terms are immutable once created; only Status, Satisfaction and
// DeliveredAt change, and only through the service.
type Order struct {
	ID           int          `json:"id"`
	Reference    string       `json:"reference"`
	ProductID    int          `json:"productId"`
	BuyerID      int          `json:"buyerId"`
	SellerID     int          `json:"sellerId"`
	Price        float64      `json:"price"`
	DeliveryFee  float64      `json:"deliveryFee"`
	TotalAmount  float64      `json:"totalAmount"`
	Status       Status       `json:"status"`
	Satisfaction Satisfaction `json:"satisfactionStatus"`
	CreatedAt    time.Time    `json:"createdAt"`
	DeliveredAt  *time.Time   `json:"deliveredAt"`
}

// Total recomputes the derived amount; TotalAmount must always equal it.
func (o Order) Total() float64 {
	return o.Price + o.DeliveryFee
}
