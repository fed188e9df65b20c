package complaint

import (
	"errors"
	"time"
)

var (
	ErrEmptyComplaint = errors.New("a complaint needs at least one reason or a description")
)

// Complaint records a buyer's dispute filed inside the satisfaction window.
// It is recorded and blocks implicit completion of the order; no further
// processing happens here.
type Complaint struct {
	ID          int       `json:"id"`
	OrderID     int       `json:"orderId"`
	BuyerID     int       `json:"buyerId"`
	Reasons     []string  `json:"reasons"`
	Description string    `json:"description"`
	Images      []string  `json:"images"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

const StatusOpen = "OPEN"
