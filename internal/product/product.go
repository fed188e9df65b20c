package product

import (
	"errors"
	"time"

	"github.com/declutterhub/marketplace-backend/internal/user"
)

var (
	ErrNotFound    = errors.New("product not found")
	ErrForbidden   = errors.New("not the owner of this listing")
	ErrUnavailable = errors.New("product is not available for purchase")
)

// Listing types. Declutter items are one-off second-hand listings; Online
// Store items carry a quantity the backend decrements on purchase.
const (
	TypeDeclutter   = "Declutter"
	TypeOnlineStore = "Online Store"
)

type Product struct {
	ID              int          `json:"id"`
	Name            string       `json:"name"`
	Description     string       `json:"description"`
	Price           float64      `json:"price"`
	DeliveryFee     float64      `json:"deliveryFee"`
	Condition       string       `json:"condition"`
	ConditionRating int          `json:"conditionRating"`
	Images          []string     `json:"images"`
	LocationState   string       `json:"locationState"`
	Type            string       `json:"type"`
	Quantity        int          `json:"quantity"`
	OutOfStock      bool         `json:"outOfStock"`
	Active          bool         `json:"active"`
	IsDisabled      bool         `json:"isDisabled"`
	SellerID        int          `json:"sellerId"`
	Seller          *user.Public `json:"seller,omitempty"`
	CreatedAt       time.Time    `json:"createdAt"`
}

// Purchasable reports whether the product can be bought right now.
func (p Product) Purchasable() bool {
	return p.Active && !p.IsDisabled && !p.OutOfStock && p.Quantity > 0
}

// Filter narrows product listings. Empty fields match everything.
type Filter struct {
	Search    string
	Location  string
	Condition string
}
