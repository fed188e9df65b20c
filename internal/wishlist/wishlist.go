package wishlist

import (
	"errors"
	"time"

	"github.com/declutterhub/marketplace-backend/internal/product"
)

var (
	ErrNotWishlisted = errors.New("product not in wishlist")
)

// Item is one saved product.
type Item struct {
	ID        int              `json:"id"`
	ProductID int              `json:"productId"`
	Product   *product.Product `json:"product,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
}

// Wishlist is the server view the client refreshes wholesale after every
// mutation; any optimistic client-side toggle is superseded by it.
type Wishlist struct {
	Items     []Item `json:"items"`
	ItemCount int    `json:"itemCount"`
}
