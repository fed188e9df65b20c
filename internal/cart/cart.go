package cart

import (
	"errors"
	"time"

	"github.com/declutterhub/marketplace-backend/internal/product"
)

var (
	ErrNotInCart = errors.New("product not in cart")
)

// Item is one cart line: a product and how many units of it.
type Item struct {
	ID        int              `json:"id"`
	ProductID int              `json:"productId"`
	Quantity  int              `json:"quantity"`
	Product   *product.Product `json:"product,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
}

// Cart is the server-computed view the client renders verbatim: totals are
// never derived client-side.
type Cart struct {
	Items         []Item  `json:"items"`
	Subtotal      float64 `json:"subtotal"`
	DeliveryTotal float64 `json:"deliveryTotal"`
	Total         float64 `json:"total"`
	ItemCount     int     `json:"itemCount"`
}
