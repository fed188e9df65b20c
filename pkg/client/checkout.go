package client

import (
	"context"
	"errors"
	"fmt"
)

// ErrOwnListing rejects self-purchase before any network call. The backend
// enforces the same rule; this guard only saves the round trip.
var ErrOwnListing = errors.New("you cannot buy your own listing")

// SignInRequiredError carries the product the buyer was checking out so the
// purchase can resume after login.
type SignInRequiredError struct {
	ProductID int
}

func (e *SignInRequiredError) Error() string {
	return fmt.Sprintf("sign in required to buy product %d", e.ProductID)
}

// CheckoutResult is the initiation outcome. Exactly one of the three applies:
// Navigate means the full browser context must go to that URL (a background
// fetch will not complete the gateway handoff), OrderID means the order
// settled with no payment step, ShowOrders is the fallback when the backend
// reports ok with neither.
type CheckoutResult struct {
	Navigate   string
	OrderID    int
	Reference  string
	ShowOrders bool
}

// Checkout starts a purchase of the given product. Preconditions are checked
// before any network call; backend failures surface their message verbatim
// and are never retried automatically.
func (c *Client) Checkout(ctx context.Context, p Product) (CheckoutResult, error) {
	if !c.SignedIn() {
		return CheckoutResult{}, &SignInRequiredError{ProductID: p.ID}
	}
	if u := c.CurrentUser(); u != nil && u.ID == p.SellerID {
		return CheckoutResult{}, ErrOwnListing
	}

	body := map[string]interface{}{
		"productId":   p.ID,
		"callbackUrl": c.callbackURL,
	}
	var raw map[string]interface{}
	if err := c.post(ctx, "/api/payments/initialize", body, &raw); err != nil {
		return CheckoutResult{}, err
	}

	result := CheckoutResult{
		OrderID:   pickInt(raw, "orderId", "order_id"),
		Reference: pickString(raw, "reference"),
	}
	if url := pickString(raw, "authorization_url", "authorizationUrl"); url != "" {
		result.Navigate = url
		return result, nil
	}
	if result.OrderID > 0 {
		return result, nil
	}
	// ambiguous success: fall back to the order list instead of failing
	result.ShowOrders = true
	return result, nil
}
