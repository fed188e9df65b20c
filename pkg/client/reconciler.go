package client

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DisplayState is what the verification screen shows. Verifying is the only
// non-terminal state; it has no timeout of its own beyond the HTTP client's.
type DisplayState string

const (
	StateVerifying DisplayState = "verifying"
	StateSuccess   DisplayState = "success"
	StateFailed    DisplayState = "failed"
	StateError     DisplayState = "error"
)

const ordersPath = "/orders"

// ReconcileOutcome is a terminal display state plus where to send the user.
// Successful verification never mutates local order state; the orders list
// re-fetches authoritative state from the backend.
type ReconcileOutcome struct {
	State      DisplayState
	OrderID    int
	Message    string
	NavigateTo string
}

// VerifyResponse is the backend's verification result.
type VerifyResponse struct {
	OK      bool
	Status  string
	OrderID int
	Message string
}

// Reconciler confirms a previously-initiated payment with the backend and
// resolves the result to a terminal display state.
type Reconciler struct {
	client *Client

	// simulated settlement delay on the mock path
	settleDelay time.Duration
}

func NewReconciler(c *Client) *Reconciler {
	return &Reconciler{client: c, settleDelay: 2 * time.Second}
}

// ReferenceFromQuery extracts the payment reference from a callback URL
// query. The gateway uses either parameter name depending on the return leg.
func ReferenceFromQuery(query url.Values) string {
	if ref := query.Get("reference"); ref != "" {
		return ref
	}
	return query.Get("trxref")
}

// Reconcile issues the single verification call for the reference and maps
// the response to a terminal state. An HTTP 400 whose message says the
// payment was already processed is a duplicate attempt, not a failure, and
// resolves to success; reloading the callback page must not flip a settled
// payment to a failure screen.
func (r *Reconciler) Reconcile(ctx context.Context, reference string) ReconcileOutcome {
	resp, err := r.client.VerifyPayment(ctx, reference)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			if apiErr.StatusCode == http.StatusBadRequest &&
				strings.Contains(strings.ToLower(apiErr.Message), "already") {
				return ReconcileOutcome{State: StateSuccess, NavigateTo: ordersPath}
			}
		}
		// network errors, timeouts and unexpected statuses all land here;
		// neither success nor failure can be assumed
		return ReconcileOutcome{
			State:      StateError,
			Message:    "unable to verify payment",
			NavigateTo: ordersPath,
		}
	}

	if resp.OK || strings.EqualFold(resp.Status, "success") {
		return ReconcileOutcome{State: StateSuccess, OrderID: resp.OrderID, NavigateTo: ordersPath}
	}
	return ReconcileOutcome{
		State:      StateFailed,
		OrderID:    resp.OrderID,
		Message:    resp.Message,
		NavigateTo: ordersPath,
	}
}

// MockPay is the local settlement path: wait the fixed simulated delay, then
// verify exactly once. Cancelling the context abandons the flow.
func (r *Reconciler) MockPay(ctx context.Context, reference string) ReconcileOutcome {
	select {
	case <-ctx.Done():
		return ReconcileOutcome{
			State:      StateError,
			Message:    "unable to verify payment",
			NavigateTo: ordersPath,
		}
	case <-time.After(r.settleDelay):
	}
	return r.Reconcile(ctx, reference)
}

// VerifyPayment calls the backend verification endpoint for the reference.
func (c *Client) VerifyPayment(ctx context.Context, reference string) (VerifyResponse, error) {
	var raw map[string]interface{}
	if err := c.get(ctx, "/api/payments/verify/"+url.PathEscape(reference), &raw); err != nil {
		return VerifyResponse{}, err
	}
	return VerifyResponse{
		OK:      pickBool(raw, "ok"),
		Status:  pickString(raw, "status"),
		OrderID: pickInt(raw, "orderId", "order_id"),
		Message: pickString(raw, "message"),
	}, nil
}
