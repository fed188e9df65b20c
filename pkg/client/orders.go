package client

import (
	"context"
	"strconv"
	"strings"
)

// MyOrders lists every order the signed-in user participates in.
func (c *Client) MyOrders(ctx context.Context) ([]Order, error) {
	var raws []map[string]interface{}
	if err := c.get(ctx, "/api/orders/my", &raws); err != nil {
		return nil, err
	}
	return mapOrders(raws), nil
}

// AllOrders is the admin view over every order.
func (c *Client) AllOrders(ctx context.Context) ([]Order, error) {
	var raws []map[string]interface{}
	if err := c.get(ctx, "/api/orders", &raws); err != nil {
		return nil, err
	}
	return mapOrders(raws), nil
}

// UpdateOrderStatus is the seller's status-update action. The menu offered
// to the seller only contains the next forward step; the backend validates
// the transition regardless.
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID int, status string) (Order, error) {
	body := map[string]string{"status": strings.ToUpper(status)}
	var raw map[string]interface{}
	if err := c.put(ctx, "/api/orders/"+strconv.Itoa(orderID)+"/status", body, &raw); err != nil {
		return Order{}, err
	}
	return mapOrder(raw), nil
}

// ConfirmReceived is the buyer's receipt confirmation; it opens the
// satisfaction window.
func (c *Client) ConfirmReceived(ctx context.Context, orderID int) (Order, error) {
	var raw map[string]interface{}
	if err := c.post(ctx, "/api/orders/"+strconv.Itoa(orderID)+"/confirm_received", nil, &raw); err != nil {
		return Order{}, err
	}
	return mapOrder(raw), nil
}

// ConfirmSatisfied marks the order satisfactory, completing it.
func (c *Client) ConfirmSatisfied(ctx context.Context, orderID int) (Order, error) {
	var raw map[string]interface{}
	if err := c.post(ctx, "/api/orders/"+strconv.Itoa(orderID)+"/confirm_satisfied", nil, &raw); err != nil {
		return Order{}, err
	}
	return mapOrder(raw), nil
}
