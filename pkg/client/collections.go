package client

import (
	"context"
	"strconv"
)

// Cart and wishlist are backend-held collections; the client refreshes them
// wholesale after every mutation instead of merging locally. Count refreshes
// are best effort: callers log failures and keep the current view.

// CartItem is one entry of the signed-in user's cart.
type CartItem struct {
	ProductID int
	Quantity  int
	Product   *Product
}

// Cart is the server-computed cart view including totals.
type Cart struct {
	Items         []CartItem
	Subtotal      float64
	DeliveryTotal float64
	Total         float64
	ItemCount     int
}

func (c *Client) Cart(ctx context.Context) (Cart, error) {
	var raw map[string]interface{}
	if err := c.get(ctx, "/api/cart", &raw); err != nil {
		return Cart{}, err
	}
	cart := Cart{
		Subtotal:      pickFloat(raw, "subtotal"),
		DeliveryTotal: pickFloat(raw, "deliveryTotal", "delivery_total"),
		Total:         pickFloat(raw, "total"),
		ItemCount:     pickInt(raw, "itemCount", "item_count"),
	}
	items, _ := raw["items"].([]interface{})
	for _, it := range items {
		entry, ok := it.(map[string]interface{})
		if !ok {
			continue
		}
		item := CartItem{
			ProductID: pickInt(entry, "productId", "product_id"),
			Quantity:  pickInt(entry, "quantity"),
		}
		if p, ok := entry["product"].(map[string]interface{}); ok {
			mapped := mapProduct(p)
			item.Product = &mapped
		}
		cart.Items = append(cart.Items, item)
	}
	return cart, nil
}

func (c *Client) CartCount(ctx context.Context) (int, error) {
	var raw map[string]interface{}
	if err := c.get(ctx, "/api/cart/count", &raw); err != nil {
		return 0, err
	}
	return pickInt(raw, "count"), nil
}

func (c *Client) AddToCart(ctx context.Context, productID, quantity int) error {
	body := map[string]int{"productId": productID, "quantity": quantity}
	return c.post(ctx, "/api/cart/add", body, nil)
}

func (c *Client) SetCartQuantity(ctx context.Context, productID, quantity int) error {
	body := map[string]int{"quantity": quantity}
	return c.put(ctx, "/api/cart/"+strconv.Itoa(productID), body, nil)
}

func (c *Client) RemoveFromCart(ctx context.Context, productID int) error {
	return c.delete(ctx, "/api/cart/"+strconv.Itoa(productID))
}

func (c *Client) ClearCart(ctx context.Context) error {
	return c.delete(ctx, "/api/cart")
}

// ToggleWishlist flips membership and returns the new state. The optimistic
// local flip a UI may do is superseded by the next successful refresh.
func (c *Client) ToggleWishlist(ctx context.Context, productID int) (bool, error) {
	var raw map[string]interface{}
	if err := c.post(ctx, "/api/wishlist/toggle/"+strconv.Itoa(productID), nil, &raw); err != nil {
		return false, err
	}
	return pickBool(raw, "isWishlisted", "is_wishlisted"), nil
}

func (c *Client) WishlistHas(ctx context.Context, productID int) (bool, error) {
	var raw map[string]interface{}
	if err := c.get(ctx, "/api/wishlist/check/"+strconv.Itoa(productID), &raw); err != nil {
		return false, err
	}
	return pickBool(raw, "isWishlisted", "is_wishlisted"), nil
}

func (c *Client) WishlistCount(ctx context.Context) (int, error) {
	var raw map[string]interface{}
	if err := c.get(ctx, "/api/wishlist/count", &raw); err != nil {
		return 0, err
	}
	return pickInt(raw, "count"), nil
}
