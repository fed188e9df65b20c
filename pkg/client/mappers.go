package client

import (
	"strconv"
	"strings"
	"time"
)

// The backend and older API variants disagree on field naming (snake_case
// vs camelCase). Normalization happens here once, at the boundary; nothing
// past this file branches on payload naming.

// Order is the client-side projection of an order. Read-mostly; never
// treated as a source of truth between requests.
type Order struct {
	ID           int
	Reference    string
	ProductID    int
	BuyerID      int
	SellerID     int
	Price        float64
	DeliveryFee  float64
	TotalAmount  float64
	Status       string
	Satisfaction string
	CreatedAt    time.Time
	DeliveredAt  *time.Time
}

// Product is the client-side projection of a listing.
type Product struct {
	ID            int
	Name          string
	Description   string
	Price         float64
	DeliveryFee   float64
	Condition     string
	Images        []string
	LocationState string
	Type          string
	Quantity      int
	OutOfStock    bool
	Active        bool
	SellerID      int
}

// User is the client-side projection of the signed-in profile.
type User struct {
	ID           int
	Email        string
	FullName     string
	Whatsapp     string
	HouseAddress string
	BankAccount  string
	BankName     string
	Role         string
}

func mapOrder(raw map[string]interface{}) Order {
	price := pickFloat(raw, "price", "unit_price", "unitPrice")
	fee := pickFloat(raw, "deliveryFee", "delivery_fee")

	o := Order{
		ID:           pickInt(raw, "id", "orderId", "order_id"),
		Reference:    pickString(raw, "reference", "payment_reference", "paymentReference"),
		ProductID:    pickInt(raw, "productId", "product_id"),
		BuyerID:      pickInt(raw, "buyerId", "buyer_id"),
		SellerID:     pickInt(raw, "sellerId", "seller_id"),
		Price:        price,
		DeliveryFee:  fee,
		Status:       strings.ToUpper(pickString(raw, "status")),
		Satisfaction: strings.ToUpper(pickString(raw, "satisfactionStatus", "satisfaction_status", "satisfaction")),
		CreatedAt:    pickTime(raw, "createdAt", "created_at"),
	}
	// the total is always derived, never trusted from the payload
	o.TotalAmount = o.Price + o.DeliveryFee
	if o.Satisfaction == "" {
		o.Satisfaction = "PENDING"
	}
	if t := pickTime(raw, "deliveredAt", "delivered_at"); !t.IsZero() {
		o.DeliveredAt = &t
	}
	return o
}

func mapProduct(raw map[string]interface{}) Product {
	return Product{
		ID:            pickInt(raw, "id", "productId", "product_id"),
		Name:          pickString(raw, "name", "product_name", "productName"),
		Description:   pickString(raw, "description"),
		Price:         pickFloat(raw, "price"),
		DeliveryFee:   pickFloat(raw, "deliveryFee", "delivery_fee"),
		Condition:     pickString(raw, "condition"),
		Images:        pickStrings(raw, "images"),
		LocationState: pickString(raw, "locationState", "location_state"),
		Type:          pickString(raw, "type"),
		Quantity:      pickInt(raw, "quantity"),
		OutOfStock:    pickBool(raw, "outOfStock", "out_of_stock"),
		Active:        pickBool(raw, "active"),
		SellerID:      pickInt(raw, "sellerId", "seller_id"),
	}
}

func mapUser(raw map[string]interface{}) User {
	return User{
		ID:           pickInt(raw, "id", "userId", "user_id"),
		Email:        pickString(raw, "email"),
		FullName:     pickString(raw, "fullName", "full_name"),
		Whatsapp:     pickString(raw, "whatsapp"),
		HouseAddress: pickString(raw, "houseAddress", "house_address"),
		BankAccount:  pickString(raw, "bankAccount", "bank_account_number", "bankAccountNumber"),
		BankName:     pickString(raw, "bankName", "bank_name"),
		Role:         pickString(raw, "role"),
	}
}

func mapOrders(raws []map[string]interface{}) []Order {
	out := make([]Order, 0, len(raws))
	for _, raw := range raws {
		out = append(out, mapOrder(raw))
	}
	return out
}

func mapProducts(raws []map[string]interface{}) []Product {
	out := make([]Product, 0, len(raws))
	for _, raw := range raws {
		out = append(out, mapProduct(raw))
	}
	return out
}

func pick(raw map[string]interface{}, keys ...string) (interface{}, bool) {
	for _, k := range keys {
		if v, ok := raw[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func pickString(raw map[string]interface{}, keys ...string) string {
	v, ok := pick(raw, keys...)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

func pickFloat(raw map[string]interface{}, keys ...string) float64 {
	v, ok := pick(raw, keys...)
	if !ok {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case string:
		f, _ := strconv.ParseFloat(n, 64)
		return f
	}
	return 0
}

func pickInt(raw map[string]interface{}, keys ...string) int {
	return int(pickFloat(raw, keys...))
}

func pickBool(raw map[string]interface{}, keys ...string) bool {
	v, ok := pick(raw, keys...)
	if !ok {
		return false
	}
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return b == "true"
	}
	return false
}

func pickStrings(raw map[string]interface{}, keys ...string) []string {
	v, ok := pick(raw, keys...)
	if !ok {
		return nil
	}
	items, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s, ok := it.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func pickTime(raw map[string]interface{}, keys ...string) time.Time {
	s := pickString(raw, keys...)
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
