package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapOrderCamelCase(t *testing.T) {
	o := mapOrder(map[string]interface{}{
		"id":                 float64(3),
		"reference":          "ref-1",
		"productId":          float64(9),
		"buyerId":            float64(10),
		"sellerId":           float64(20),
		"price":              float64(5000),
		"deliveryFee":        float64(500),
		"status":             "shipped",
		"satisfactionStatus": "PENDING",
		"createdAt":          "2026-03-01T10:00:00Z",
	})

	assert.Equal(t, 3, o.ID)
	assert.Equal(t, "ref-1", o.Reference)
	assert.Equal(t, "SHIPPED", o.Status, "statuses are normalized to upper case")
	assert.Equal(t, 5500.0, o.TotalAmount)
	assert.Nil(t, o.DeliveredAt)
	assert.False(t, o.CreatedAt.IsZero())
}

func TestMapOrderSnakeCase(t *testing.T) {
	o := mapOrder(map[string]interface{}{
		"order_id":     float64(4),
		"product_id":   float64(9),
		"buyer_id":     float64(10),
		"seller_id":    float64(20),
		"price":        float64(100),
		"delivery_fee": float64(25),
		"status":       "DELIVERED",
		"delivered_at": "2026-03-01T15:00:00Z",
	})

	assert.Equal(t, 4, o.ID)
	assert.Equal(t, 125.0, o.TotalAmount)
	assert.Equal(t, "PENDING", o.Satisfaction, "missing satisfaction defaults to PENDING")
	require.NotNil(t, o.DeliveredAt)
	assert.Equal(t, 15, o.DeliveredAt.UTC().Hour())
}

func TestTotalAlwaysDerived(t *testing.T) {
	// a payload may carry its own total; the mapping layer never trusts it
	cases := []struct {
		price, fee float64
	}{
		{0, 0},
		{5000, 500},
		{99.99, 0.01},
		{1, 2},
	}
	for _, tc := range cases {
		o := mapOrder(map[string]interface{}{
			"price":       tc.price,
			"deliveryFee": tc.fee,
			"totalAmount": float64(123456),
		})
		assert.Equal(t, tc.price+tc.fee, o.TotalAmount)
	}
}

func TestMapProductMixedNaming(t *testing.T) {
	p := mapProduct(map[string]interface{}{
		"productId":    float64(5),
		"name":         "lamp",
		"price":        float64(30),
		"delivery_fee": float64(5),
		"images":       []interface{}{"a.jpg", "b.jpg"},
		"out_of_stock": true,
		"sellerId":     float64(2),
		"quantity":     float64(0),
	})

	assert.Equal(t, 5, p.ID)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, p.Images)
	assert.True(t, p.OutOfStock)
	assert.Equal(t, 2, p.SellerID)
}

func TestMapUserSnakeCase(t *testing.T) {
	u := mapUser(map[string]interface{}{
		"user_id":             float64(7),
		"email":               "a@b.c",
		"full_name":           "Ada Example",
		"bank_account_number": "0123456789",
		"role":                "regular",
	})

	assert.Equal(t, 7, u.ID)
	assert.Equal(t, "Ada Example", u.FullName)
	assert.Equal(t, "0123456789", u.BankAccount)
}

func TestPickHelpersTolerateMissingAndOddTypes(t *testing.T) {
	raw := map[string]interface{}{
		"count":  "12",
		"flag":   "true",
		"absent": nil,
	}
	assert.Equal(t, 12, pickInt(raw, "count"))
	assert.True(t, pickBool(raw, "flag"))
	assert.Equal(t, "", pickString(raw, "absent", "missing"))
	assert.Equal(t, 0.0, pickFloat(raw, "missing"))
	assert.Nil(t, pickStrings(raw, "missing"))
}
