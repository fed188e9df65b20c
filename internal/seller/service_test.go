package seller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/declutterhub/marketplace-backend/internal/order"
	"github.com/declutterhub/marketplace-backend/internal/product"
	"github.com/declutterhub/marketplace-backend/internal/user"
)

func TestStats(t *testing.T) {
	products := product.NewService(product.NewInMemoryRepository([]product.Product{
		{ID: 1, SellerID: 2, Active: true, Quantity: 1},
		{ID: 2, SellerID: 2, Active: true, OutOfStock: true},
		{ID: 3, SellerID: 2, Active: false},
		{ID: 4, SellerID: 9, Active: true, Quantity: 1},
	}), user.NewInMemoryRepository(nil))
	orders := order.NewService(order.NewInMemoryRepository([]order.Order{
		{ID: 1, SellerID: 2, BuyerID: 5, Price: 100, Status: order.StatusDelivered},
		{ID: 2, SellerID: 2, BuyerID: 5, Price: 200, Status: order.StatusCompleted},
		{ID: 3, SellerID: 2, BuyerID: 5, Price: 50, Status: order.StatusShipped},
		{ID: 4, SellerID: 9, BuyerID: 5, Price: 999, Status: order.StatusCompleted},
	}))
	svc := NewService(orders, products)

	st, err := svc.Stats(2)
	require.NoError(t, err)
	assert.Equal(t, 3, st.ItemsListed)
	assert.Equal(t, 1, st.ActiveListings)
	assert.Equal(t, 2, st.ItemsSold, "a sale counts once delivered")
	assert.Equal(t, 300.0, st.Revenue, "in-flight orders are not revenue yet")

	total, err := svc.TotalSales(2)
	require.NoError(t, err)
	assert.Equal(t, 300.0, total)
}
