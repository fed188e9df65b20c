package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/declutterhub/marketplace-backend/internal/product"
	"github.com/declutterhub/marketplace-backend/internal/user"
)

const userID = 7

func newTestService() *Service {
	products := product.NewService(product.NewInMemoryRepository([]product.Product{
		{ID: 1, Name: "lamp", Price: 30, DeliveryFee: 5, Quantity: 1, Active: true, SellerID: 2},
		{ID: 2, Name: "chair", Price: 100, DeliveryFee: 20, Quantity: 3, Active: true, SellerID: 2},
	}), user.NewInMemoryRepository(nil))
	return NewService(NewInMemoryRepository(), products)
}

func TestAddAndTotals(t *testing.T) {
	svc := newTestService()

	_, err := svc.Add(userID, 1, 1)
	require.NoError(t, err)
	_, err = svc.Add(userID, 2, 2)
	require.NoError(t, err)

	cart, err := svc.Get(userID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 2)
	assert.Equal(t, 3, cart.ItemCount)
	assert.Equal(t, 230.0, cart.Subtotal)
	assert.Equal(t, 45.0, cart.DeliveryTotal)
	assert.Equal(t, 275.0, cart.Total)
}

func TestAddSameProductIncrements(t *testing.T) {
	svc := newTestService()

	_, err := svc.Add(userID, 2, 1)
	require.NoError(t, err)
	it, err := svc.Add(userID, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, it.Quantity)

	n, err := svc.Count(userID)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestAddUnknownProduct(t *testing.T) {
	svc := newTestService()
	_, err := svc.Add(userID, 99, 1)
	assert.ErrorIs(t, err, product.ErrNotFound)
}

func TestSetQuantityZeroRemoves(t *testing.T) {
	svc := newTestService()
	_, err := svc.Add(userID, 1, 1)
	require.NoError(t, err)

	_, err = svc.SetQuantity(userID, 1, 0)
	require.NoError(t, err)

	cart, err := svc.Get(userID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestRemoveMissingItem(t *testing.T) {
	svc := newTestService()
	err := svc.Remove(userID, 1)
	assert.ErrorIs(t, err, ErrNotInCart)
}

func TestClear(t *testing.T) {
	svc := newTestService()
	_, err := svc.Add(userID, 1, 1)
	require.NoError(t, err)
	_, err = svc.Add(userID, 2, 1)
	require.NoError(t, err)

	require.NoError(t, svc.Clear(userID))

	n, err := svc.Count(userID)
	require.NoError(t, err)
	assert.Zero(t, n)
}
