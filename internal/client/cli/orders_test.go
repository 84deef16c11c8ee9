package cli

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/ordertrack/internal/client/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddOrder(t *testing.T) {
	var gotProduct string
	var gotQuantity int32
	var gotPrice float64

	client := &fakeClient{
		createOrderFn: func(ctx context.Context, productName string, quantity int32, price float64) (*api.Order, error) {
			gotProduct = productName
			gotQuantity = quantity
			gotPrice = price
			return &api.Order{ID: "o1", ProductName: productName, Quantity: quantity, Price: price}, nil
		},
	}
	app := newTestApp(client)
	stubInput(t, []string{"Widget", "3", "9.99"}, nil)

	err := app.addOrder(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Widget", gotProduct)
	assert.Equal(t, int32(3), gotQuantity)
	assert.Equal(t, 9.99, gotPrice)
}

func TestAddOrder_BadQuantity(t *testing.T) {
	app := newTestApp(&fakeClient{})
	stubInput(t, []string{"Widget", "three"}, nil)

	err := app.addOrder(context.Background())
	assert.Error(t, err)
}

func TestUpdateOrder_PartialPatch(t *testing.T) {
	var gotID string
	var gotPatch *api.OrderPatch

	client := &fakeClient{
		updateOrderFn: func(ctx context.Context, id string, patch *api.OrderPatch) (*api.Order, error) {
			gotID = id
			gotPatch = patch
			return &api.Order{ID: id}, nil
		},
	}
	app := newTestApp(client)

	// only the quantity is changed, the other answers are left empty
	stubInput(t, []string{"o1", "", "5", ""}, nil)

	err := app.updateOrder(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "o1", gotID)
	assert.Nil(t, gotPatch.ProductName)
	require.NotNil(t, gotPatch.Quantity)
	assert.Equal(t, int32(5), *gotPatch.Quantity)
	assert.Nil(t, gotPatch.Price)
}

func TestDeleteOrder(t *testing.T) {
	var gotID string
	client := &fakeClient{
		deleteOrderFn: func(ctx context.Context, id string) error {
			gotID = id
			return nil
		},
	}
	app := newTestApp(client)
	stubInput(t, []string{"o1"}, nil)

	require.NoError(t, app.deleteOrder(context.Background()))
	assert.Equal(t, "o1", gotID)
}

func TestDeleteOrder_NotFound(t *testing.T) {
	client := &fakeClient{
		deleteOrderFn: func(ctx context.Context, id string) error {
			return api.ErrNotFound
		},
	}
	app := newTestApp(client)
	stubInput(t, []string{"missing"}, nil)

	err := app.deleteOrder(context.Background())
	assert.ErrorIs(t, err, api.ErrNotFound)
}

func TestListOrders_Error(t *testing.T) {
	client := &fakeClient{
		listOrdersFn: func(ctx context.Context) ([]api.Order, error) {
			return nil, api.ErrUnauthorized
		},
	}
	app := newTestApp(client)

	err := app.listOrders(context.Background())
	assert.ErrorIs(t, err, api.ErrUnauthorized)
}
