package impl

import (
	"context"
	"testing"

	"mazraa/internal/domain/entity"
	domainerrors "mazraa/internal/domain/errors"
	"mazraa/internal/i18n"
	"mazraa/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceOrderNotifiesMerchant(t *testing.T) {
	env := newTestEnv(t)
	svc := env.orderService()
	ctx := context.Background()

	storefront, err := env.products.ListApproved(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, storefront)
	product := storefront[0]

	feedBefore, err := env.notificationService().Feed(ctx, merchantActor())
	require.NoError(t, err)

	order, err := svc.PlaceOrder(ctx, farmerActor(), &usecase.PlaceOrderInput{
		ProductID: product.ID,
		Quantity:  3,
	}, i18n.LocaleArabic)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderPending, order.Status)
	assert.Equal(t, 3, order.Quantity)

	feedAfter, err := env.notificationService().Feed(ctx, merchantActor())
	require.NoError(t, err)
	require.Len(t, feedAfter, len(feedBefore)+1)

	// Newest first: the fresh order notification leads the feed and names
	// the farmer, the product and the quantity.
	latest := feedAfter[0]
	assert.Equal(t, entity.NotificationOrder, latest.Type)
	assert.Equal(t, i18n.MsgNewOrderTitle.In(i18n.LocaleArabic), latest.Title)
	assert.Contains(t, latest.Message, product.Name)
	assert.Contains(t, latest.Message, "صالح")

	// The order shows up on both sides.
	mine, err := svc.MyOrders(ctx, farmerActor())
	require.NoError(t, err)
	assert.Equal(t, order.ID, mine[0].ID)

	theirs, err := svc.MerchantOrders(ctx, merchantActor())
	require.NoError(t, err)
	assert.Equal(t, order.ID, theirs[0].ID)
}

func TestPlaceOrderFarmerOnly(t *testing.T) {
	env := newTestEnv(t)
	svc := env.orderService()
	ctx := context.Background()

	storefront, err := env.products.ListApproved(ctx)
	require.NoError(t, err)
	input := &usecase.PlaceOrderInput{ProductID: storefront[0].ID, Quantity: 1}

	_, err = svc.PlaceOrder(ctx, guestActor(), input, i18n.LocaleArabic)
	assert.True(t, errors.Is(err, domainerrors.ErrFarmerOnly))

	_, err = svc.PlaceOrder(ctx, merchantActor(), input, i18n.LocaleArabic)
	assert.True(t, errors.Is(err, domainerrors.ErrFarmerOnly))

	// Nothing was recorded either way.
	orders, err := env.orders.ListByMerchant(ctx, merchantActor().ID)
	require.NoError(t, err)
	for _, o := range orders {
		assert.NotEqual(t, guestActor().ID, o.FarmerID)
	}
}

func TestPlaceOrderValidation(t *testing.T) {
	env := newTestEnv(t)
	svc := env.orderService()
	ctx := context.Background()

	storefront, err := env.products.ListApproved(ctx)
	require.NoError(t, err)

	_, err = svc.PlaceOrder(ctx, farmerActor(), &usecase.PlaceOrderInput{
		ProductID: storefront[0].ID,
		Quantity:  0,
	}, i18n.LocaleArabic)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidQuantity))

	_, err = svc.PlaceOrder(ctx, farmerActor(), &usecase.PlaceOrderInput{
		ProductID: uuid.New(),
		Quantity:  1,
	}, i18n.LocaleArabic)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestSeededOrdersVisible(t *testing.T) {
	env := newTestEnv(t)
	svc := env.orderService()
	ctx := context.Background()

	mine, err := svc.MyOrders(ctx, farmerActor())
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	theirs, err := svc.MerchantOrders(ctx, merchantActor())
	require.NoError(t, err)
	assert.Len(t, theirs, 2)

	// Orders never leave pending without an explicit transition, and none
	// exists.
	for _, o := range append(mine, theirs...) {
		assert.Equal(t, entity.OrderPending, o.Status)
	}
}
