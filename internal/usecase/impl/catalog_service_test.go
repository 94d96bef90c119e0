package impl

import (
	"context"
	"testing"
	"time"

	"mazraa/internal/domain/entity"
	domainerrors "mazraa/internal/domain/errors"
	"mazraa/internal/i18n"
	"mazraa/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productInput(name string) *usecase.ProductInput {
	return &usecase.ProductInput{
		Name:        name,
		Description: "وصف المنتج",
		Price:       decimal.NewFromInt(900),
		ImageURL:    "https://example.com/p.jpg",
	}
}

// approvalNotifications filters the merchant feed down to moderation
// approvals.
func approvalNotifications(t *testing.T, env *testEnv) []*entity.Notification {
	t.Helper()

	feed, err := env.notificationService().Feed(context.Background(), merchantActor())
	require.NoError(t, err)

	var out []*entity.Notification
	for _, n := range feed {
		if n.Title == i18n.MsgProductApprovedTitle.In(i18n.LocaleArabic) {
			out = append(out, n)
		}
	}

	return out
}

func TestAddProductPendingThenApproved(t *testing.T) {
	env := newTestEnv(t)
	moderation := env.moderationScheduler(40 * time.Millisecond)
	defer moderation.Stop()
	svc := env.catalogService(moderation)
	ctx := context.Background()

	product, err := svc.AddProduct(ctx, merchantActor(), productInput("مبيد تجريبي"), i18n.LocaleArabic)
	require.NoError(t, err)
	assert.Equal(t, entity.ModerationPending, product.Status)

	// Pending products are invisible on the storefront but visible on the
	// merchant's own dashboard.
	storefront, err := svc.Storefront(ctx)
	require.NoError(t, err)
	for _, p := range storefront {
		assert.NotEqual(t, product.ID, p.ID)
	}

	dashboard, err := svc.Dashboard(ctx, merchantActor())
	require.NoError(t, err)
	found := false
	for _, p := range dashboard {
		if p.ID == product.ID {
			found = true
		}
	}
	assert.True(t, found)

	require.Eventually(t, func() bool {
		p, err := env.products.FindByID(ctx, product.ID)

		return err == nil && p.Status == entity.ModerationApproved
	}, time.Second, 10*time.Millisecond)

	storefront, err = svc.Storefront(ctx)
	require.NoError(t, err)
	found = false
	for _, p := range storefront {
		if p.ID == product.ID {
			found = true
		}
	}
	assert.True(t, found)

	// Exactly one approval notification, addressed to the owning merchant.
	require.Eventually(t, func() bool {
		return len(approvalNotifications(t, env)) == 1
	}, time.Second, 10*time.Millisecond)

	approvals := approvalNotifications(t, env)
	require.Len(t, approvals, 1)
	assert.Contains(t, approvals[0].Message, product.Name)
}

func TestDeleteProductCancelsPendingApproval(t *testing.T) {
	env := newTestEnv(t)
	moderation := env.moderationScheduler(40 * time.Millisecond)
	defer moderation.Stop()
	svc := env.catalogService(moderation)
	ctx := context.Background()

	product, err := svc.AddProduct(ctx, merchantActor(), productInput("منتج سيُحذف"), i18n.LocaleArabic)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProduct(ctx, merchantActor(), product.ID))

	// Past the approval delay, nothing resurfaces and no approval
	// notification is recorded.
	time.Sleep(120 * time.Millisecond)

	_, err = env.products.FindByID(ctx, product.ID)
	assert.Error(t, err)
	assert.Empty(t, approvalNotifications(t, env))
}

func TestEditProductDoesNotResetStatus(t *testing.T) {
	env := newTestEnv(t)
	moderation := env.moderationScheduler(10 * time.Millisecond)
	defer moderation.Stop()
	svc := env.catalogService(moderation)
	ctx := context.Background()

	product, err := svc.AddProduct(ctx, merchantActor(), productInput("منتج للتعديل"), i18n.LocaleArabic)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		p, err := env.products.FindByID(ctx, product.ID)

		return err == nil && p.Status == entity.ModerationApproved
	}, time.Second, 5*time.Millisecond)

	updated, err := svc.EditProduct(ctx, merchantActor(), product.ID, &usecase.ProductInput{
		Name:        "منتج معدل",
		Description: "وصف جديد",
		Price:       decimal.NewFromInt(1200),
		ImageURL:    "https://example.com/new.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ModerationApproved, updated.Status)
	assert.Equal(t, "منتج معدل", updated.Name)
	assert.True(t, decimal.NewFromInt(1200).Equal(updated.Price))
}

func TestCatalogAuthorization(t *testing.T) {
	env := newTestEnv(t)
	moderation := env.moderationScheduler(time.Minute)
	defer moderation.Stop()
	svc := env.catalogService(moderation)
	ctx := context.Background()

	_, err := svc.AddProduct(ctx, farmerActor(), productInput("x"), i18n.LocaleArabic)
	assert.True(t, errors.Is(err, domainerrors.ErrMerchantOnly))

	_, err = svc.Dashboard(ctx, guestActor())
	assert.True(t, errors.Is(err, domainerrors.ErrMerchantOnly))

	// Another merchant cannot touch aisha's products.
	product, err := svc.AddProduct(ctx, merchantActor(), productInput("ملك عائشة"), i18n.LocaleArabic)
	require.NoError(t, err)

	other := usecase.Actor{ID: uuid.New(), Role: entity.RoleMerchant}
	_, err = svc.EditProduct(ctx, other, product.ID, productInput("y"))
	assert.True(t, errors.Is(err, domainerrors.ErrNotProductOwner))

	err = svc.DeleteProduct(ctx, other, product.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrNotProductOwner))
}

func TestAddProductRejectsNegativePrice(t *testing.T) {
	env := newTestEnv(t)
	moderation := env.moderationScheduler(time.Minute)
	defer moderation.Stop()
	svc := env.catalogService(moderation)

	input := productInput("سعر سالب")
	input.Price = decimal.NewFromInt(-5)

	_, err := svc.AddProduct(context.Background(), merchantActor(), input, i18n.LocaleArabic)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidPrice))
}
