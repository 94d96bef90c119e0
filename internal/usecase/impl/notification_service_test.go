package impl

import (
	"context"
	"testing"

	domainerrors "mazraa/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedAddressing(t *testing.T) {
	env := newTestEnv(t)
	svc := env.notificationService()
	ctx := context.Background()

	farmerFeed, err := svc.Feed(ctx, farmerActor())
	require.NoError(t, err)
	require.NotEmpty(t, farmerFeed)

	merchantFeed, err := svc.Feed(ctx, merchantActor())
	require.NoError(t, err)
	require.NotEmpty(t, merchantFeed)

	// The seed merchant's order notification never leaks into the farmer's
	// feed and vice versa.
	for _, n := range farmerFeed {
		if n.UserID != nil {
			assert.Equal(t, farmerActor().ID, *n.UserID)
		}
	}
	for _, n := range merchantFeed {
		if n.UserID != nil {
			assert.Equal(t, merchantActor().ID, *n.UserID)
		}
	}

	// Newest first.
	for i := 1; i < len(farmerFeed); i++ {
		assert.False(t, farmerFeed[i-1].CreatedAt.Before(farmerFeed[i].CreatedAt))
	}
}

func TestMarkAllReadScopedToCaller(t *testing.T) {
	env := newTestEnv(t)
	svc := env.notificationService()
	ctx := context.Background()

	require.NoError(t, svc.MarkAllRead(ctx, farmerActor()))

	farmerFeed, err := svc.Feed(ctx, farmerActor())
	require.NoError(t, err)
	for _, n := range farmerFeed {
		assert.True(t, n.IsRead)
	}

	// The merchant's seeded order notification is untouched.
	merchantFeed, err := svc.Feed(ctx, merchantActor())
	require.NoError(t, err)
	unread := 0
	for _, n := range merchantFeed {
		if !n.IsRead {
			unread++
		}
	}
	assert.Equal(t, 1, unread)
}

func TestClearAllScopedToCaller(t *testing.T) {
	env := newTestEnv(t)
	svc := env.notificationService()
	ctx := context.Background()

	require.NoError(t, svc.ClearAll(ctx, farmerActor()))

	farmerFeed, err := svc.Feed(ctx, farmerActor())
	require.NoError(t, err)
	assert.Empty(t, farmerFeed)

	merchantFeed, err := svc.Feed(ctx, merchantActor())
	require.NoError(t, err)
	assert.NotEmpty(t, merchantFeed)
}

func TestNotificationsGuestForbidden(t *testing.T) {
	env := newTestEnv(t)
	svc := env.notificationService()
	ctx := context.Background()

	_, err := svc.Feed(ctx, guestActor())
	assert.True(t, errors.Is(err, domainerrors.ErrGuestForbidden))
	assert.True(t, errors.Is(svc.MarkAllRead(ctx, guestActor()), domainerrors.ErrGuestForbidden))
	assert.True(t, errors.Is(svc.ClearAll(ctx, guestActor()), domainerrors.ErrGuestForbidden))
}
