package sqlite

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"mazraa/config"
	"mazraa/internal/domain/entity"
	"mazraa/internal/domain/repository"
	"mazraa/internal/infra/auth"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// openTestDB prepares an isolated in-memory database named after the test so
// parallel packages never share state through the connection cache.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.NewReplacer("/", "_", " ", "_").Replace(t.Name()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}}
	require.NoError(t, Prepare(db, auth.NewBcryptHasher(cfg)))

	return db
}

func directoryEntry(username string) *entity.DirectoryEntry {
	return &entity.DirectoryEntry{
		User: entity.User{
			ID:       uuid.New(),
			Name:     "مزارع تجريبي",
			Username: username,
			Role:     entity.RoleFarmer,
		},
		PasswordHash: "$2a$04$not-a-real-hash",
	}
}

func TestCreateMapsDuplicateUsername(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, directoryEntry("hamid")))

	// A second insert with the same username must surface the directory
	// error even though the first entry was never looked up, so concurrent
	// registrations hitting the unique index report the same failure.
	err := repo.Create(ctx, directoryEntry("hamid"))
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrUsernameAlreadyTaken)

	found, err := repo.FindByUsername(ctx, "hamid")
	require.NoError(t, err)
	assert.Equal(t, "hamid", found.Username)
}

func TestCreateAndFindRoundTrip(t *testing.T) {
	repo := NewUserRepository(openTestDB(t))
	ctx := context.Background()

	entry := directoryEntry("noor")
	require.NoError(t, repo.Create(ctx, entry))
	assert.False(t, entry.CreatedAt.IsZero())

	found, err := repo.FindByID(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, entry.Username, found.Username)

	_, err = repo.FindByUsername(ctx, "no-such-user")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}
