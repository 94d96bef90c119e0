// Package sqlite implements the persistence contracts over an in-memory
// SQLite database. State is volatile by design: every process start migrates
// a fresh schema and loads the seed dataset, and nothing survives a restart.
package sqlite

import (
	"log/slog"

	"mazraa/internal/domain/service"
	"mazraa/internal/infra/persistence/model"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// memoryDSN keeps one shared in-memory database across the gorm connection
// pool; a plain ":memory:" DSN would give every pooled connection its own
// empty database.
const memoryDSN = "file::memory:?cache=shared"

// Params holds dependencies for opening the database, injected by Fx.
type Params struct {
	fx.In

	Logger *slog.Logger
	Hasher service.PasswordHasher
}

// New opens the in-memory database, migrates the schema and loads the seed
// dataset.
func New(params Params) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(memoryDSN), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite")
	}

	if err := Prepare(db, params.Hasher); err != nil {
		return nil, err
	}

	params.Logger.Info("in-memory database ready")

	return db, nil
}

// Prepare migrates the schema and loads the seed dataset into an already
// opened database. Split out so tests can prepare isolated databases.
func Prepare(db *gorm.DB, hasher service.PasswordHasher) error {
	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.ProductModel{},
		&model.OrderModel{},
		&model.NotificationModel{},
		&model.SavedDiagnosisModel{},
	); err != nil {
		return errors.Wrap(err, "automigrate")
	}

	if err := Seed(db, hasher); err != nil {
		return errors.Wrap(err, "seed")
	}

	return nil
}
