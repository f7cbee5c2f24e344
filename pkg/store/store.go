// Package store is the portal's persistence layer: a thin gorm repository
// over services, announcements and users. Query failures are never retried
// here; they propagate to the caller unchanged apart from ErrNotFound
// translation.
package store

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/phoopyae1/OSS/pkg/types"
)

// ErrNotFound is returned when an operation references an id that does not
// exist, so the boundary layer can map it separately from storage failures.
var ErrNotFound = errors.New("record not found")

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Store wraps the database connection.
type Store struct {
	db *gorm.DB
}

// Open connects to the configured database. Production deployments run on
// postgres; sqlite is supported for local development and tests.
func Open(driver, dsn string, log *logrus.Logger) (*Store, error) {
	config := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	var dialector gorm.Dialector
	switch driver {
	case DriverPostgres:
		dialector = postgres.Open(dsn)
	case DriverSQLite:
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	log.WithField("driver", driver).Info("Connecting to database")
	db, err := gorm.Open(dialector, config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return &Store{db: db}, nil
}

// NewWithDB wraps an existing connection. Used by tests.
func NewWithDB(db *gorm.DB) *Store {
	return &Store{db: db}
}

// AutoMigrate creates or updates the portal tables.
func (s *Store) AutoMigrate() error {
	return s.db.AutoMigrate(&types.Service{}, &types.Announcement{}, &types.User{})
}

// DB exposes the underlying connection for migration tooling.
func (s *Store) DB() *gorm.DB {
	return s.db
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
