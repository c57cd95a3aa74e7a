package database

import (
	"errors"
	"fmt"
	"sync"

	"mapeo-backend/config"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrNotConnected is returned by Get when Connect has not succeeded yet.
var ErrNotConnected = errors.New("database connection is not initialized, call Connect first")

// Provider owns the single shared connection pool for the process lifetime.
// Connect is idempotent: only the first successful call dials the database,
// later calls return the existing handle.
type Provider struct {
	mu sync.Mutex
	db *gorm.DB
}

func NewProvider() *Provider {
	return &Provider{}
}

func (p *Provider) Connect(cfg config.DBConfig) (*gorm.DB, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.db != nil {
		return p.db, nil
	}

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	logrus.Infof("Connected to database %s", cfg.Name)

	p.db = db
	return db, nil
}

// Get returns the active pool, or ErrNotConnected before the first
// successful Connect. Callers map the error to an internal failure
// instead of crashing the process.
func (p *Provider) Get() (*gorm.DB, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.db == nil {
		return nil, ErrNotConnected
	}
	return p.db, nil
}

// SetForTesting injects an already-open handle (e.g. an in-memory SQLite
// database) so usecases can run against it without dialing Postgres.
func (p *Provider) SetForTesting(db *gorm.DB) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.db = db
}
