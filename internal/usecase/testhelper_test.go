package usecase

import (
	"fmt"
	"strings"
	"testing"

	"mapeo-backend/internal/domain/entity"
	"mapeo-backend/internal/infrastructure/database"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestProvider opens a per-test in-memory SQLite database with the full
// schema and wraps it in a connection provider.
func newTestProvider(t *testing.T) *database.Provider {
	t.Helper()

	// A named shared-cache DSN keeps every pooled connection on the same
	// in-memory database.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.Usuario{},
		&entity.Direccion{},
		&entity.Embarazada{},
		&entity.Riesgo{},
		&entity.Seguimiento{},
		&entity.AuditLog{},
	))

	provider := database.NewProvider()
	provider.SetForTesting(db)
	return provider
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)
	return log
}
