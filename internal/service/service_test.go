package service

import (
	"testing"

	"github.com/M-Ibrahim-Raza/Expensilo-Backend/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// a single connection keeps every query on the same in-memory database
	sqlDB.SetMaxOpenConns(1)
	_, err = sqlDB.Exec("PRAGMA foreign_keys = ON;")
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Transaction{},
		&models.UserCategory{},
		&models.UserTransaction{},
	))
	return db
}

func newTestUser(t *testing.T, db *gorm.DB, name, email string) *models.User {
	t.Helper()

	password := "secret123"
	user, err := NewUsers(db, bcrypt.MinCost).Create(CreateUserParams{
		Name:     name,
		Email:    email,
		Password: &password,
	})
	require.NoError(t, err)
	return user
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func strptr(s string) *string { return &s }

func count[T any](t *testing.T, db *gorm.DB, model *T, query string, args ...any) int64 {
	t.Helper()

	var n int64
	q := db.Model(model)
	if query != "" {
		q = q.Where(query, args...)
	}
	require.NoError(t, q.Count(&n).Error)
	return n
}
