package repository

import (
	"testing"
	"time"

	"github.com/findme-ke/findme-api/internal/model"
	"github.com/findme-ke/findme-api/pkg/database"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupTestDB opens an in-memory sqlite database with the same gorm settings
// the postgres connection uses, so unique violations translate the same way.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.AutoMigrate(db))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()

	user := &model.User{
		Name:         "Test Reporter",
		Email:        email,
		PasswordHash: "$2a$10$not.a.real.hash.but.fine.for.tests",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

// newTestReport builds a valid report owned by userID. Fields callers care
// about get overridden after the call.
func newTestReport(userID uint, fullName string) *model.MissingPerson {
	return &model.MissingPerson{
		UserID:           userID,
		FullName:         fullName,
		Age:              30,
		Gender:           "male",
		LastSeenDate:     time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		LastSeenLocation: "Nairobi CBD",
		ContactName:      "Jane Doe",
		ContactPhone:     "+254700000000",
		Status:           model.StatusMissing,
	}
}
