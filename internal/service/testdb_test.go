package service

import (
	"testing"
	"time"

	"github.com/findme-ke/findme-api/internal/dto"
	"github.com/findme-ke/findme-api/pkg/database"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

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

func strPtr(s string) *string { return &s }

func newCreateRequest(fullName string) *dto.CreateMissingPersonRequest {
	return &dto.CreateMissingPersonRequest{
		FullName:         fullName,
		Age:              30,
		Gender:           "male",
		LastSeenDate:     time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		LastSeenLocation: "Nairobi CBD",
		ContactName:      "Jane Doe",
		ContactPhone:     "+254700000000",
	}
}
