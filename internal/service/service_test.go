package service

import (
	"testing"

	"NovelForge/internal/data"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestData 内存 sqlite，每个测试独立建库
func newTestData(t *testing.T) *data.Data {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// 内存库限制单连接，避免每个连接各自一个空库
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, data.Migrate(db))

	return &data.Data{DB: db}
}
