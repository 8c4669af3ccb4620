package article

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"proapp/internal/category"
	"proapp/internal/dbmysql"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, dbmysql.Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func newTestService(t *testing.T) (ArticleService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	return NewArticleService(NewArticleRepository(db), nil), db
}

func createCategory(t *testing.T, db *gorm.DB, name string) *dbmysql.Category {
	t.Helper()
	svc := category.NewCategoryService(category.NewCategoryRepository(db), nil)
	c, err := svc.Create(context.Background(), category.Input{Name: &name, Type: strPtr("article")})
	require.NoError(t, err)
	return c
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func intPtr(i int) *int { return &i }

func idPtr(id uint64) *uint64 { return &id }
