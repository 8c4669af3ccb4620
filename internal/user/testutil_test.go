package user

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"proapp/internal/common"
	"proapp/internal/dbmysql"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// unique in-memory database per test
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

func testHasher() common.PasswordHasher {
	return &common.BcryptHasher{Cost: bcrypt.MinCost}
}

func newTestService(t *testing.T) (UserService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	return NewUserService(NewUserRepository(db), testHasher(), zap.NewNop()), db
}

// seedAdmin inserts the acting administrator.
func seedAdmin(t *testing.T, db *gorm.DB) common.Actor {
	t.Helper()
	name := "admin"
	admin := &dbmysql.User{
		Username:   &name,
		Email:      "admin@proapp.test",
		Password:   "x",
		Roles:      dbmysql.Roles{dbmysql.RoleAdmin},
		Language:   "en",
		IsVerified: true,
		IsActive:   true,
	}
	require.NoError(t, db.Create(admin).Error)
	return common.ActorFromUser(admin)
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }
