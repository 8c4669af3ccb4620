package auth

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"proapp/internal/common"
	"proapp/internal/config"
	"proapp/internal/dbmysql"
	"proapp/internal/user"
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

type sentMail struct {
	kind  string
	to    string
	lang  string
	token string
	data  common.AutoLoginEmail
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (m *fakeMailer) record(s sentMail) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, s)
	return nil
}

func (m *fakeMailer) VerifyAccount(_ context.Context, to, lang, token string) error {
	return m.record(sentMail{kind: "verify", to: to, lang: lang, token: token})
}

func (m *fakeMailer) ForgotPassword(_ context.Context, to, lang, token string) error {
	return m.record(sentMail{kind: "forgot", to: to, lang: lang, token: token})
}

func (m *fakeMailer) AutoLogin(_ context.Context, data common.AutoLoginEmail) error {
	return m.record(sentMail{kind: "auto_login", to: data.To, lang: data.Lang, token: data.Token, data: data})
}

func (m *fakeMailer) last(t *testing.T) sentMail {
	t.Helper()
	require.NotEmpty(t, m.sent)
	return m.sent[len(m.sent)-1]
}

type sentCode struct {
	phone string
	lang  string
	code  string
}

type fakeSMS struct {
	mu   sync.Mutex
	sent []sentCode
	err  error
}

func (f *fakeSMS) SendLoginCode(_ context.Context, phone, lang, code string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentCode{phone: phone, lang: lang, code: code})
	return nil
}

type fakeRevoker struct {
	revoked map[string]time.Time
	err     error
}

func (r *fakeRevoker) Revoke(_ context.Context, tokenID string, expiresAt time.Time) error {
	if r.err != nil {
		return r.err
	}
	if r.revoked == nil {
		r.revoked = map[string]time.Time{}
	}
	r.revoked[tokenID] = expiresAt
	return nil
}

type testEnv struct {
	svc     AuthService
	db      *gorm.DB
	mailer  *fakeMailer
	sms     *fakeSMS
	revoker *fakeRevoker
	jwt     *common.JWTManager
	hasher  common.PasswordHasher
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := setupTestDB(t)
	hasher := &common.BcryptHasher{Cost: bcrypt.MinCost}
	jwtm := common.NewJWTManager(&config.Config{Auth: config.AuthConfig{JWTSecret: "test", TokenTTLHours: 1, Issuer: "proapp"}})
	users := user.NewUserRepository(db)
	env := &testEnv{
		db:      db,
		mailer:  &fakeMailer{},
		sms:     &fakeSMS{},
		revoker: &fakeRevoker{},
		jwt:     jwtm,
		hasher:  hasher,
	}
	env.svc = NewAuthService(
		users,
		NewTokenRepository(db),
		user.NewUserService(users, hasher, zap.NewNop()),
		hasher,
		jwtm,
		env.revoker,
		env.mailer,
		env.sms,
		zap.NewNop(),
	)
	return env
}

// seedUser inserts a verified client with password as its plain password.
func (e *testEnv) seedUser(t *testing.T, email, username, password string) *dbmysql.User {
	t.Helper()
	hash, err := e.hasher.Hash(password)
	require.NoError(t, err)
	u := &dbmysql.User{
		Email:      email,
		Username:   &username,
		Password:   hash,
		Roles:      dbmysql.Roles{dbmysql.RoleClient},
		Language:   "en",
		IsVerified: true,
		IsActive:   true,
	}
	require.NoError(t, e.db.Create(u).Error)
	require.NoError(t, e.db.Create(&dbmysql.Profile{UserID: u.ID, Name: strPtr("Kari Nordmann")}).Error)
	return u
}

func (e *testEnv) tokens(t *testing.T, userID uint64, tokenType string) []dbmysql.Token {
	t.Helper()
	var out []dbmysql.Token
	require.NoError(t, e.db.Where("user_id = ? AND type = ?", userID, tokenType).Find(&out).Error)
	return out
}

func (e *testEnv) reload(t *testing.T, id uint64) *dbmysql.User {
	t.Helper()
	var u dbmysql.User
	require.NoError(t, e.db.Unscoped().First(&u, id).Error)
	return &u
}

var errMail = errors.New("broker down")

func strPtr(s string) *string { return &s }
