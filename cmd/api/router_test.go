package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"proapp/internal/article"
	"proapp/internal/auth"
	"proapp/internal/category"
	"proapp/internal/common"
	"proapp/internal/config"
	"proapp/internal/dbmysql"
	"proapp/internal/media"
	"proapp/internal/user"
	"proapp/internal/wire"
)

type staticActors map[uint64]common.Actor

func (s staticActors) LoadActor(ctx context.Context, id uint64) (*common.Actor, error) {
	a, ok := s[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	return &a, nil
}

type neverRevoked struct{}

func (neverRevoked) IsRevoked(ctx context.Context, tokenID string) (bool, error) { return false, nil }

type testApp struct {
	handler    http.Handler
	jwt        *common.JWTManager
	authSvc    *auth.MockAuthService
	categories *category.MockCategoryService
	articles   *article.MockArticleService
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	ctrl := gomock.NewController(t)
	cfg := &config.Config{Auth: config.AuthConfig{JWTSecret: "router-secret", TokenTTLHours: 1}}
	log := zap.NewNop()

	jwtm := common.NewJWTManager(cfg)
	authSvc := auth.NewMockAuthService(ctrl)
	categories := category.NewMockCategoryService(ctrl)
	articles := article.NewMockArticleService(ctrl)
	users := user.NewMockUserService(ctrl)

	app := &wire.Application{
		Config:  cfg,
		Log:     log,
		JWT:     jwtm,
		Revoked: neverRevoked{},
		Actors: staticActors{
			1: {ID: 1, Username: "admin", Language: "en", Roles: []string{dbmysql.RoleAdmin}},
			2: {ID: 2, Username: "member", Language: "en", Roles: []string{dbmysql.RoleClient}},
		},
		Users:      user.NewHandler(users, log),
		Auth:       auth.NewHandler(authSvc, log),
		Categories: category.NewHandler(categories, log),
		Articles:   article.NewHandler(articles, log),
		Media:      media.NewHandler(nil, cfg, log),
	}
	return &testApp{handler: setupRouter(app), jwt: jwtm, authSvc: authSvc, categories: categories, articles: articles}
}

func (a *testApp) token(t *testing.T, id uint64, name string) string {
	t.Helper()
	token, _, err := a.jwt.GenerateToken(id, name)
	require.NoError(t, err)
	return token
}

func (a *testApp) do(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	a.handler.ServeHTTP(rr, req)
	return rr
}

func TestRouter_Health(t *testing.T) {
	app := newTestApp(t)
	rr := app.do(httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "healthy")
	assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
}

func TestRouter_Preflight(t *testing.T) {
	app := newTestApp(t)
	rr := app.do(httptest.NewRequest(http.MethodOptions, "/api/v1/categories", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rr.Header().Get("Access-Control-Allow-Headers"), "Authorization")
}

func TestRouter_PublicCategoryList(t *testing.T) {
	app := newTestApp(t)
	app.categories.EXPECT().List(gomock.Any(), gomock.Any()).
		Return(common.NewPage([]*dbmysql.Category{}, 0, 1, 10), nil)

	rr := app.do(httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRouter_PublicArticleBySlug(t *testing.T) {
	app := newTestApp(t)
	app.articles.EXPECT().GetBySlug(gomock.Any(), "hello").
		Return(&dbmysql.Article{ID: 1, Title: "Hello", Slug: "hello"}, nil)

	rr := app.do(httptest.NewRequest(http.MethodGet, "/api/v1/articles/slug/hello", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"slug":"hello"`)
}

func TestRouter_Access(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		actorID    uint64
		wantStatus int
	}{
		{name: "profile without token", method: http.MethodGet, path: "/api/v1/auth/profile", wantStatus: http.StatusUnauthorized},
		{name: "category write without token", method: http.MethodPost, path: "/api/v1/categories", wantStatus: http.StatusUnauthorized},
		{name: "category write as member", method: http.MethodPost, path: "/api/v1/categories", actorID: 2, wantStatus: http.StatusForbidden},
		{name: "article write as member", method: http.MethodPut, path: "/api/v1/articles/reorder", actorID: 2, wantStatus: http.StatusForbidden},
		{name: "user list as member", method: http.MethodGet, path: "/api/v1/users", actorID: 2, wantStatus: http.StatusForbidden},
		{name: "upload without token", method: http.MethodPost, path: "/api/v1/files", wantStatus: http.StatusUnauthorized},
		{name: "unknown route", method: http.MethodGet, path: "/api/v1/nope", wantStatus: http.StatusNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app := newTestApp(t)
			req := httptest.NewRequest(tc.method, tc.path, nil)
			if tc.actorID != 0 {
				req.Header.Set("Authorization", "Bearer "+app.token(t, tc.actorID, "someone"))
			}
			assert.Equal(t, tc.wantStatus, app.do(req).Code)
		})
	}
}

func TestRouter_PrivateProfile(t *testing.T) {
	app := newTestApp(t)
	name := "member"
	app.authSvc.EXPECT().Profile(gomock.Any(), uint64(2)).
		Return(&dbmysql.User{ID: 2, Username: &name, Email: "m@proapp.test"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/profile", nil)
	req.Header.Set("Authorization", "Bearer "+app.token(t, 2, name))
	rr := app.do(req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "m@proapp.test")
}

func TestLoggingMiddleware_DefaultsStatus(t *testing.T) {
	h := loggingMiddleware(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}
