package user

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"proapp/internal/common"
	"proapp/internal/dbmysql"
)

var testActor = common.Actor{ID: 1, Username: "admin", Language: "en", Roles: []string{dbmysql.RoleAdmin}}

func newTestRouter(svc UserService) *mux.Router {
	r := mux.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(common.WithActor(req.Context(), testActor)))
		})
	})
	NewHandler(svc, zap.NewNop()).RegisterRoutes(r)
	return r
}

func doRequest(t *testing.T, r http.Handler, method, target, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var payload map[string]interface{}
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	}
	return rec, payload
}

func TestHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockSvc := NewMockUserService(ctrl)
	router := newTestRouter(mockSvc)

	tests := []struct {
		name       string
		body       string
		setup      func()
		wantStatus int
		wantMsg    string
		wantData   bool
	}{
		{
			name: "created",
			body: `{"email":"a@example.com","name":"Ann"}`,
			setup: func() {
				mockSvc.EXPECT().ReconcileCreate(gomock.Any(), gomock.Any(), testActor).DoAndReturn(
					func(_ context.Context, in CreateInput, _ common.Actor) Result {
						require.Equal(t, "a@example.com", in.Email)
						require.Equal(t, "Ann", *in.Name)
						return Result{Outcome: OutcomeCreated, User: &dbmysql.User{ID: 2, Email: in.Email}, Message: "User has been created"}
					})
			},
			wantStatus: http.StatusOK,
			wantMsg:    "User has been created",
			wantData:   true,
		},
		{
			name: "email in use",
			body: `{"email":"a@example.com"}`,
			setup: func() {
				mockSvc.EXPECT().ReconcileCreate(gomock.Any(), gomock.Any(), testActor).
					Return(Result{Outcome: OutcomeEmailInUse, User: &dbmysql.User{ID: 2}, Message: "Email has been used, please try with another email"})
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantMsg:    "Email has been used, please try with another email",
			wantData:   true,
		},
		{
			name: "failed hides the error",
			body: `{"email":"a@example.com"}`,
			setup: func() {
				mockSvc.EXPECT().ReconcileCreate(gomock.Any(), gomock.Any(), testActor).
					Return(Result{Outcome: OutcomeFailed, Message: "Cant create user, please contact support", Err: errors.New("duplicate key users.email")})
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantMsg:    "Cant create user, please contact support",
		},
		{
			name:       "malformed body",
			body:       `{"email":`,
			setup:      func() {},
			wantStatus: http.StatusUnprocessableEntity,
			wantMsg:    "Invalid input",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setup()
			rec, payload := doRequest(t, router, http.MethodPost, "/users", tc.body)
			require.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantMsg, payload["message"])
			_, hasData := payload["data"]
			assert.Equal(t, tc.wantData, hasData)
			assert.NotContains(t, rec.Body.String(), "duplicate key")
		})
	}
}

func TestHandler_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockSvc := NewMockUserService(ctrl)
	router := newTestRouter(mockSvc)

	mockSvc.EXPECT().ReconcileUpdate(gomock.Any(), uint64(12), gomock.Any(), testActor).DoAndReturn(
		func(_ context.Context, _ uint64, in UpdateInput, _ common.Actor) Result {
			require.NotNil(t, in.IsVerified)
			require.False(t, *in.IsVerified)
			require.Nil(t, in.Email)
			return Result{Outcome: OutcomeUpdated, User: &dbmysql.User{ID: 12}, Message: "User has been updated"}
		})
	rec, payload := doRequest(t, router, http.MethodPut, "/users/12", `{"is_verified":false}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "User has been updated", payload["message"])

	mockSvc.EXPECT().ReconcileUpdate(gomock.Any(), uint64(13), gomock.Any(), testActor).
		Return(Result{Outcome: OutcomeNotFound, Message: "User not found"})
	rec, payload = doRequest(t, router, http.MethodPut, "/users/13", `{}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", payload["message"])
}

func TestHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockSvc := NewMockUserService(ctrl)
	router := newTestRouter(mockSvc)

	since := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	verified := true
	mockSvc.EXPECT().List(gomock.Any(), ListQuery{
		Page:          2,
		Limit:         10,
		Role:          "client",
		IsVerified:    &verified,
		LoggedInSince: &since,
		Keyword:       "oslo",
		OrderBy:       "email",
		SortBy:        "desc",
	}).Return(common.NewPage([]*dbmysql.User{{ID: 1}}, 11, 2, 10), nil)

	rec, payload := doRequest(t, router, http.MethodGet,
		"/users?page=2&limit=10&role=client&is_verified=true&logged_in_since=2024-03-01&keyword=oslo&order_by=email&sort_by=desc", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(11), payload["total"])
	assert.Equal(t, float64(2), payload["last_page"])

	rec, payload = doRequest(t, router, http.MethodGet, "/users?page=abc", "")
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "Invalid input", payload["message"])

	mockSvc.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("db is down"))
	rec, payload = doRequest(t, router, http.MethodGet, "/users", "")
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "Cant get data user, please contact support", payload["message"])
}

func TestHandler_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockSvc := NewMockUserService(ctrl)
	router := newTestRouter(mockSvc)

	mockSvc.EXPECT().Get(gomock.Any(), "alice").Return(&dbmysql.User{ID: 3, Email: "alice@example.com"}, nil)
	rec, payload := doRequest(t, router, http.MethodGet, "/users/alice", "")
	require.Equal(t, http.StatusOK, rec.Code)
	data := payload["data"].(map[string]interface{})
	assert.Equal(t, "alice@example.com", data["email"])
	assert.NotContains(t, data, "password")

	mockSvc.EXPECT().Get(gomock.Any(), "404").Return(nil, ErrNotFound)
	rec, _ = doRequest(t, router, http.MethodGet, "/users/404", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_Bulk(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockSvc := NewMockUserService(ctrl)
	router := newTestRouter(mockSvc)

	t.Run("create", func(t *testing.T) {
		mockSvc.EXPECT().CreateBulk(gomock.Any(), gomock.Len(2), testActor).Return(BulkCreateResult{
			Created:   []*dbmysql.User{{ID: 1}},
			Revived:   []*dbmysql.User{},
			EmailUsed: []Declined{{Input: CreateInput{Email: "b@example.com"}, Outcome: OutcomeEmailInUse}},
			Skipped:   []Declined{},
			Message:   "1 user(s) created, 0 user(s) restored from trash",
		})
		rec, payload := doRequest(t, router, http.MethodPost, "/users/bulk", `{"users":[{"email":"a@example.com"},{"email":"b@example.com"}]}`)
		require.Equal(t, http.StatusOK, rec.Code)
		data := payload["data"].(map[string]interface{})
		counts := data["counts"].(map[string]interface{})
		assert.Equal(t, float64(1), counts["created"])
		assert.Equal(t, float64(1), counts["email_used"])
		used := data["email_used"].([]interface{})[0].(map[string]interface{})
		assert.Equal(t, "email_in_use", used["reason"])
	})

	t.Run("create rejects empty list", func(t *testing.T) {
		rec, _ := doRequest(t, router, http.MethodPost, "/users/bulk", `{"users":[]}`)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("update", func(t *testing.T) {
		mockSvc.EXPECT().UpdateBulk(gomock.Any(), []uint64{1, 2}, gomock.Any(), testActor).Return(BulkUpdateResult{
			Updated: []*dbmysql.User{{ID: 1}},
			Items:   []ItemStatus{{ID: 1, Outcome: OutcomeUpdated}, {ID: 2, Outcome: OutcomeNotFound, Message: "User not found"}},
			Message: "1 of 2 user(s) updated",
		})
		rec, payload := doRequest(t, router, http.MethodPut, "/users/bulk", `{"ids":[1,2],"data":{"is_active":true}}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "1 of 2 user(s) updated", payload["message"])
		items := payload["data"].(map[string]interface{})["items"].([]interface{})
		assert.Equal(t, "not_found", items[1].(map[string]interface{})["status"])
	})

	t.Run("delete", func(t *testing.T) {
		mockSvc.EXPECT().DeleteBulk(gomock.Any(), []uint64{4, 5}).Return([]uint64{4}, nil)
		rec, payload := doRequest(t, router, http.MethodDelete, "/users/bulk", `{"ids":[4,5]}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "1 user(s) deleted", payload["message"])
	})
}

func TestHandler_DeleteAndBan(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockSvc := NewMockUserService(ctrl)
	router := newTestRouter(mockSvc)

	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		setup      func()
		wantStatus int
		wantMsg    string
	}{
		{
			name: "delete", method: http.MethodDelete, target: "/users/8",
			setup:      func() { mockSvc.EXPECT().Delete(gomock.Any(), uint64(8)).Return(nil) },
			wantStatus: http.StatusOK, wantMsg: "User deleted",
		},
		{
			name: "delete missing", method: http.MethodDelete, target: "/users/9",
			setup:      func() { mockSvc.EXPECT().Delete(gomock.Any(), uint64(9)).Return(ErrNotFound) },
			wantStatus: http.StatusNotFound, wantMsg: "User not found",
		},
		{
			name: "ban", method: http.MethodPut, target: "/users/8/ban",
			setup: func() {
				mockSvc.EXPECT().ToggleBan(gomock.Any(), uint64(8)).Return(&dbmysql.User{ID: 8, IsBanned: true}, nil)
			},
			wantStatus: http.StatusOK, wantMsg: "User has been banned",
		},
		{
			name: "unban", method: http.MethodPut, target: "/users/8/ban",
			setup: func() {
				mockSvc.EXPECT().ToggleBan(gomock.Any(), uint64(8)).Return(&dbmysql.User{ID: 8}, nil)
			},
			wantStatus: http.StatusOK, wantMsg: "User has been unbanned",
		},
		{
			name: "ban storage error", method: http.MethodPut, target: "/users/8/ban",
			setup: func() {
				mockSvc.EXPECT().ToggleBan(gomock.Any(), uint64(8)).Return(nil, errors.New("boom"))
			},
			wantStatus: http.StatusUnprocessableEntity, wantMsg: "Cant banned user, please contact support",
		},
		{
			name: "force password", method: http.MethodPut, target: "/users/8/password", body: `{"password":"brandnew"}`,
			setup: func() {
				mockSvc.EXPECT().ForceUpdatePassword(gomock.Any(), uint64(8), "brandnew").Return(nil)
			},
			wantStatus: http.StatusOK, wantMsg: "User password has been updated",
		},
		{
			name: "force password too short", method: http.MethodPut, target: "/users/8/password", body: `{"password":"x"}`,
			setup: func() {
				mockSvc.EXPECT().ForceUpdatePassword(gomock.Any(), uint64(8), "x").Return(common.ValidatePassword("x"))
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setup()
			rec, payload := doRequest(t, router, tc.method, tc.target, tc.body)
			require.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantMsg != "" {
				assert.Equal(t, tc.wantMsg, payload["message"])
			}
		})
	}
}

func TestRequestActor_FallsBackToHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Accept-Language", "nb-NO,nb;q=0.9")
	require.Equal(t, "no", requestActor(req).Language)

	req = httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Accept-Language", "en-US")
	require.Equal(t, "en", requestActor(req).Language)
}
