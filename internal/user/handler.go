package user

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"proapp/internal/common"
	"proapp/internal/dbmysql"
	"proapp/internal/i18n"
)

// Handler exposes the admin user endpoints over HTTP.
type Handler struct {
	userService UserService
	log         *zap.Logger
}

func NewHandler(userService UserService, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{userService: userService, log: log.Named("user.http")}
}

// RegisterRoutes mounts the handlers on r, which is expected to already
// require an authenticated admin.
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/users", h.List).Methods(http.MethodGet)
	r.HandleFunc("/users", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/users/bulk", h.CreateBulk).Methods(http.MethodPost)
	r.HandleFunc("/users/bulk", h.UpdateBulk).Methods(http.MethodPut)
	r.HandleFunc("/users/bulk", h.DeleteBulk).Methods(http.MethodDelete)
	r.HandleFunc("/users/{id:[0-9]+}/ban", h.ToggleBan).Methods(http.MethodPut)
	r.HandleFunc("/users/{id:[0-9]+}/password", h.ForceUpdatePassword).Methods(http.MethodPut)
	r.HandleFunc("/users/{id:[0-9]+}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/users/{id:[0-9]+}", h.Delete).Methods(http.MethodDelete)
	r.HandleFunc("/users/{key}", h.Get).Methods(http.MethodGet)
}

type bulkCreateRequest struct {
	Users []CreateInput `json:"users"`
}

type bulkUpdateRequest struct {
	IDs  []uint64    `json:"ids"`
	Data UpdateInput `json:"data"`
}

type idsRequest struct {
	IDs []uint64 `json:"ids"`
}

type passwordRequest struct {
	Password string `json:"password"`
}

type bulkCreateResponse struct {
	BulkCreateResult
	Counts BulkCounts `json:"counts"`
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	actor := requestActor(r)
	q, err := parseListQuery(r)
	if err != nil {
		common.JSONMessage(w, http.StatusUnprocessableEntity, i18n.T(actor.Language, "user.invalid_input"))
		return
	}

	page, err := h.userService.List(r.Context(), q)
	if err != nil {
		h.log.Error("list users", zap.Error(err))
		common.JSONMessage(w, http.StatusUnprocessableEntity, i18n.T(actor.Language, "user.list_failed"))
		return
	}
	common.JSON(w, http.StatusOK, page)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	actor := requestActor(r)
	user, err := h.userService.Get(r.Context(), mux.Vars(r)["key"])
	if err != nil {
		h.writeLookupError(w, actor, err, "user.detail_failed")
		return
	}
	common.JSONData(w, http.StatusOK, "", user)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	actor := requestActor(r)
	var in CreateInput
	if err := common.DecodeJSON(r, &in); err != nil {
		common.JSONMessage(w, http.StatusUnprocessableEntity, i18n.T(actor.Language, "user.invalid_input"))
		return
	}
	h.writeResult(w, h.userService.ReconcileCreate(r.Context(), in, actor))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	actor := requestActor(r)
	id, err := pathID(r)
	if err != nil {
		common.JSONMessage(w, http.StatusNotFound, i18n.T(actor.Language, "user.not_found"))
		return
	}
	var in UpdateInput
	if err := common.DecodeJSON(r, &in); err != nil {
		common.JSONMessage(w, http.StatusUnprocessableEntity, i18n.T(actor.Language, "user.invalid_input"))
		return
	}
	h.writeResult(w, h.userService.ReconcileUpdate(r.Context(), id, in, actor))
}

func (h *Handler) CreateBulk(w http.ResponseWriter, r *http.Request) {
	actor := requestActor(r)
	var req bulkCreateRequest
	if err := common.DecodeJSON(r, &req); err != nil || len(req.Users) == 0 {
		common.JSONMessage(w, http.StatusUnprocessableEntity, i18n.T(actor.Language, "user.invalid_input"))
		return
	}
	res := h.userService.CreateBulk(r.Context(), req.Users, actor)
	common.JSONData(w, http.StatusOK, res.Message, bulkCreateResponse{BulkCreateResult: res, Counts: res.Counts()})
}

func (h *Handler) UpdateBulk(w http.ResponseWriter, r *http.Request) {
	actor := requestActor(r)
	var req bulkUpdateRequest
	if err := common.DecodeJSON(r, &req); err != nil || len(req.IDs) == 0 {
		common.JSONMessage(w, http.StatusUnprocessableEntity, i18n.T(actor.Language, "user.invalid_input"))
		return
	}
	res := h.userService.UpdateBulk(r.Context(), req.IDs, req.Data, actor)
	common.JSONData(w, http.StatusOK, res.Message, res)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	actor := requestActor(r)
	id, err := pathID(r)
	if err != nil {
		common.JSONMessage(w, http.StatusNotFound, i18n.T(actor.Language, "user.not_found"))
		return
	}
	if err := h.userService.Delete(r.Context(), id); err != nil {
		h.writeLookupError(w, actor, err, "user.delete_failed")
		return
	}
	common.JSONMessage(w, http.StatusOK, i18n.T(actor.Language, "user.deleted"))
}

func (h *Handler) DeleteBulk(w http.ResponseWriter, r *http.Request) {
	actor := requestActor(r)
	var req idsRequest
	if err := common.DecodeJSON(r, &req); err != nil || len(req.IDs) == 0 {
		common.JSONMessage(w, http.StatusUnprocessableEntity, i18n.T(actor.Language, "user.invalid_input"))
		return
	}
	deleted, err := h.userService.DeleteBulk(r.Context(), req.IDs)
	if err != nil {
		h.log.Error("bulk delete users", zap.Error(err))
		common.JSONMessage(w, http.StatusUnprocessableEntity, i18n.T(actor.Language, "user.delete_failed"))
		return
	}
	common.JSONData(w, http.StatusOK, i18n.Tf(actor.Language, "user.bulk_deleted", len(deleted)), idsRequest{IDs: deleted})
}

func (h *Handler) ToggleBan(w http.ResponseWriter, r *http.Request) {
	actor := requestActor(r)
	id, err := pathID(r)
	if err != nil {
		common.JSONMessage(w, http.StatusNotFound, i18n.T(actor.Language, "user.not_found"))
		return
	}
	user, err := h.userService.ToggleBan(r.Context(), id)
	if err != nil {
		h.writeLookupError(w, actor, err, "user.ban_failed")
		return
	}
	msg := "user.unbanned"
	if user.IsBanned {
		msg = "user.banned"
	}
	common.JSONData(w, http.StatusOK, i18n.T(actor.Language, msg), user)
}

func (h *Handler) ForceUpdatePassword(w http.ResponseWriter, r *http.Request) {
	actor := requestActor(r)
	id, err := pathID(r)
	if err != nil {
		common.JSONMessage(w, http.StatusNotFound, i18n.T(actor.Language, "user.not_found"))
		return
	}
	var req passwordRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.JSONMessage(w, http.StatusUnprocessableEntity, i18n.T(actor.Language, "user.invalid_input"))
		return
	}
	if err := h.userService.ForceUpdatePassword(r.Context(), id, req.Password); err != nil {
		if errors.Is(err, common.ErrInvalidPassword) {
			common.JSONMessage(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		h.writeLookupError(w, actor, err, "user.password_failed")
		return
	}
	common.JSONMessage(w, http.StatusOK, i18n.T(actor.Language, "user.password_updated"))
}

func (h *Handler) writeResult(w http.ResponseWriter, res Result) {
	if res.Err != nil {
		h.log.Warn("reconcile failed", zap.Stringer("outcome", res.Outcome), zap.Error(res.Err))
	}
	var data *dbmysql.User
	if res.Outcome != OutcomeFailed {
		data = res.User
	}
	if data == nil {
		common.JSONMessage(w, res.Outcome.HTTPStatus(), res.Message)
		return
	}
	common.JSONData(w, res.Outcome.HTTPStatus(), res.Message, data)
}

func (h *Handler) writeLookupError(w http.ResponseWriter, actor common.Actor, err error, code string) {
	if errors.Is(err, ErrNotFound) {
		common.JSONMessage(w, http.StatusNotFound, i18n.T(actor.Language, "user.not_found"))
		return
	}
	h.log.Error(code, zap.Error(err))
	common.JSONMessage(w, http.StatusUnprocessableEntity, i18n.T(actor.Language, code))
}

// requestActor returns the authenticated actor, taking the language from
// Accept-Language when the account has none.
func requestActor(r *http.Request) common.Actor {
	actor, _ := common.ActorFromContext(r.Context())
	if actor.Language == "" {
		actor.Language = i18n.DetectLanguage(r.Header.Get("Accept-Language"))
	}
	actor.Language = i18n.Normalize(actor.Language)
	return actor
}

func pathID(r *http.Request) (uint64, error) {
	return strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
}

func parseListQuery(r *http.Request) (ListQuery, error) {
	v := r.URL.Query()
	q := ListQuery{
		Role:    v.Get("role"),
		Keyword: v.Get("keyword"),
		OrderBy: v.Get("order_by"),
		SortBy:  v.Get("sort_by"),
	}
	var err error
	if s := v.Get("page"); s != "" {
		if q.Page, err = strconv.Atoi(s); err != nil {
			return q, err
		}
	}
	if s := v.Get("limit"); s != "" {
		if q.Limit, err = strconv.Atoi(s); err != nil {
			return q, err
		}
	}
	if s := v.Get("is_verified"); s != "" {
		b, err := strconv.ParseBool(s)
		if err != nil {
			return q, err
		}
		q.IsVerified = &b
	}
	if s := v.Get("is_banned"); s != "" {
		b, err := strconv.ParseBool(s)
		if err != nil {
			return q, err
		}
		q.IsBanned = &b
	}
	if s := v.Get("logged_in_since"); s != "" {
		d, err := time.Parse(time.DateOnly, s)
		if err != nil {
			return q, err
		}
		q.LoggedInSince = &d
	}
	return q, nil
}
