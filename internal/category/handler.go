package category

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"proapp/internal/common"
	"proapp/internal/i18n"
)

type Handler struct {
	categoryService CategoryService
	log             *zap.Logger
}

func NewHandler(categoryService CategoryService, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{categoryService: categoryService, log: log.Named("category.http")}
}

// RegisterRoutes mounts reads on public and writes on admin.
func (h *Handler) RegisterRoutes(public, admin *mux.Router) {
	public.HandleFunc("/categories", h.List).Methods(http.MethodGet)
	public.HandleFunc("/categories/slug/{slug}", h.GetBySlug).Methods(http.MethodGet)
	public.HandleFunc("/categories/{id:[0-9]+}", h.Get).Methods(http.MethodGet)

	admin.HandleFunc("/categories", h.Create).Methods(http.MethodPost)
	admin.HandleFunc("/categories/bulk", h.CreateBulk).Methods(http.MethodPost)
	admin.HandleFunc("/categories/bulk", h.UpdateBulk).Methods(http.MethodPut)
	admin.HandleFunc("/categories/bulk", h.DeleteBulk).Methods(http.MethodDelete)
	admin.HandleFunc("/categories/reorder", h.Reorder).Methods(http.MethodPut)
	admin.HandleFunc("/categories/{id:[0-9]+}", h.Update).Methods(http.MethodPut)
	admin.HandleFunc("/categories/{id:[0-9]+}", h.Delete).Methods(http.MethodDelete)
}

type bulkCreateRequest struct {
	Categories []Input `json:"categories"`
}

type bulkUpdateRequest struct {
	IDs  []uint64 `json:"ids"`
	Data Input    `json:"data"`
}

type idsRequest struct {
	IDs []uint64 `json:"ids"`
}

type reorderRequest struct {
	Categories []ReorderNode `json:"categories"`
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	lang := requestLang(r)
	q, err := parseListQuery(r)
	if err != nil {
		common.JSONMessage(w, http.StatusUnprocessableEntity, i18n.T(lang, "category.failed"))
		return
	}
	page, err := h.categoryService.List(r.Context(), q)
	if err != nil {
		h.writeError(w, lang, err)
		return
	}
	common.JSON(w, http.StatusOK, page)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	lang := requestLang(r)
	id, _ := pathID(r)
	c, err := h.categoryService.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, lang, err)
		return
	}
	common.JSONData(w, http.StatusOK, "", c)
}

func (h *Handler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	lang := requestLang(r)
	c, err := h.categoryService.GetBySlug(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		h.writeError(w, lang, err)
		return
	}
	common.JSONData(w, http.StatusOK, "", c)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	lang := requestLang(r)
	var in Input
	if err := common.DecodeJSON(r, &in); err != nil {
		common.JSONMessage(w, http.StatusUnprocessableEntity, i18n.T(lang, "category.failed"))
		return
	}
	c, err := h.categoryService.Create(r.Context(), in)
	if err != nil {
		h.writeError(w, lang, err)
		return
	}
	common.JSONData(w, http.StatusOK, i18n.T(lang, "category.created"), c)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	lang := requestLang(r)
	id, _ := pathID(r)
	var in Input
	if err := common.DecodeJSON(r, &in); err != nil {
		common.JSONMessage(w, http.StatusUnprocessableEntity, i18n.T(lang, "category.failed"))
		return
	}
	c, err := h.categoryService.Update(r.Context(), id, in)
	if err != nil {
		h.writeError(w, lang, err)
		return
	}
	common.JSONData(w, http.StatusOK, i18n.T(lang, "category.updated"), c)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	lang := requestLang(r)
	id, _ := pathID(r)
	if err := h.categoryService.Delete(r.Context(), id); err != nil {
		h.writeError(w, lang, err)
		return
	}
	common.JSONMessage(w, http.StatusOK, i18n.T(lang, "category.deleted"))
}

func (h *Handler) CreateBulk(w http.ResponseWriter, r *http.Request) {
	lang := requestLang(r)
	var req bulkCreateRequest
	if err := common.DecodeJSON(r, &req); err != nil || len(req.Categories) == 0 {
		common.JSONMessage(w, http.StatusUnprocessableEntity, i18n.T(lang, "category.failed"))
		return
	}
	created, err := h.categoryService.CreateBulk(r.Context(), req.Categories)
	if err != nil {
		h.writeError(w, lang, err)
		return
	}
	common.JSONData(w, http.StatusOK, i18n.Tf(lang, "category.bulk_created", len(created)), created)
}

func (h *Handler) UpdateBulk(w http.ResponseWriter, r *http.Request) {
	lang := requestLang(r)
	var req bulkUpdateRequest
	if err := common.DecodeJSON(r, &req); err != nil || len(req.IDs) == 0 {
		common.JSONMessage(w, http.StatusUnprocessableEntity, i18n.T(lang, "category.failed"))
		return
	}
	updated, err := h.categoryService.UpdateBulk(r.Context(), req.IDs, req.Data)
	if err != nil {
		h.writeError(w, lang, err)
		return
	}
	common.JSONData(w, http.StatusOK, i18n.Tf(lang, "category.bulk_updated", len(updated)), updated)
}

func (h *Handler) DeleteBulk(w http.ResponseWriter, r *http.Request) {
	lang := requestLang(r)
	var req idsRequest
	if err := common.DecodeJSON(r, &req); err != nil || len(req.IDs) == 0 {
		common.JSONMessage(w, http.StatusUnprocessableEntity, i18n.T(lang, "category.failed"))
		return
	}
	if _, err := h.categoryService.DeleteBulk(r.Context(), req.IDs); err != nil {
		h.writeError(w, lang, err)
		return
	}
	common.JSONMessage(w, http.StatusOK, i18n.T(lang, "category.deleted"))
}

func (h *Handler) Reorder(w http.ResponseWriter, r *http.Request) {
	lang := requestLang(r)
	var req reorderRequest
	if err := common.DecodeJSON(r, &req); err != nil || len(req.Categories) == 0 {
		common.JSONMessage(w, http.StatusUnprocessableEntity, i18n.T(lang, "category.failed"))
		return
	}
	roots, err := h.categoryService.Reorder(r.Context(), req.Categories)
	if err != nil {
		h.writeError(w, lang, err)
		return
	}
	common.JSONData(w, http.StatusOK, i18n.T(lang, "category.reordered"), roots)
}

func (h *Handler) writeError(w http.ResponseWriter, lang string, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		common.JSONMessage(w, http.StatusNotFound, i18n.T(lang, "category.not_found"))
	case errors.Is(err, common.ErrInvalidInput):
		common.JSONMessage(w, http.StatusUnprocessableEntity, err.Error())
	default:
		h.log.Error("category request failed", zap.Error(err))
		common.JSONMessage(w, http.StatusUnprocessableEntity, i18n.T(lang, "category.failed"))
	}
}

// requestLang prefers the authenticated account's language; reads are
// public, so Accept-Language is the fallback.
func requestLang(r *http.Request) string {
	if actor, ok := common.ActorFromContext(r.Context()); ok && actor.Language != "" {
		return i18n.Normalize(actor.Language)
	}
	return i18n.DetectLanguage(r.Header.Get("Accept-Language"))
}

func pathID(r *http.Request) (uint64, error) {
	return strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
}

func parseListQuery(r *http.Request) (ListQuery, error) {
	v := r.URL.Query()
	q := ListQuery{
		Type:    v.Get("type"),
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
	if s := v.Get("parent_id"); s != "" {
		id, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return q, err
		}
		q.ParentID = &id
	}
	return q, nil
}
