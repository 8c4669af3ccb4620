package article

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
	articleService ArticleService
	log            *zap.Logger
}

func NewHandler(articleService ArticleService, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{articleService: articleService, log: log.Named("article.http")}
}

// RegisterRoutes mounts reads on public and writes on admin.
func (h *Handler) RegisterRoutes(public, admin *mux.Router) {
	public.HandleFunc("/articles", h.List).Methods(http.MethodGet)
	public.HandleFunc("/articles/slug/{slug}", h.GetBySlug).Methods(http.MethodGet)
	public.HandleFunc("/articles/{id:[0-9]+}", h.Get).Methods(http.MethodGet)

	admin.HandleFunc("/articles", h.Create).Methods(http.MethodPost)
	admin.HandleFunc("/articles/bulk", h.CreateBulk).Methods(http.MethodPost)
	admin.HandleFunc("/articles/bulk", h.UpdateBulk).Methods(http.MethodPut)
	admin.HandleFunc("/articles/bulk", h.DeleteBulk).Methods(http.MethodDelete)
	admin.HandleFunc("/articles/reorder", h.Reorder).Methods(http.MethodPut)
	admin.HandleFunc("/articles/{id:[0-9]+}", h.Update).Methods(http.MethodPut)
	admin.HandleFunc("/articles/{id:[0-9]+}", h.Delete).Methods(http.MethodDelete)
}

type bulkCreateRequest struct {
	Articles []Input `json:"articles"`
}

type bulkUpdateRequest struct {
	IDs  []uint64 `json:"ids"`
	Data Input    `json:"data"`
}

type idsRequest struct {
	IDs []uint64 `json:"ids"`
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	lang := requestLang(r)
	q, err := parseListQuery(r)
	if err != nil {
		common.JSONMessage(w, http.StatusUnprocessableEntity, i18n.T(lang, "article.failed"))
		return
	}
	page, err := h.articleService.List(r.Context(), q)
	if err != nil {
		h.writeError(w, lang, err)
		return
	}
	common.JSON(w, http.StatusOK, page)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	lang := requestLang(r)
	id, _ := pathID(r)
	a, err := h.articleService.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, lang, err)
		return
	}
	common.JSONData(w, http.StatusOK, "", a)
}

func (h *Handler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	lang := requestLang(r)
	a, err := h.articleService.GetBySlug(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		h.writeError(w, lang, err)
		return
	}
	common.JSONData(w, http.StatusOK, "", a)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	lang := requestLang(r)
	var in Input
	if err := common.DecodeJSON(r, &in); err != nil {
		common.JSONMessage(w, http.StatusUnprocessableEntity, i18n.T(lang, "article.failed"))
		return
	}
	actor, _ := common.ActorFromContext(r.Context())
	a, err := h.articleService.Create(r.Context(), actor, in)
	if err != nil {
		h.writeError(w, lang, err)
		return
	}
	common.JSONData(w, http.StatusOK, i18n.T(lang, "article.created"), a)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	lang := requestLang(r)
	id, _ := pathID(r)
	var in Input
	if err := common.DecodeJSON(r, &in); err != nil {
		common.JSONMessage(w, http.StatusUnprocessableEntity, i18n.T(lang, "article.failed"))
		return
	}
	a, err := h.articleService.Update(r.Context(), id, in)
	if err != nil {
		h.writeError(w, lang, err)
		return
	}
	common.JSONData(w, http.StatusOK, i18n.T(lang, "article.updated"), a)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	lang := requestLang(r)
	id, _ := pathID(r)
	if err := h.articleService.Delete(r.Context(), id); err != nil {
		h.writeError(w, lang, err)
		return
	}
	common.JSONMessage(w, http.StatusOK, i18n.T(lang, "article.deleted"))
}

func (h *Handler) CreateBulk(w http.ResponseWriter, r *http.Request) {
	lang := requestLang(r)
	var req bulkCreateRequest
	if err := common.DecodeJSON(r, &req); err != nil || len(req.Articles) == 0 {
		common.JSONMessage(w, http.StatusUnprocessableEntity, i18n.T(lang, "article.failed"))
		return
	}
	actor, _ := common.ActorFromContext(r.Context())
	created, err := h.articleService.CreateBulk(r.Context(), actor, req.Articles)
	if err != nil {
		h.writeError(w, lang, err)
		return
	}
	common.JSONData(w, http.StatusOK, i18n.Tf(lang, "article.bulk_created", len(created)), created)
}

func (h *Handler) UpdateBulk(w http.ResponseWriter, r *http.Request) {
	lang := requestLang(r)
	var req bulkUpdateRequest
	if err := common.DecodeJSON(r, &req); err != nil || len(req.IDs) == 0 {
		common.JSONMessage(w, http.StatusUnprocessableEntity, i18n.T(lang, "article.failed"))
		return
	}
	updated, err := h.articleService.UpdateBulk(r.Context(), req.IDs, req.Data)
	if err != nil {
		h.writeError(w, lang, err)
		return
	}
	common.JSONData(w, http.StatusOK, i18n.Tf(lang, "article.bulk_updated", len(updated)), updated)
}

func (h *Handler) DeleteBulk(w http.ResponseWriter, r *http.Request) {
	lang := requestLang(r)
	var req idsRequest
	if err := common.DecodeJSON(r, &req); err != nil || len(req.IDs) == 0 {
		common.JSONMessage(w, http.StatusUnprocessableEntity, i18n.T(lang, "article.failed"))
		return
	}
	if _, err := h.articleService.DeleteBulk(r.Context(), req.IDs); err != nil {
		h.writeError(w, lang, err)
		return
	}
	common.JSONMessage(w, http.StatusOK, i18n.T(lang, "article.deleted"))
}

func (h *Handler) Reorder(w http.ResponseWriter, r *http.Request) {
	lang := requestLang(r)
	var req idsRequest
	if err := common.DecodeJSON(r, &req); err != nil || len(req.IDs) == 0 {
		common.JSONMessage(w, http.StatusUnprocessableEntity, i18n.T(lang, "article.failed"))
		return
	}
	placed, err := h.articleService.Reorder(r.Context(), req.IDs)
	if err != nil {
		h.writeError(w, lang, err)
		return
	}
	common.JSONData(w, http.StatusOK, i18n.T(lang, "article.reordered"), placed)
}

func (h *Handler) writeError(w http.ResponseWriter, lang string, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		common.JSONMessage(w, http.StatusNotFound, i18n.T(lang, "article.not_found"))
	case errors.Is(err, common.ErrInvalidInput):
		common.JSONMessage(w, http.StatusUnprocessableEntity, err.Error())
	default:
		h.log.Error("article request failed", zap.Error(err))
		common.JSONMessage(w, http.StatusUnprocessableEntity, i18n.T(lang, "article.failed"))
	}
}

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
	if s := v.Get("category_id"); s != "" {
		id, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return q, err
		}
		q.CategoryID = &id
	}
	if s := v.Get("is_published"); s != "" {
		published, err := strconv.ParseBool(s)
		if err != nil {
			return q, err
		}
		q.IsPublished = &published
	}
	return q, nil
}
