// Package media uploads files into GridFS and streams them back.
package media

import (
	"context"
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"proapp/internal/common"
	"proapp/internal/config"
	"proapp/internal/dbmongo"
	"proapp/internal/i18n"
)

const (
	formField    = "file"
	sniffLen     = 512
	memoryBuffer = 32 << 20
)

// FileStore is implemented by dbmongo.FileStorage.
type FileStore interface {
	Upload(ctx context.Context, filename, mimeType, uploaderID string, content io.Reader) (*dbmongo.StoredFile, error)
	Open(ctx context.Context, fileID string) (io.ReadCloser, *dbmongo.StoredFile, error)
}

type Handler struct {
	store    FileStore
	assetURL string
	maxBytes int64
	log      *zap.Logger
}

type UploadResponse struct {
	*dbmongo.StoredFile
	URL string `json:"url"`
}

func NewHandler(store FileStore, cfg *config.Config, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		store:    store,
		assetURL: strings.TrimRight(cfg.App.AssetURL, "/"),
		maxBytes: cfg.Server.MaxUploadBytes,
		log:      log.Named("media.http"),
	}
}

// RegisterRoutes serves downloads publicly; uploads need an account.
func (h *Handler) RegisterRoutes(public, private *mux.Router) {
	public.HandleFunc("/files/{id}", h.Download).Methods(http.MethodGet, http.MethodHead)
	private.HandleFunc("/files", h.Upload).Methods(http.MethodPost)
}

// FileURL is the public address of a stored file.
func (h *Handler) FileURL(id string) string {
	return h.assetURL + "/files/" + id
}

func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	actor, _ := common.ActorFromContext(r.Context())
	lang := i18n.Normalize(actor.Language)

	if h.maxBytes > 0 {
		if r.ContentLength > h.maxBytes {
			common.JSONMessage(w, http.StatusRequestEntityTooLarge, i18n.T(lang, "file.upload_failed"))
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	}
	if err := r.ParseMultipartForm(memoryBuffer); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			common.JSONMessage(w, http.StatusRequestEntityTooLarge, i18n.T(lang, "file.upload_failed"))
			return
		}
		common.JSONMessage(w, http.StatusUnprocessableEntity, i18n.T(lang, "file.upload_failed"))
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, header, err := r.FormFile(formField)
	if err != nil {
		common.JSONMessage(w, http.StatusUnprocessableEntity, i18n.T(lang, "file.upload_failed"))
		return
	}
	defer file.Close()

	mimeType, err := contentType(header.Header.Get("Content-Type"), file)
	if err != nil {
		h.log.Error("sniff upload", zap.Error(err))
		common.JSONMessage(w, http.StatusUnprocessableEntity, i18n.T(lang, "file.upload_failed"))
		return
	}

	stored, err := h.store.Upload(r.Context(), header.Filename, mimeType, strconv.FormatUint(actor.ID, 10), file)
	if err != nil {
		h.log.Error("store upload", zap.String("filename", header.Filename), zap.Error(err))
		common.JSONMessage(w, http.StatusUnprocessableEntity, i18n.T(lang, "file.upload_failed"))
		return
	}
	h.log.Info("file uploaded",
		zap.String("file_id", stored.ID),
		zap.Uint64("user_id", actor.ID),
		zap.Int64("size", stored.Size),
	)
	common.JSONData(w, http.StatusOK, i18n.T(lang, "file.uploaded"), UploadResponse{StoredFile: stored, URL: h.FileURL(stored.ID)})
}

func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	rc, info, err := h.store.Open(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		lang := i18n.DetectLanguage(r.Header.Get("Accept-Language"))
		if !errors.Is(err, dbmongo.ErrFileNotFound) {
			h.log.Error("open file", zap.Error(err))
		}
		common.JSONMessage(w, http.StatusNotFound, i18n.T(lang, "file.not_found"))
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", info.MimeType)
	w.Header().Set("Content-Length", strconv.FormatInt(info.Size, 10))
	w.Header().Set("Content-Disposition", mime.FormatMediaType("inline", map[string]string{"filename": info.Filename}))
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := io.Copy(w, rc); err != nil {
		h.log.Warn("stream file", zap.String("file_id", info.ID), zap.Error(err))
	}
}

// contentType trusts a specific client header and sniffs otherwise. f is
// rewound afterwards.
func contentType(declared string, f io.ReadSeeker) (string, error) {
	if mt, _, err := mime.ParseMediaType(declared); err == nil && mt != "application/octet-stream" {
		return mt, nil
	}
	buf := make([]byte, sniffLen)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	mt, _, _ := mime.ParseMediaType(http.DetectContentType(buf[:n]))
	return mt, nil
}
