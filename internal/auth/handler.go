package auth

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"proapp/internal/common"
	"proapp/internal/i18n"
	"proapp/internal/user"
)

type Handler struct {
	authService AuthService
	log         *zap.Logger
}

func NewHandler(authService AuthService, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{authService: authService, log: log.Named("auth.http")}
}

// RegisterRoutes mounts the anonymous flows on public and the session flows
// on private, which must already run the auth middleware.
func (h *Handler) RegisterRoutes(public, private *mux.Router) {
	public.HandleFunc("/auth/login", h.Login).Methods(http.MethodPost)
	public.HandleFunc("/auth/login/auto", h.AutoLogin).Methods(http.MethodPost)
	public.HandleFunc("/auth/login/auto/generate", h.RequestAutoLogin).Methods(http.MethodPost)
	public.HandleFunc("/auth/login/sms", h.SMSLogin).Methods(http.MethodPost)
	public.HandleFunc("/auth/login/sms/generate", h.RequestSMSLogin).Methods(http.MethodPost)
	public.HandleFunc("/auth/register", h.Register).Methods(http.MethodPost)
	public.HandleFunc("/auth/register/resend", h.ResendVerification).Methods(http.MethodPost)
	public.HandleFunc("/auth/register/verified", h.Verify).Methods(http.MethodPost)
	public.HandleFunc("/auth/password/forgot", h.ForgotPassword).Methods(http.MethodPost)
	public.HandleFunc("/auth/password/reset/{email}/{token}", h.ResetPassword).Methods(http.MethodPost)

	private.HandleFunc("/auth/logout", h.Logout).Methods(http.MethodPost)
	private.HandleFunc("/auth/profile", h.Profile).Methods(http.MethodGet)
	private.HandleFunc("/auth/profile", h.UpdateProfile).Methods(http.MethodPut)
	private.HandleFunc("/auth/password/change", h.ChangePassword).Methods(http.MethodPut)
}

type loginRequest struct {
	LoginInput
	Lang string `json:"lang"`
}

type registerRequest struct {
	RegisterInput
	Lang string `json:"lang"`
}

type emailRequest struct {
	Email string `json:"email"`
	Lang  string `json:"lang"`
}

type tokenRequest struct {
	Token string `json:"token"`
	Lang  string `json:"lang"`
}

type smsRequest struct {
	MobilePhone string `json:"mobile_phone"`
	Code        string `json:"code"`
	Lang        string `json:"lang"`
}

type resetRequest struct {
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
	Lang            string `json:"lang"`
}

type registerResponse struct {
	Message string       `json:"message"`
	Token   *LoginResult `json:"token"`
}

// errorStatus maps the declines of the auth flows to a status and message.
var errorStatus = map[error]struct {
	status int
	code   string
}{
	ErrWrongPassword:          {http.StatusUnprocessableEntity, "auth.wrong_password"},
	ErrEmailNotRegistered:     {http.StatusUnprocessableEntity, "auth.email_not_registered"},
	ErrEmailInUse:             {http.StatusUnprocessableEntity, "user.email_used"},
	ErrUsernameInUse:          {http.StatusUnprocessableEntity, "user.username_used"},
	ErrMobilePhoneInUse:       {http.StatusUnprocessableEntity, "user.phone_used"},
	ErrEmailNotFound:          {http.StatusNotFound, "auth.email_not_found"},
	ErrAlreadyVerified:        {http.StatusUnprocessableEntity, "auth.already_active"},
	ErrRegistrationExpired:    {http.StatusUnprocessableEntity, "auth.registration_expired"},
	ErrAccountNotFound:        {http.StatusNotFound, "auth.account_not_found"},
	ErrOldPasswordMissing:     {http.StatusUnprocessableEntity, "auth.old_password_missing"},
	ErrOldPasswordWrong:       {http.StatusUnprocessableEntity, "auth.old_password_wrong"},
	ErrPasswordMismatch:       {http.StatusUnprocessableEntity, "auth.password_mismatch"},
	ErrUserNotFound:           {http.StatusUnprocessableEntity, "user.not_found"},
	ErrTokenExpired:           {http.StatusUnprocessableEntity, "auth.token_expired"},
	ErrTokenInvalid:           {http.StatusUnprocessableEntity, "auth.token_invalid"},
	ErrMobilePhoneNotFound:    {http.StatusUnprocessableEntity, "auth.phone_not_found"},
	ErrSMSUndelivered:         {http.StatusUnprocessableEntity, "auth.sms_undelivered"},
	user.ErrBanned:            {http.StatusForbidden, "auth.forbidden"},
	user.ErrNotFound:          {http.StatusNotFound, "user.not_found"},
	common.ErrInvalidEmail:    {http.StatusUnprocessableEntity, "user.invalid_input"},
	common.ErrInvalidUsername: {http.StatusUnprocessableEntity, "user.invalid_input"},
	common.ErrInvalidInput:    {http.StatusUnprocessableEntity, "user.invalid_input"},
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !h.decode(w, r, &req) {
		return
	}
	lang := requestLang(r, req.Lang)
	res, err := h.authService.Login(r.Context(), req.LoginInput)
	if err != nil {
		h.writeError(w, lang, err, "auth.login_failed")
		return
	}
	common.JSONData(w, http.StatusOK, "", res)
}

func (h *Handler) AutoLogin(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if !h.decode(w, r, &req) {
		return
	}
	lang := requestLang(r, req.Lang)
	res, err := h.authService.AutoLogin(r.Context(), req.Token)
	if err != nil {
		h.writeError(w, lang, err, "auth.login_failed")
		return
	}
	common.JSONData(w, http.StatusOK, i18n.T(res.Language, "auth.login_success"), res)
}

func (h *Handler) RequestAutoLogin(w http.ResponseWriter, r *http.Request) {
	var req emailRequest
	if !h.decode(w, r, &req) {
		return
	}
	lang := requestLang(r, req.Lang)
	if err := h.authService.RequestAutoLogin(r.Context(), req.Email, lang); err != nil {
		h.writeError(w, lang, err, "auth.autologin_failed")
		return
	}
	common.JSONMessage(w, http.StatusOK, i18n.T(lang, "auth.autologin_sent"))
}

func (h *Handler) RequestSMSLogin(w http.ResponseWriter, r *http.Request) {
	var req smsRequest
	if !h.decode(w, r, &req) {
		return
	}
	lang := requestLang(r, req.Lang)
	if err := h.authService.RequestSMSLogin(r.Context(), req.MobilePhone, lang); err != nil {
		h.writeError(w, lang, err, "auth.sms_failed")
		return
	}
	common.JSONMessage(w, http.StatusOK, i18n.T(lang, "auth.sms_sent"))
}

func (h *Handler) SMSLogin(w http.ResponseWriter, r *http.Request) {
	var req smsRequest
	if !h.decode(w, r, &req) {
		return
	}
	lang := requestLang(r, req.Lang)
	res, err := h.authService.SMSLogin(r.Context(), req.MobilePhone, req.Code)
	if err != nil {
		h.writeError(w, lang, err, "auth.sms_login_failed")
		return
	}
	common.JSONData(w, http.StatusOK, i18n.T(res.Language, "auth.login_success"), res)
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !h.decode(w, r, &req) {
		return
	}
	lang := requestLang(r, req.Lang)
	res, err := h.authService.Register(r.Context(), req.RegisterInput, lang)
	if err != nil {
		h.writeError(w, lang, err, "auth.register_failed")
		return
	}
	common.JSON(w, http.StatusOK, registerResponse{Message: i18n.T(lang, "auth.registered"), Token: res})
}

func (h *Handler) ResendVerification(w http.ResponseWriter, r *http.Request) {
	var req emailRequest
	if !h.decode(w, r, &req) {
		return
	}
	lang := requestLang(r, req.Lang)
	if err := h.authService.ResendVerification(r.Context(), req.Email, lang); err != nil {
		h.writeError(w, lang, err, "auth.resend_failed")
		return
	}
	common.JSONMessage(w, http.StatusOK, i18n.T(lang, "auth.resent"))
}

func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if !h.decode(w, r, &req) {
		return
	}
	lang := requestLang(r, req.Lang)
	u, err := h.authService.Verify(r.Context(), req.Token)
	if err != nil {
		h.writeError(w, lang, err, "auth.verify_failed")
		return
	}
	common.JSONData(w, http.StatusOK, i18n.T(lang, "auth.verified"), u)
}

func (h *Handler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req emailRequest
	if !h.decode(w, r, &req) {
		return
	}
	lang := requestLang(r, req.Lang)
	if err := h.authService.ForgotPassword(r.Context(), req.Email, lang); err != nil {
		h.writeError(w, lang, err, "auth.forgot_failed")
		return
	}
	common.JSONMessage(w, http.StatusOK, i18n.T(lang, "auth.forgot_sent"))
}

func (h *Handler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetRequest
	if !h.decode(w, r, &req) {
		return
	}
	vars := mux.Vars(r)
	lang := requestLang(r, req.Lang)
	userLang, err := h.authService.ResetPassword(r.Context(), ResetPasswordInput{
		Email:           vars["email"],
		Token:           vars["token"],
		NewPassword:     req.NewPassword,
		ConfirmPassword: req.ConfirmPassword,
	})
	if userLang != "" {
		lang = i18n.Normalize(userLang)
	}
	if err != nil {
		h.writeError(w, lang, err, "auth.reset_failed")
		return
	}
	common.JSONMessage(w, http.StatusOK, i18n.T(lang, "auth.password_reset"))
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	actor := requestActor(r)
	raw, _ := common.BearerToken(r)
	if err := h.authService.Logout(r.Context(), raw); err != nil {
		h.writeError(w, actor.Language, err, "auth.unauthorized")
		return
	}
	common.JSONMessage(w, http.StatusOK, i18n.T(actor.Language, "auth.logged_out"))
}

func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	actor := requestActor(r)
	u, err := h.authService.Profile(r.Context(), actor.ID)
	if err != nil {
		h.writeError(w, actor.Language, err, "user.detail_failed")
		return
	}
	common.JSONData(w, http.StatusOK, "", u)
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	actor := requestActor(r)
	var in ProfileUpdate
	if err := common.DecodeJSON(r, &in); err != nil {
		common.JSONMessage(w, http.StatusUnprocessableEntity, i18n.T(actor.Language, "user.invalid_input"))
		return
	}
	res := h.authService.UpdateProfile(r.Context(), actor, in)
	if res.Err != nil {
		h.log.Warn("update profile", zap.Uint64("user_id", actor.ID), zap.Error(res.Err))
	}
	if res.Outcome != user.OutcomeUpdated {
		common.JSONMessage(w, res.Outcome.HTTPStatus(), res.Message)
		return
	}
	lang := actor.Language
	if res.User != nil && res.User.Language != "" {
		lang = i18n.Normalize(res.User.Language)
	}
	common.JSONData(w, http.StatusOK, i18n.T(lang, "auth.profile_updated"), res.User)
}

func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	actor := requestActor(r)
	var in ChangePasswordInput
	if !h.decode(w, r, &in) {
		return
	}
	if err := h.authService.ChangePassword(r.Context(), actor.ID, in); err != nil {
		h.writeError(w, actor.Language, err, "auth.password_failed")
		return
	}
	common.JSONMessage(w, http.StatusOK, i18n.T(actor.Language, "auth.password_changed"))
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := common.DecodeJSON(r, dst); err != nil {
		common.JSONMessage(w, http.StatusUnprocessableEntity, i18n.T(requestLang(r, ""), "user.invalid_input"))
		return false
	}
	return true
}

// writeError answers known declines with their own message. Anything else is
// logged and reported with fallback.
func (h *Handler) writeError(w http.ResponseWriter, lang string, err error, fallback string) {
	if errors.Is(err, common.ErrInvalidPassword) {
		common.JSONMessage(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	for target, m := range errorStatus {
		if errors.Is(err, target) {
			common.JSONMessage(w, m.status, i18n.T(lang, m.code))
			return
		}
	}
	h.log.Error(fallback, zap.Error(err))
	common.JSONMessage(w, http.StatusUnprocessableEntity, i18n.T(lang, fallback))
}

// requestLang prefers the lang field of the body over Accept-Language.
func requestLang(r *http.Request, bodyLang string) string {
	if bodyLang != "" {
		return i18n.Normalize(bodyLang)
	}
	return i18n.DetectLanguage(r.Header.Get("Accept-Language"))
}

func requestActor(r *http.Request) common.Actor {
	actor, _ := common.ActorFromContext(r.Context())
	if actor.Language == "" {
		actor.Language = i18n.DetectLanguage(r.Header.Get("Accept-Language"))
	}
	actor.Language = i18n.Normalize(actor.Language)
	return actor
}
