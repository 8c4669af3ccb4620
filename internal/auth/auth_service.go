package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"proapp/internal/common"
	"proapp/internal/dbmysql"
	"proapp/internal/user"
)

//go:generate mockgen -source=auth_service.go -destination=mock_auth_service.go -package=auth

var (
	ErrWrongPassword       = errors.New("wrong password")
	ErrEmailNotRegistered  = errors.New("email not registered")
	ErrEmailInUse          = errors.New("email in use")
	ErrUsernameInUse       = errors.New("username in use")
	ErrMobilePhoneInUse    = errors.New("mobile phone in use")
	ErrEmailNotFound       = errors.New("email not found")
	ErrAlreadyVerified     = errors.New("account already verified")
	ErrRegistrationExpired = errors.New("registration expired")
	ErrAccountNotFound     = errors.New("account not found")
	ErrOldPasswordMissing  = errors.New("old password missing")
	ErrOldPasswordWrong    = errors.New("old password wrong")
	ErrPasswordMismatch    = errors.New("password confirmation mismatch")
	ErrUserNotFound        = errors.New("user not found")
	ErrTokenExpired        = errors.New("token expired")
	ErrTokenInvalid        = errors.New("token invalid")
	ErrMobilePhoneNotFound = errors.New("mobile phone not found")
	ErrSMSUndelivered      = errors.New("sms undelivered")
)

const (
	verifyTokenLength    = 20
	forgotTokenLength    = 20
	autoLoginTokenLength = 8
	smsCodeLength        = 6
)

// Revoker blacklists a token id until it expires.
type Revoker interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
}

type LoginInput struct {
	Login    string `json:"email"`
	Password string `json:"password"`
}

type RegisterInput struct {
	Email       string  `json:"email"`
	Name        *string `json:"name,omitempty"`
	Username    *string `json:"username,omitempty"`
	Password    *string `json:"password,omitempty"`
	MobilePhone *string `json:"mobile_phone,omitempty"`
	Gender      *string `json:"gender,omitempty"`
	BirthDate   *string `json:"birth_date,omitempty"`
}

type ChangePasswordInput struct {
	OldPassword     string `json:"old_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

type ResetPasswordInput struct {
	Email           string `json:"email"`
	Token           string `json:"token"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

// ProfileUpdate is the self-service subset of user.UpdateInput. Flags and
// roles stay admin-only.
type ProfileUpdate struct {
	Email         *string `json:"email,omitempty"`
	Username      *string `json:"username,omitempty"`
	MobilePhone   *string `json:"mobile_phone,omitempty"`
	IsAllowNotify *bool   `json:"is_allow_notify,omitempty"`
	Language      *string `json:"language,omitempty"`
	user.ProfileInput
}

// LoginResult is returned by every flow that signs the user in.
type LoginResult struct {
	Type          string    `json:"type"`
	Token         string    `json:"token"`
	ExpiresAt     time.Time `json:"expires_at"`
	IsSetPassword bool      `json:"is_set_password"`
	Language      string    `json:"-"`
}

type AuthService interface {
	Login(ctx context.Context, in LoginInput) (*LoginResult, error)
	Logout(ctx context.Context, rawToken string) error
	Register(ctx context.Context, in RegisterInput, lang string) (*LoginResult, error)
	ResendVerification(ctx context.Context, email, lang string) error
	// SendVerification mails u its pending verification link in u's language.
	SendVerification(ctx context.Context, u *dbmysql.User) error
	Verify(ctx context.Context, token string) (*dbmysql.User, error)
	ChangePassword(ctx context.Context, userID uint64, in ChangePasswordInput) error
	ForgotPassword(ctx context.Context, email, lang string) error
	ResetPassword(ctx context.Context, in ResetPasswordInput) (string, error)
	RequestAutoLogin(ctx context.Context, email, lang string) error
	AutoLogin(ctx context.Context, token string) (*LoginResult, error)
	// RequestSMSLogin replaces the user's pending SMS code with a new one.
	RequestSMSLogin(ctx context.Context, phone, lang string) error
	SMSLogin(ctx context.Context, phone, code string) (*LoginResult, error)
	Profile(ctx context.Context, userID uint64) (*dbmysql.User, error)
	UpdateProfile(ctx context.Context, actor common.Actor, in ProfileUpdate) user.Result
}

type authService struct {
	users    user.UserRepository
	tokens   TokenRepository
	profiles user.UserService
	hasher   common.PasswordHasher
	jwt      *common.JWTManager
	revoker  Revoker
	mailer   common.EmailDispatcher
	sms      CodeSender
	log      *zap.Logger
	now      func() time.Time
}

func NewAuthService(
	users user.UserRepository,
	tokens TokenRepository,
	profiles user.UserService,
	hasher common.PasswordHasher,
	jwtm *common.JWTManager,
	revoker Revoker,
	mailer common.EmailDispatcher,
	sms CodeSender,
	log *zap.Logger,
) AuthService {
	if log == nil {
		log = zap.NewNop()
	}
	if sms == nil {
		sms = NewLogCodeSender(log)
	}
	return &authService{
		users:    users,
		tokens:   tokens,
		profiles: profiles,
		hasher:   hasher,
		jwt:      jwtm,
		revoker:  revoker,
		mailer:   mailer,
		sms:      sms,
		log:      log.Named("auth"),
		now:      time.Now,
	}
}

func (s *authService) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	login := strings.TrimSpace(in.Login)
	u, err := s.users.FindByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrEmailNotRegistered
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	if s.hasher.Compare(u.Password, in.Password) != nil {
		return nil, ErrWrongPassword
	}
	if u.IsBanned {
		return nil, user.ErrBanned
	}
	return s.signIn(ctx, u)
}

// signIn issues a JWT and records the login time.
func (s *authService) signIn(ctx context.Context, u *dbmysql.User) (*LoginResult, error) {
	res, err := s.issue(u)
	if err != nil {
		return nil, err
	}
	if err := s.users.TouchLoggedIn(ctx, u.ID, s.now()); err != nil {
		return nil, fmt.Errorf("touch logged in: %w", err)
	}
	s.log.Info("user logged in", zap.Uint64("user_id", u.ID))
	return res, nil
}

func (s *authService) issue(u *dbmysql.User) (*LoginResult, error) {
	signed, claims, err := s.jwt.GenerateToken(u.ID, u.UsernameOrEmpty())
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &LoginResult{
		Type:          "bearer",
		Token:         signed,
		ExpiresAt:     claims.ExpiresAt.Time,
		IsSetPassword: common.IsPlaceholder(s.hasher, u.Password),
		Language:      u.Language,
	}, nil
}

func (s *authService) Logout(ctx context.Context, rawToken string) error {
	claims, err := s.jwt.ValidToken(rawToken)
	if err != nil {
		return ErrTokenInvalid
	}
	if err := s.revoker.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	if err := s.users.TouchLoggedOut(ctx, claims.UserID, s.now()); err != nil {
		s.log.Warn("touch logged out", zap.Uint64("user_id", claims.UserID), zap.Error(err))
	}
	return nil
}

// Register creates a client account, or reuses the trashed account that owns
// the email, and queues the verification email. Everything happens in one
// transaction so a failed publish leaves nothing behind.
func (s *authService) Register(ctx context.Context, in RegisterInput, lang string) (*LoginResult, error) {
	if lang == "" {
		lang = dbmysql.DefaultLanguage
	}
	email := common.NormalizeEmail(in.Email)
	if err := common.ValidateEmail(email); err != nil {
		return nil, err
	}
	username, hasUsername := trimmed(in.Username)
	if hasUsername {
		if err := common.ValidateUsername(username); err != nil {
			return nil, err
		}
	}
	password := common.PlaceholderPassword
	if p, ok := trimmed(in.Password); ok {
		if err := common.ValidatePassword(p); err != nil {
			return nil, err
		}
		password = p
	}
	var birth *dbmysql.Date
	if v, ok := trimmed(in.BirthDate); ok {
		d, err := dbmysql.ParseDate(v)
		if err != nil {
			return nil, fmt.Errorf("%w: birth_date", common.ErrInvalidInput)
		}
		birth = &d
	}
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	var res *LoginResult
	err = s.tokens.Transaction(ctx, func(users user.UserRepository, tokens TokenRepository) error {
		existing, err := users.FindByEmailWithTrashed(ctx, email)
		if err != nil && !errors.Is(err, user.ErrNotFound) {
			return err
		}
		if existing != nil && !existing.IsTrashed() {
			return ErrEmailInUse
		}

		var excludeID uint64
		if existing != nil {
			excludeID = existing.ID
		}
		phone, hasPhone := trimmed(in.MobilePhone)
		if hasPhone {
			taken, err := users.MobilePhoneTakenByOther(ctx, phone, excludeID)
			if err != nil {
				return err
			}
			if taken {
				return ErrMobilePhoneInUse
			}
		}
		if hasUsername {
			taken, err := users.UsernameTakenByOther(ctx, username, excludeID, true)
			if err != nil {
				return err
			}
			if taken {
				return ErrUsernameInUse
			}
		}

		u := existing
		if u == nil {
			u = &dbmysql.User{}
		}
		u.Email = email
		if hasUsername {
			u.Username = &username
		}
		if hasPhone {
			u.MobilePhone = &phone
		}
		u.Password = hash
		u.IsVerified = false
		u.IsActive = true
		u.Roles = dbmysql.Roles{dbmysql.RoleClient}
		u.Language = lang
		u.DeletedAt = gorm.DeletedAt{}
		if existing != nil {
			err = users.SaveUser(ctx, u)
		} else {
			err = users.CreateUser(ctx, u)
		}
		if err != nil {
			return fmt.Errorf("save user: %w", err)
		}

		profile, err := users.FindProfileWithTrashed(ctx, u.ID)
		if err != nil {
			if !errors.Is(err, user.ErrNotFound) {
				return err
			}
			profile = &dbmysql.Profile{UserID: u.ID}
		}
		profile.DeletedAt = gorm.DeletedAt{}
		if name, ok := trimmed(in.Name); ok {
			profile.Name = &name
		}
		if gender, ok := trimmed(in.Gender); ok {
			profile.Gender = &gender
		}
		if birth != nil {
			profile.BirthDate = birth
		}
		if err := users.SaveProfile(ctx, profile); err != nil {
			return fmt.Errorf("save profile: %w", err)
		}

		token, err := newToken(u.ID, dbmysql.TokenVerifyAccountEmail, verifyTokenLength, common.Alphanumeric)
		if err != nil {
			return err
		}
		if err := tokens.Create(ctx, token); err != nil {
			return fmt.Errorf("create token: %w", err)
		}

		if res, err = s.issue(u); err != nil {
			return err
		}
		return s.mailer.VerifyAccount(ctx, u.Email, lang, token.Token)
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("user registered", zap.String("email", email))
	return res, nil
}

func (s *authService) ResendVerification(ctx context.Context, email, lang string) error {
	u, err := s.users.FindByEmail(ctx, common.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return ErrEmailNotFound
		}
		return err
	}
	if u.IsVerified {
		return ErrAlreadyVerified
	}
	return s.sendVerification(ctx, u, lang)
}

func (s *authService) SendVerification(ctx context.Context, u *dbmysql.User) error {
	if u.IsVerified {
		return ErrAlreadyVerified
	}
	lang := u.Language
	if lang == "" {
		lang = dbmysql.DefaultLanguage
	}
	return s.sendVerification(ctx, u, lang)
}

func (s *authService) sendVerification(ctx context.Context, u *dbmysql.User, lang string) error {
	token, err := s.verifyToken(ctx, u.ID)
	if err != nil {
		return err
	}
	return s.mailer.VerifyAccount(ctx, u.Email, lang, token.Token)
}

// verifyToken reuses the user's pending verification token or creates one.
func (s *authService) verifyToken(ctx context.Context, userID uint64) (*dbmysql.Token, error) {
	token, err := s.tokens.FindForUser(ctx, userID, dbmysql.TokenVerifyAccountEmail)
	if err == nil {
		return token, nil
	}
	if !errors.Is(err, ErrTokenNotFound) {
		return nil, err
	}
	token, err = newToken(userID, dbmysql.TokenVerifyAccountEmail, verifyTokenLength, common.Alphanumeric)
	if err != nil {
		return nil, err
	}
	if err := s.tokens.Create(ctx, token); err != nil {
		return nil, fmt.Errorf("create token: %w", err)
	}
	return token, nil
}

func (s *authService) Verify(ctx context.Context, value string) (*dbmysql.User, error) {
	var verified *dbmysql.User
	err := s.tokens.Transaction(ctx, func(users user.UserRepository, tokens TokenRepository) error {
		token, err := tokens.FindVerifyToken(ctx, value)
		if err != nil {
			if errors.Is(err, ErrTokenNotFound) {
				return ErrRegistrationExpired
			}
			return err
		}
		u, err := users.FindByID(ctx, token.UserID)
		if err != nil {
			if errors.Is(err, user.ErrNotFound) {
				return ErrAccountNotFound
			}
			return err
		}
		u.IsActive = true
		u.IsVerified = true
		if err := users.SaveUser(ctx, u); err != nil {
			return fmt.Errorf("save user: %w", err)
		}
		if _, err := tokens.DeleteVerifyTokens(ctx, u.ID); err != nil {
			return fmt.Errorf("delete tokens: %w", err)
		}
		verified = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("user verified", zap.Uint64("user_id", verified.ID))
	return verified, nil
}

// ChangePassword skips the old password check while the account still has
// the placeholder password, so invited users can set their first one.
func (s *authService) ChangePassword(ctx context.Context, userID uint64, in ChangePasswordInput) error {
	if in.OldPassword == "" {
		return ErrOldPasswordMissing
	}
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if !common.IsPlaceholder(s.hasher, u.Password) && s.hasher.Compare(u.Password, in.OldPassword) != nil {
		return ErrOldPasswordWrong
	}
	if in.NewPassword != in.ConfirmPassword {
		return ErrPasswordMismatch
	}
	if err := s.setPassword(ctx, s.users, u, in.NewPassword); err != nil {
		return err
	}
	s.log.Info("password changed", zap.Uint64("user_id", userID))
	return nil
}

func (s *authService) setPassword(ctx context.Context, users user.UserRepository, u *dbmysql.User, password string) error {
	if err := common.ValidatePassword(password); err != nil {
		return err
	}
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	u.Password = hash
	return users.SaveUser(ctx, u)
}

func (s *authService) ForgotPassword(ctx context.Context, email, lang string) error {
	u, err := s.users.FindByEmail(ctx, common.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return ErrEmailNotFound
		}
		return err
	}
	token, err := newToken(u.ID, dbmysql.TokenForgotPassword, forgotTokenLength, common.Alphanumeric)
	if err != nil {
		return err
	}
	if err := s.tokens.Create(ctx, token); err != nil {
		return fmt.Errorf("create token: %w", err)
	}
	return s.mailer.ForgotPassword(ctx, u.Email, lang, token.Token)
}

// ResetPassword returns the user's language so the caller can answer in it.
func (s *authService) ResetPassword(ctx context.Context, in ResetPasswordInput) (string, error) {
	var lang string
	err := s.tokens.Transaction(ctx, func(users user.UserRepository, tokens TokenRepository) error {
		u, err := users.FindByEmail(ctx, common.NormalizeEmail(in.Email))
		if err != nil {
			if errors.Is(err, user.ErrNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		lang = u.Language

		token, err := tokens.FindForUserByValue(ctx, u.ID, in.Token, dbmysql.TokenForgotPassword)
		if err != nil {
			if errors.Is(err, ErrTokenNotFound) {
				return ErrTokenExpired
			}
			return err
		}
		if in.NewPassword != in.ConfirmPassword {
			return ErrPasswordMismatch
		}
		if err := s.setPassword(ctx, users, u, in.NewPassword); err != nil {
			return err
		}
		return tokens.Delete(ctx, token.ID)
	})
	return lang, err
}

func (s *authService) RequestAutoLogin(ctx context.Context, email, lang string) error {
	u, err := s.users.FindByEmail(ctx, common.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return ErrEmailNotRegistered
		}
		return err
	}
	token, err := newToken(u.ID, dbmysql.TokenAutoLogin, autoLoginTokenLength, common.UpperAlnum)
	if err != nil {
		return err
	}
	if err := s.tokens.Create(ctx, token); err != nil {
		return fmt.Errorf("create token: %w", err)
	}

	name := "User"
	if p, err := s.users.FindProfileWithTrashed(ctx, u.ID); err == nil && p.Name != nil && *p.Name != "" {
		name = *p.Name
	}
	var phone string
	if u.MobilePhone != nil {
		phone = *u.MobilePhone
	}
	return s.mailer.AutoLogin(ctx, common.AutoLoginEmail{
		To:          u.Email,
		Lang:        lang,
		Token:       token.Token,
		UserName:    strings.ToUpper(name),
		MobilePhone: phone,
	})
}

// AutoLogin exchanges an auto_login token for a session. The token stays
// valid afterwards.
func (s *authService) AutoLogin(ctx context.Context, value string) (*LoginResult, error) {
	token, err := s.tokens.FindByValue(ctx, strings.ToUpper(strings.TrimSpace(value)), dbmysql.TokenAutoLogin)
	if err != nil {
		if errors.Is(err, ErrTokenNotFound) {
			return nil, ErrTokenInvalid
		}
		return nil, err
	}
	u, err := s.users.FindByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	if u.IsBanned {
		return nil, user.ErrBanned
	}
	return s.signIn(ctx, u)
}

func (s *authService) RequestSMSLogin(ctx context.Context, phone, lang string) error {
	u, err := s.users.FindByMobilePhone(ctx, strings.TrimSpace(phone))
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return ErrMobilePhoneNotFound
		}
		return err
	}
	token, err := newToken(u.ID, dbmysql.TokenLoginSMS, smsCodeLength, common.Numeric)
	if err != nil {
		return err
	}
	err = s.tokens.Transaction(ctx, func(_ user.UserRepository, tokens TokenRepository) error {
		if _, err := tokens.DeleteForUser(ctx, u.ID, dbmysql.TokenLoginSMS); err != nil {
			return fmt.Errorf("delete tokens: %w", err)
		}
		if err := tokens.Create(ctx, token); err != nil {
			return fmt.Errorf("create token: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	if err := s.sms.SendLoginCode(ctx, *u.MobilePhone, lang, token.Token); err != nil {
		return fmt.Errorf("%w: %w", ErrSMSUndelivered, err)
	}
	s.log.Info("sms login code sent", zap.Uint64("user_id", u.ID))
	return nil
}

// SMSLogin consumes the code sent by RequestSMSLogin.
func (s *authService) SMSLogin(ctx context.Context, phone, code string) (*LoginResult, error) {
	var u *dbmysql.User
	err := s.tokens.Transaction(ctx, func(users user.UserRepository, tokens TokenRepository) error {
		found, err := users.FindByMobilePhone(ctx, strings.TrimSpace(phone))
		if err != nil {
			if errors.Is(err, user.ErrNotFound) {
				return ErrMobilePhoneNotFound
			}
			return err
		}
		token, err := tokens.FindForUserByValue(ctx, found.ID, strings.TrimSpace(code), dbmysql.TokenLoginSMS)
		if err != nil {
			if errors.Is(err, ErrTokenNotFound) {
				return ErrTokenExpired
			}
			return err
		}
		if found.IsBanned {
			return user.ErrBanned
		}
		u = found
		return tokens.Delete(ctx, token.ID)
	})
	if err != nil {
		return nil, err
	}
	return s.signIn(ctx, u)
}

func (s *authService) Profile(ctx context.Context, userID uint64) (*dbmysql.User, error) {
	u, err := s.users.FindByIDWithCreator(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	if err := s.users.TouchLoggedIn(ctx, userID, now); err != nil {
		return nil, fmt.Errorf("touch logged in: %w", err)
	}
	u.LoggedInAt = &now
	return u, nil
}

// UpdateProfile runs the caller's own changes through the same reconcile
// path admins use, restricted to the self-service fields.
func (s *authService) UpdateProfile(ctx context.Context, actor common.Actor, in ProfileUpdate) user.Result {
	if in.Language != nil && *in.Language != "" {
		actor.Language = *in.Language
	}
	return s.profiles.ReconcileUpdate(ctx, actor.ID, user.UpdateInput{
		Email:         in.Email,
		Username:      in.Username,
		MobilePhone:   in.MobilePhone,
		IsAllowNotify: in.IsAllowNotify,
		Language:      in.Language,
		ProfileInput:  in.ProfileInput,
	}, actor)
}

func newToken(userID uint64, tokenType string, n int, charset string) (*dbmysql.Token, error) {
	value, err := common.RandomString(n, charset)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}
	return &dbmysql.Token{UserID: userID, Token: value, Type: tokenType}, nil
}

func trimmed(p *string) (string, bool) {
	if p == nil {
		return "", false
	}
	v := strings.TrimSpace(*p)
	return v, v != ""
}
