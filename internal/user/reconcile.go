package user

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"proapp/internal/common"
	"proapp/internal/dbmysql"
	"proapp/internal/i18n"
)

// errDeclined aborts a reconcile transaction whose decision is already
// recorded in the pending Result. It never leaves this file.
var errDeclined = errors.New("reconcile declined")

// ReconcileCreate creates a user for in.Email, revives the trashed user that
// owns it, or declines. All writes share one transaction.
func (s *userService) ReconcileCreate(ctx context.Context, in CreateInput, actor common.Actor) Result {
	lang := i18n.Normalize(actor.Language)

	email := common.NormalizeEmail(in.Email)
	if err := common.ValidateEmail(email); err != nil {
		return s.failed(lang, "user.invalid_input", err)
	}
	if v, ok := nonEmpty(in.Username); ok {
		if err := common.ValidateUsername(v); err != nil {
			return s.failed(lang, "user.invalid_input", err)
		}
	}
	birth, err := parseBirthDate(in.BirthDate)
	if err != nil {
		return s.failed(lang, "user.invalid_input", err)
	}

	var res Result
	var userID uint64
	err = s.repo.Transaction(ctx, func(tx UserRepository) error {
		existing, err := tx.FindByEmailWithTrashed(ctx, email)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}

		var user *dbmysql.User
		var name string
		switch {
		case existing != nil && !existing.IsTrashed():
			res = Result{Outcome: OutcomeEmailInUse, User: existing}
			return errDeclined
		case existing != nil:
			user = existing
			if res, err = s.revive(ctx, tx, user, in); err != nil {
				return err
			}
			if v, ok := nonEmpty(in.Username); ok {
				name = v
			} else {
				name = user.UsernameOrEmpty()
			}
		default:
			if user, name, res, err = s.create(ctx, tx, email, in, actor); err != nil {
				return err
			}
		}

		profile, err := tx.FindProfileWithTrashed(ctx, user.ID)
		if err != nil {
			if !errors.Is(err, ErrNotFound) {
				return err
			}
			profile = &dbmysql.Profile{UserID: user.ID}
		}
		profile.DeletedAt = gorm.DeletedAt{}
		in.ProfileInput.applyCreate(profile, name, birth)
		if err := tx.SaveProfile(ctx, profile); err != nil {
			return fmt.Errorf("save profile: %w", err)
		}

		userID = user.ID
		return nil
	})

	switch {
	case errors.Is(err, errDeclined):
		res.Message = declineMessage(lang, res.Outcome)
		return res
	case err != nil:
		s.log.Error("reconcile create failed", zap.String("email", email), zap.Error(err))
		return s.failed(lang, "user.create_failed", err)
	}

	res.User = s.reload(ctx, userID, res.User)
	if res.Outcome == OutcomeRevived {
		res.Message = i18n.T(lang, "user.restored")
	} else {
		res.Message = i18n.T(lang, "user.created")
	}
	s.log.Info("user reconciled",
		zap.Uint64("user_id", userID),
		zap.Stringer("outcome", res.Outcome),
		zap.Uint64("actor_id", actor.ID))
	return res
}

// revive brings a trashed user back. The email and username it owned are
// checked again because the unique guarantee only covers live rows.
func (s *userService) revive(ctx context.Context, tx UserRepository, user *dbmysql.User, in CreateInput) (Result, error) {
	taken, err := tx.EmailTakenByOther(ctx, user.Email, user.ID, false)
	if err != nil {
		return Result{}, err
	}
	if taken {
		return Result{Outcome: OutcomeEmailInUse}, errDeclined
	}
	if user.Username != nil {
		taken, err := tx.UsernameTakenByOther(ctx, *user.Username, user.ID, false)
		if err != nil {
			return Result{}, err
		}
		if taken {
			return Result{Outcome: OutcomeUsernameInUse}, errDeclined
		}
	}
	if phone, ok := nonEmpty(user.MobilePhone); ok {
		declined, err := phoneTaken(ctx, tx, phone, user.ID)
		if err != nil {
			return Result{}, err
		}
		if declined != nil {
			return *declined, errDeclined
		}
	}

	hash, err := s.hashOrPlaceholder(in.Password)
	if err != nil {
		return Result{}, err
	}
	user.DeletedAt = gorm.DeletedAt{}
	user.IsVerified = true
	user.Settings = in.Settings
	user.Password = hash
	if err := tx.SaveUser(ctx, user); err != nil {
		return Result{}, fmt.Errorf("revive user: %w", err)
	}
	return Result{Outcome: OutcomeRevived, User: user}, nil
}

func (s *userService) create(ctx context.Context, tx UserRepository, email string, in CreateInput, actor common.Actor) (*dbmysql.User, string, Result, error) {
	name, ok := nonEmpty(in.Username)
	if !ok {
		var err error
		if name, err = deriveUsername(ctx, tx, email); err != nil {
			return nil, "", Result{}, err
		}
	}

	clash, err := tx.FindByUsernameWithTrashed(ctx, name)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, "", Result{}, err
	}
	if clash != nil {
		return nil, "", Result{Outcome: OutcomeUsernameInUse}, errDeclined
	}
	phone, hasPhone := nonEmpty(in.MobilePhone)
	if hasPhone {
		declined, err := phoneTaken(ctx, tx, phone, 0)
		if err != nil {
			return nil, "", Result{}, err
		}
		if declined != nil {
			return nil, "", *declined, errDeclined
		}
	}

	hash, err := s.hashOrPlaceholder(in.Password)
	if err != nil {
		return nil, "", Result{}, err
	}

	roles := dbmysql.Roles(in.Roles)
	if len(roles) == 0 {
		roles = dbmysql.Roles{dbmysql.RoleClient}
	}
	language := dbmysql.DefaultLanguage
	if v, ok := nonEmpty(in.Language); ok {
		language = v
	}

	user := &dbmysql.User{
		Username:    &name,
		Email:       email,
		Password:    hash,
		MobilePhone: nullable(&phone),
		Roles:       roles,
		Language:    language,
		IsVerified:  true,
		Settings:    in.Settings,
	}
	if in.IsAllowNotify != nil {
		user.IsAllowNotify = *in.IsAllowNotify
	}
	if actor.ID != 0 {
		creator := actor.ID
		user.CreatedByID = &creator
	}
	if err := tx.CreateUser(ctx, user); err != nil {
		return nil, "", Result{}, fmt.Errorf("create user: %w", err)
	}
	return user, name, Result{Outcome: OutcomeCreated, User: user}, nil
}

// deriveUsername takes the local part of email and appends the number of
// live usernames containing it, when there are any.
func deriveUsername(ctx context.Context, tx UserRepository, email string) (string, error) {
	local := email
	if at := strings.LastIndex(email, "@"); at >= 0 {
		local = email[:at]
	}
	count, err := tx.CountUsernameLike(ctx, local)
	if err != nil {
		return "", err
	}
	if count > 0 {
		return local + strconv.FormatInt(count, 10), nil
	}
	return local, nil
}

// ReconcileUpdate applies a sparse patch to a live user and upserts its
// profile. Email and username collisions consider every other row,
// trashed or not.
func (s *userService) ReconcileUpdate(ctx context.Context, id uint64, in UpdateInput, actor common.Actor) Result {
	lang := i18n.Normalize(actor.Language)

	var email, username string
	if v, ok := nonEmpty(in.Email); ok {
		email = common.NormalizeEmail(v)
		if err := common.ValidateEmail(email); err != nil {
			return s.failed(lang, "user.invalid_input", err)
		}
	}
	if v, ok := nonEmpty(in.Username); ok {
		if err := common.ValidateUsername(v); err != nil {
			return s.failed(lang, "user.invalid_input", err)
		}
		username = v
	}
	birth, err := parseBirthDate(in.BirthDate)
	if err != nil {
		return s.failed(lang, "user.invalid_input", err)
	}

	var res Result
	err = s.repo.Transaction(ctx, func(tx UserRepository) error {
		user, err := tx.FindByID(ctx, id)
		if errors.Is(err, ErrNotFound) {
			res = Result{Outcome: OutcomeNotFound}
			return errDeclined
		}
		if err != nil {
			return err
		}

		if email != "" {
			taken, err := tx.EmailTakenByOther(ctx, email, user.ID, true)
			if err != nil {
				return err
			}
			if taken {
				res = Result{Outcome: OutcomeEmailInUse}
				return errDeclined
			}
			user.Email = email
		}
		if username != "" {
			taken, err := tx.UsernameTakenByOther(ctx, username, user.ID, true)
			if err != nil {
				return err
			}
			if taken {
				res = Result{Outcome: OutcomeUsernameInUse}
				return errDeclined
			}
			user.Username = &username
		}
		if phone, ok := nonEmpty(in.MobilePhone); ok {
			declined, err := phoneTaken(ctx, tx, phone, user.ID)
			if err != nil {
				return err
			}
			if declined != nil {
				res = *declined
				return errDeclined
			}
		}

		in.applyTo(user)
		if err := tx.SaveUser(ctx, user); err != nil {
			return fmt.Errorf("save user: %w", err)
		}

		profile, err := tx.FindProfileWithTrashed(ctx, user.ID)
		if err != nil {
			if !errors.Is(err, ErrNotFound) {
				return err
			}
			profile = &dbmysql.Profile{UserID: user.ID}
		}
		profile.DeletedAt = gorm.DeletedAt{}
		in.ProfileInput.applyUpdate(profile, birth)
		if err := tx.SaveProfile(ctx, profile); err != nil {
			return fmt.Errorf("save profile: %w", err)
		}

		res = Result{Outcome: OutcomeUpdated, User: user}
		return nil
	})

	switch {
	case errors.Is(err, errDeclined):
		res.Message = declineMessage(lang, res.Outcome)
		return res
	case err != nil:
		s.log.Error("reconcile update failed", zap.Uint64("user_id", id), zap.Error(err))
		return s.failed(lang, "user.update_failed", err)
	}

	res.User = s.reload(ctx, id, res.User)
	res.Message = i18n.T(lang, "user.updated")
	return res
}

func (in UpdateInput) applyTo(user *dbmysql.User) {
	if len(in.Roles) > 0 {
		user.Roles = dbmysql.Roles(in.Roles)
	}
	if in.Settings != nil {
		user.Settings = nullable(in.Settings)
	}
	if v, ok := nonEmpty(in.Language); ok {
		user.Language = v
	}
	if in.MobilePhone != nil {
		user.MobilePhone = nullable(in.MobilePhone)
	}
	if in.IsAllowNotify != nil {
		user.IsAllowNotify = *in.IsAllowNotify
	}
	if in.IsVerified != nil {
		user.IsVerified = *in.IsVerified
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}
	if in.IsApproved != nil {
		user.IsApproved = *in.IsApproved
	}
}

// phoneTaken returns a PhoneInUse result when another live user owns phone.
func phoneTaken(ctx context.Context, tx UserRepository, phone string, excludeID uint64) (*Result, error) {
	taken, err := tx.MobilePhoneTakenByOther(ctx, phone, excludeID)
	if err != nil {
		return nil, err
	}
	if taken {
		return &Result{Outcome: OutcomePhoneInUse}, nil
	}
	return nil, nil
}

func (s *userService) hashOrPlaceholder(password *string) (string, error) {
	plain := common.PlaceholderPassword
	if password != nil && *password != "" {
		plain = *password
	}
	hash, err := s.hasher.Hash(plain)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return hash, nil
}

// reload fetches the committed row with its creator. The committed write
// stands even if the read fails, so fallback is returned in that case.
func (s *userService) reload(ctx context.Context, id uint64, fallback *dbmysql.User) *dbmysql.User {
	user, err := s.repo.FindByIDWithCreator(ctx, id)
	if err != nil {
		s.log.Warn("reload after commit failed", zap.Uint64("user_id", id), zap.Error(err))
		return fallback
	}
	return user
}

func (s *userService) failed(lang, code string, err error) Result {
	return Result{Outcome: OutcomeFailed, Message: i18n.T(lang, code), Err: err}
}

func declineMessage(lang string, o Outcome) string {
	switch o {
	case OutcomeEmailInUse:
		return i18n.T(lang, "user.email_used")
	case OutcomeUsernameInUse:
		return i18n.T(lang, "user.username_used")
	case OutcomePhoneInUse:
		return i18n.T(lang, "user.phone_used")
	case OutcomeNotFound:
		return i18n.T(lang, "user.not_found")
	default:
		return i18n.T(lang, "user.create_failed")
	}
}
