package user

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"proapp/internal/common"
	"proapp/internal/dbmysql"
)

//go:generate mockgen -source=user_service.go -destination=mock_user_service.go -package=user

var ErrBanned = errors.New("user is banned")

type UserService interface {
	ReconcileCreate(ctx context.Context, in CreateInput, actor common.Actor) Result
	ReconcileUpdate(ctx context.Context, id uint64, in UpdateInput, actor common.Actor) Result
	CreateBulk(ctx context.Context, items []CreateInput, actor common.Actor) BulkCreateResult
	UpdateBulk(ctx context.Context, ids []uint64, in UpdateInput, actor common.Actor) BulkUpdateResult

	List(ctx context.Context, q ListQuery) (*common.Page[*dbmysql.User], error)
	Get(ctx context.Context, key string) (*dbmysql.User, error)
	Delete(ctx context.Context, id uint64) error
	DeleteBulk(ctx context.Context, ids []uint64) ([]uint64, error)
	ToggleBan(ctx context.Context, id uint64) (*dbmysql.User, error)
	ForceUpdatePassword(ctx context.Context, id uint64, password string) error

	LoadActor(ctx context.Context, userID uint64) (*common.Actor, error)
}

type userService struct {
	repo   UserRepository
	hasher common.PasswordHasher
	log    *zap.Logger
}

func NewUserService(repo UserRepository, hasher common.PasswordHasher, log *zap.Logger) UserService {
	if log == nil {
		log = zap.NewNop()
	}
	return &userService{repo: repo, hasher: hasher, log: log.Named("user")}
}

func (s *userService) List(ctx context.Context, q ListQuery) (*common.Page[*dbmysql.User], error) {
	q = q.Normalize()
	users, total, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return common.NewPage(users, total, q.Page, q.Limit), nil
}

// Get looks a user up by numeric id or by username.
func (s *userService) Get(ctx context.Context, key string) (*dbmysql.User, error) {
	if key == "" {
		return nil, ErrNotFound
	}
	return s.repo.FindByIDOrUsername(ctx, key)
}

func (s *userService) Delete(ctx context.Context, id uint64) error {
	err := s.repo.Transaction(ctx, func(tx UserRepository) error {
		if _, err := tx.FindByID(ctx, id); err != nil {
			return err
		}
		return tx.SoftDelete(ctx, id)
	})
	if err != nil {
		return err
	}
	s.log.Info("user deleted", zap.Uint64("user_id", id))
	return nil
}

// DeleteBulk trashes every live id in one transaction and returns the ids it
// deleted. Unknown ids are skipped.
func (s *userService) DeleteBulk(ctx context.Context, ids []uint64) ([]uint64, error) {
	deleted := make([]uint64, 0, len(ids))
	err := s.repo.Transaction(ctx, func(tx UserRepository) error {
		deleted = deleted[:0]
		for _, id := range ids {
			err := tx.SoftDelete(ctx, id)
			if errors.Is(err, ErrNotFound) {
				continue
			}
			if err != nil {
				return err
			}
			deleted = append(deleted, id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("users deleted", zap.Int("requested", len(ids)), zap.Int("deleted", len(deleted)))
	return deleted, nil
}

func (s *userService) ToggleBan(ctx context.Context, id uint64) (*dbmysql.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.IsBanned = !user.IsBanned
	if err := s.repo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("toggle ban: %w", err)
	}
	s.log.Info("user ban toggled", zap.Uint64("user_id", id), zap.Bool("banned", user.IsBanned))
	return s.reload(ctx, id, user), nil
}

func (s *userService) ForceUpdatePassword(ctx context.Context, id uint64, password string) error {
	if err := common.ValidatePassword(password); err != nil {
		return err
	}
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user.Password = hash
	return s.repo.SaveUser(ctx, user)
}

// LoadActor resolves the caller of an authenticated request. Banned users
// are refused.
func (s *userService) LoadActor(ctx context.Context, userID uint64) (*common.Actor, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.IsBanned {
		return nil, ErrBanned
	}
	actor := common.ActorFromUser(user)
	return &actor, nil
}
