package user

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"proapp/internal/common"
	"proapp/internal/dbmysql"
)

//go:generate mockgen -source=user_repository.go -destination=mock_user_repository.go -package=user

var ErrNotFound = errors.New("user not found")

// UserRepository is the storage port of the user package. Methods named
// WithTrashed also see soft-deleted rows; everything else sees live rows only.
type UserRepository interface {
	// Transaction runs fn against a repository bound to one database
	// transaction. A non-nil error from fn rolls everything back.
	Transaction(ctx context.Context, fn func(repo UserRepository) error) error

	FindByID(ctx context.Context, id uint64) (*dbmysql.User, error)
	FindByIDWithCreator(ctx context.Context, id uint64) (*dbmysql.User, error)
	FindByIDOrUsername(ctx context.Context, key string) (*dbmysql.User, error)
	FindByEmail(ctx context.Context, email string) (*dbmysql.User, error)
	FindByLogin(ctx context.Context, login string) (*dbmysql.User, error)
	FindByMobilePhone(ctx context.Context, phone string) (*dbmysql.User, error)
	FindByEmailWithTrashed(ctx context.Context, email string) (*dbmysql.User, error)
	FindByUsernameWithTrashed(ctx context.Context, username string) (*dbmysql.User, error)

	// CountUsernameLike counts live users whose username contains fragment.
	CountUsernameLike(ctx context.Context, fragment string) (int64, error)
	EmailTakenByOther(ctx context.Context, email string, excludeID uint64, withTrashed bool) (bool, error)
	UsernameTakenByOther(ctx context.Context, username string, excludeID uint64, withTrashed bool) (bool, error)
	MobilePhoneTakenByOther(ctx context.Context, phone string, excludeID uint64) (bool, error)

	CreateUser(ctx context.Context, user *dbmysql.User) error
	// SaveUser writes every column, including deleted_at, so it is also how
	// a trashed row is revived.
	SaveUser(ctx context.Context, user *dbmysql.User) error
	FindProfileWithTrashed(ctx context.Context, userID uint64) (*dbmysql.Profile, error)
	SaveProfile(ctx context.Context, profile *dbmysql.Profile) error
	// SoftDelete trashes a user together with its profile.
	SoftDelete(ctx context.Context, id uint64) error

	List(ctx context.Context, q ListQuery) ([]*dbmysql.User, int64, error)
	ListUnverifiedBefore(ctx context.Context, before time.Time) ([]*dbmysql.User, error)
	TouchLoggedIn(ctx context.Context, id uint64, at time.Time) error
	TouchLoggedOut(ctx context.Context, id uint64, at time.Time) error
}

var keywordColumns = []string{
	"users.email", "users.username",
	"profiles.name", "profiles.address", "profiles.city", "profiles.state",
	"profiles.country", "profiles.job_title", "profiles.gender", "profiles.biography",
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Transaction(ctx context.Context, fn func(repo UserRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&userRepository{db: tx})
	})
}

func (r *userRepository) first(q *gorm.DB) (*dbmysql.User, error) {
	var user dbmysql.User
	if err := q.First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id uint64) (*dbmysql.User, error) {
	return r.first(r.db.WithContext(ctx).Where("id = ?", id))
}

func (r *userRepository) FindByIDWithCreator(ctx context.Context, id uint64) (*dbmysql.User, error) {
	return r.first(r.db.WithContext(ctx).Preload("CreatedBy").Preload("Profile").Where("id = ?", id))
}

func (r *userRepository) FindByIDOrUsername(ctx context.Context, key string) (*dbmysql.User, error) {
	q := r.db.WithContext(ctx).Preload("CreatedBy").Preload("Profile")
	if id, err := strconv.ParseUint(key, 10, 64); err == nil {
		return r.first(q.Where("id = ? OR username = ?", id, key))
	}
	return r.first(q.Where("username = ?", key))
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*dbmysql.User, error) {
	return r.first(r.db.WithContext(ctx).Where("email = ?", email))
}

func (r *userRepository) FindByLogin(ctx context.Context, login string) (*dbmysql.User, error) {
	return r.first(r.db.WithContext(ctx).Preload("Profile").Where("email = ? OR username = ?", login, login))
}

func (r *userRepository) FindByMobilePhone(ctx context.Context, phone string) (*dbmysql.User, error) {
	return r.first(r.db.WithContext(ctx).Where("mobile_phone = ?", phone))
}

func (r *userRepository) FindByEmailWithTrashed(ctx context.Context, email string) (*dbmysql.User, error) {
	return r.first(r.db.WithContext(ctx).Unscoped().Where("email = ?", email))
}

func (r *userRepository) FindByUsernameWithTrashed(ctx context.Context, username string) (*dbmysql.User, error) {
	return r.first(r.db.WithContext(ctx).Unscoped().Where("username = ?", username))
}

func (r *userRepository) CountUsernameLike(ctx context.Context, fragment string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&dbmysql.User{}).
		Where("username LIKE ? ESCAPE '!'", common.ContainsPattern(fragment)).
		Count(&count).Error
	return count, err
}

func (r *userRepository) takenByOther(ctx context.Context, column, value string, excludeID uint64, withTrashed bool) (bool, error) {
	q := r.db.WithContext(ctx)
	if withTrashed {
		q = q.Unscoped()
	}
	var count int64
	err := q.Model(&dbmysql.User{}).
		Where(column+" = ? AND id <> ?", value, excludeID).
		Count(&count).Error
	return count > 0, err
}

func (r *userRepository) EmailTakenByOther(ctx context.Context, email string, excludeID uint64, withTrashed bool) (bool, error) {
	return r.takenByOther(ctx, "email", email, excludeID, withTrashed)
}

func (r *userRepository) UsernameTakenByOther(ctx context.Context, username string, excludeID uint64, withTrashed bool) (bool, error) {
	return r.takenByOther(ctx, "username", username, excludeID, withTrashed)
}

func (r *userRepository) MobilePhoneTakenByOther(ctx context.Context, phone string, excludeID uint64) (bool, error) {
	return r.takenByOther(ctx, "mobile_phone", phone, excludeID, false)
}

func (r *userRepository) CreateUser(ctx context.Context, user *dbmysql.User) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(user).Error
}

func (r *userRepository) SaveUser(ctx context.Context, user *dbmysql.User) error {
	return r.db.WithContext(ctx).Unscoped().Omit(clause.Associations).Save(user).Error
}

func (r *userRepository) FindProfileWithTrashed(ctx context.Context, userID uint64) (*dbmysql.Profile, error) {
	var profile dbmysql.Profile
	err := r.db.WithContext(ctx).Unscoped().Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *userRepository) SaveProfile(ctx context.Context, profile *dbmysql.Profile) error {
	return r.db.WithContext(ctx).Unscoped().Save(profile).Error
}

func (r *userRepository) SoftDelete(ctx context.Context, id uint64) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("user_id = ?", id).Delete(&dbmysql.Profile{}).Error; err != nil {
		return err
	}
	res := db.Delete(&dbmysql.User{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *userRepository) List(ctx context.Context, q ListQuery) ([]*dbmysql.User, int64, error) {
	base := func() *gorm.DB {
		db := r.db.WithContext(ctx).Model(&dbmysql.User{}).
			Joins("LEFT JOIN profiles ON profiles.user_id = users.id AND profiles.deleted_at IS NULL")
		if q.Role != "" {
			db = db.Where("users.roles LIKE ? ESCAPE '!'", common.ContainsPattern(`"`+q.Role+`"`))
		}
		if q.IsVerified != nil {
			db = db.Where("users.is_verified = ?", *q.IsVerified)
		}
		if q.IsBanned != nil {
			db = db.Where("users.is_banned = ?", *q.IsBanned)
		}
		if q.LoggedInSince != nil {
			db = db.Where("users.logged_in_at >= ?", *q.LoggedInSince)
		}
		if kw := strings.TrimSpace(q.Keyword); kw != "" {
			p := common.ContainsPattern(kw)
			conds := make([]string, len(keywordColumns))
			args := make([]interface{}, len(keywordColumns))
			for i, col := range keywordColumns {
				conds[i] = col + " LIKE ? ESCAPE '!'"
				args[i] = p
			}
			db = db.Where("("+strings.Join(conds, " OR ")+")", args...)
		}
		return db
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []*dbmysql.User
	err := base().
		Select("users.*").
		Preload("CreatedBy").
		Preload("Profile").
		Order(q.orderClause()).
		Offset(q.offset()).
		Limit(q.Limit).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *userRepository) ListUnverifiedBefore(ctx context.Context, before time.Time) ([]*dbmysql.User, error) {
	var users []*dbmysql.User
	err := r.db.WithContext(ctx).
		Where("is_verified = ? AND created_at < ?", false, before).
		Order("id").
		Find(&users).Error
	return users, err
}

func (r *userRepository) TouchLoggedIn(ctx context.Context, id uint64, at time.Time) error {
	return r.db.WithContext(ctx).Model(&dbmysql.User{}).Where("id = ?", id).Update("logged_in_at", at).Error
}

func (r *userRepository) TouchLoggedOut(ctx context.Context, id uint64, at time.Time) error {
	return r.db.WithContext(ctx).Model(&dbmysql.User{}).Where("id = ?", id).Update("logged_out_at", at).Error
}
