package auth

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"proapp/internal/dbmysql"
	"proapp/internal/user"
)

//go:generate mockgen -source=token_repository.go -destination=mock_token_repository.go -package=auth

var ErrTokenNotFound = errors.New("token not found")

const verifyTypePrefix = "verify_account"

type TokenRepository interface {
	// Transaction binds both repositories to one database transaction.
	Transaction(ctx context.Context, fn func(users user.UserRepository, tokens TokenRepository) error) error

	Create(ctx context.Context, token *dbmysql.Token) error
	FindByValue(ctx context.Context, value, tokenType string) (*dbmysql.Token, error)
	// FindVerifyToken matches any verify_account* token type.
	FindVerifyToken(ctx context.Context, value string) (*dbmysql.Token, error)
	FindForUser(ctx context.Context, userID uint64, tokenType string) (*dbmysql.Token, error)
	FindForUserByValue(ctx context.Context, userID uint64, value, tokenType string) (*dbmysql.Token, error)
	Delete(ctx context.Context, id uint64) error
	DeleteVerifyTokens(ctx context.Context, userID uint64) (int64, error)
	DeleteForUser(ctx context.Context, userID uint64, tokenType string) (int64, error)
}

type tokenRepository struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{db: db}
}

func (r *tokenRepository) Transaction(ctx context.Context, fn func(users user.UserRepository, tokens TokenRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(user.NewUserRepository(tx), &tokenRepository{db: tx})
	})
}

func (r *tokenRepository) first(q *gorm.DB) (*dbmysql.Token, error) {
	var token dbmysql.Token
	if err := q.First(&token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTokenNotFound
		}
		return nil, err
	}
	return &token, nil
}

func (r *tokenRepository) Create(ctx context.Context, token *dbmysql.Token) error {
	return r.db.WithContext(ctx).Create(token).Error
}

func (r *tokenRepository) FindByValue(ctx context.Context, value, tokenType string) (*dbmysql.Token, error) {
	return r.first(r.db.WithContext(ctx).Where("token = ? AND type = ?", value, tokenType))
}

func (r *tokenRepository) FindVerifyToken(ctx context.Context, value string) (*dbmysql.Token, error) {
	return r.first(r.db.WithContext(ctx).Where("token = ? AND type LIKE ?", value, verifyTypePrefix+"%"))
}

func (r *tokenRepository) FindForUser(ctx context.Context, userID uint64, tokenType string) (*dbmysql.Token, error) {
	return r.first(r.db.WithContext(ctx).Where("user_id = ? AND type = ?", userID, tokenType))
}

func (r *tokenRepository) FindForUserByValue(ctx context.Context, userID uint64, value, tokenType string) (*dbmysql.Token, error) {
	return r.first(r.db.WithContext(ctx).Where("user_id = ? AND token = ? AND type = ?", userID, value, tokenType))
}

func (r *tokenRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&dbmysql.Token{}, id).Error
}

func (r *tokenRepository) DeleteVerifyTokens(ctx context.Context, userID uint64) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND type LIKE ?", userID, verifyTypePrefix+"%").
		Delete(&dbmysql.Token{})
	return res.RowsAffected, res.Error
}

func (r *tokenRepository) DeleteForUser(ctx context.Context, userID uint64, tokenType string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND type = ?", userID, tokenType).
		Delete(&dbmysql.Token{})
	return res.RowsAffected, res.Error
}
