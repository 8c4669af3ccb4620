package dbmysql

import "time"

// TokenType values mirror the flows that consume them.
const (
	TokenVerifyAccountEmail = "verify_account_email"
	TokenVerifyAccountPhone = "verify_account_phone"
	TokenForgotPassword     = "forgot_password"
	TokenAutoLogin          = "auto_login"
	TokenLoginSMS           = "login_sms"
)

// Token is a single-use credential tied to a user.
type Token struct {
	ID        uint64    `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	UserID    uint64    `gorm:"column:user_id;index;not null" json:"user_id"`
	Token     string    `gorm:"column:token;size:255;index;not null" json:"token"`
	Type      string    `gorm:"column:type;size:80;not null" json:"type"`
	IsRevoked bool      `gorm:"column:is_revoked;not null" json:"is_revoked"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Token) TableName() string {
	return "tokens"
}
