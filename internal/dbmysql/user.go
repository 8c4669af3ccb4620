package dbmysql

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleClient = "client"
	RoleAdmin  = "admin"

	DefaultLanguage = "no"
)

type User struct {
	ID            uint64         `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	Username      *string        `gorm:"column:username;uniqueIndex;size:80" json:"username"`
	Email         string         `gorm:"column:email;uniqueIndex;size:254;not null" json:"email"`
	Password      string         `gorm:"column:password;size:60;not null" json:"-"`
	MobilePhone   *string        `gorm:"column:mobile_phone;size:20;index" json:"mobile_phone"`
	Roles         Roles          `gorm:"column:roles;size:254" json:"roles"`
	Language      string         `gorm:"column:language;size:10;not null" json:"language"`
	IsVerified    bool           `gorm:"column:is_verified;not null" json:"is_verified"`
	IsActive      bool           `gorm:"column:is_active;not null" json:"is_active"`
	IsBanned      bool           `gorm:"column:is_banned;not null" json:"is_banned"`
	IsAllowNotify bool           `gorm:"column:is_allow_notify;not null" json:"is_allow_notify"`
	IsApproved    bool           `gorm:"column:is_approved;not null" json:"is_approved"`
	LoggedInAt    *time.Time     `gorm:"column:logged_in_at" json:"logged_in_at"`
	LoggedOutAt   *time.Time     `gorm:"column:logged_out_at" json:"logged_out_at"`
	CreatedByID   *uint64        `gorm:"column:created_by_id;index" json:"created_by_id"`
	CreatedBy     *User          `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
	Settings      *string        `gorm:"column:settings;type:text" json:"settings"`
	Profile       *Profile       `gorm:"foreignKey:UserID" json:"profile,omitempty"`
	CreatedAt     time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// IsTrashed reports whether the row is soft-deleted.
func (u *User) IsTrashed() bool {
	return u.DeletedAt.Valid
}

func (u *User) UsernameOrEmpty() string {
	if u.Username == nil {
		return ""
	}
	return *u.Username
}

func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}
