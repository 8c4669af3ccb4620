package dbmysql

import (
	"time"

	"gorm.io/gorm"
)

type Article struct {
	ID          uint64         `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	Title       string         `gorm:"column:title;size:250;not null" json:"title"`
	Slug        string         `gorm:"column:slug;size:255;uniqueIndex;not null" json:"slug"`
	Content     *string        `gorm:"column:content;type:text" json:"content"`
	Excerpt     *string        `gorm:"column:excerpt;type:text" json:"excerpt"`
	IsPublished bool           `gorm:"column:is_published;not null;default:false" json:"is_published"`
	TotalSeen   int64          `gorm:"column:total_seen;not null;default:0" json:"total_seen"`
	Type        *string        `gorm:"column:type;size:150;index" json:"type"`
	Order       int            `gorm:"column:order;not null;default:0" json:"order"`
	UserID      *uint64        `gorm:"column:user_id;index" json:"user_id"`
	CategoryID  *uint64        `gorm:"column:category_id;index" json:"category_id"`
	Category    *Category      `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Article) TableName() string {
	return "articles"
}
