package dbmysql

import (
	"time"

	"gorm.io/gorm"
)

type Category struct {
	ID              uint64         `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	Name            string         `gorm:"column:name;size:200;not null" json:"name"`
	Slug            string         `gorm:"column:slug;size:255;uniqueIndex;not null" json:"slug"`
	Description     *string        `gorm:"column:description;type:text" json:"description"`
	Type            string         `gorm:"column:type;size:50;not null" json:"type"`
	Icon            *string        `gorm:"column:icon;size:254" json:"icon"`
	Order           int            `gorm:"column:order;not null" json:"order"`
	BackgroundColor *string        `gorm:"column:background_color;size:20" json:"background_color"`
	ParentID        *uint64        `gorm:"column:parent_id;index" json:"parent_id"`
	Children        []Category     `gorm:"foreignKey:ParentID" json:"sub_categories,omitempty"`
	CreatedAt       time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Category) TableName() string {
	return "categories"
}
