package dbmysql

import (
	"time"

	"gorm.io/gorm"
)

// Profile is the 1:1 display record of a User.
type Profile struct {
	ID         uint64         `gorm:"primaryKey;column:id;autoIncrement" json:"id"`
	UserID     uint64         `gorm:"column:user_id;uniqueIndex;not null" json:"user_id"`
	Name       *string        `gorm:"column:name;size:254" json:"name"`
	Picture    *string        `gorm:"column:picture;size:1024" json:"picture"`
	Gender     *string        `gorm:"column:gender;size:20" json:"gender"`
	JobTitle   *string        `gorm:"column:job_title;size:254" json:"job_title"`
	Address    *string        `gorm:"column:address;type:text" json:"address"`
	City       *string        `gorm:"column:city;size:100" json:"city"`
	State      *string        `gorm:"column:state;size:100" json:"state"`
	Country    *string        `gorm:"column:country;size:100" json:"country"`
	PostalCode *string        `gorm:"column:postal_code;size:10" json:"postal_code"`
	Company    *string        `gorm:"column:company;size:255" json:"company"`
	BirthDate  *Date          `gorm:"column:birth_date;type:date" json:"birth_date"`
	Biography  *string        `gorm:"column:biography;type:text" json:"biography"`
	CreatedAt  time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Profile) TableName() string {
	return "profiles"
}
