package models

import "time"

// User account. Token holds the current opaque session token; nil means
// logged out, and the unique index allows any number of NULLs.
type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Username       string    `gorm:"size:32;uniqueIndex;not null" json:"username"`
	Email          string    `gorm:"size:320;uniqueIndex;not null" json:"email"`
	HashedPassword string    `gorm:"size:516;not null" json:"-"`
	Token          *string   `gorm:"size:516;uniqueIndex" json:"-"`
	IsAdmin        bool      `gorm:"default:false" json:"-"`
	OnlineAt       time.Time `gorm:"autoUpdateTime" json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
