package model

import "time"

// User is the server-side account that owns records and assets.
type User struct {
	ID       int64  `gorm:"primaryKey"`
	Login    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"` // bcrypt hash
	FullName string
	Email    string

	CreatedAt time.Time `gorm:"autoCreateTime"`
}
