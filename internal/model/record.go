package model

import "time"

// Record is one stored record. Fields holds the wire-encoded field map
// as raw JSON; the server treats it as opaque apart from reference
// filtering in queries.
type Record struct {
	ID     string `gorm:"primaryKey;type:uuid"`
	UserID int64  `gorm:"not null;index"` // owning users.id

	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	Type   string `gorm:"not null;index"`
	Fields []byte `gorm:"not null"` // JSON object

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
