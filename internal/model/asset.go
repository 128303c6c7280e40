package model

import "time"

// Asset is an uploaded binary file. The bytes live on disk under the
// server data directory; only the metadata is in the database.
type Asset struct {
	ID     string `gorm:"primaryKey;type:uuid"`
	UserID int64  `gorm:"not null;index"`

	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	Name string `gorm:"not null"`
	Size int64  `gorm:"not null"`
	Path string `gorm:"not null"` // absolute path of the stored file

	CreatedAt time.Time `gorm:"autoCreateTime"`
}
