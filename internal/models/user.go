package models

import "time"

// User represents an application user. PasswordHash is empty for users
// that only authenticate through Google OAuth.
type User struct {
	ID           uint           `gorm:"primaryKey"`
	Name         string         `gorm:"size:128;not null"`
	Email        string         `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash *string        `gorm:"size:255"`
	GoogleAuth   *string        `gorm:"size:512"`
	Preferences  map[string]any `gorm:"serializer:json"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
