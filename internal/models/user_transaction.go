package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserTransaction is a user's ledger entry: the join between a user and
// a shared Transaction label, carrying the per-occurrence data. The
// composite key means a user holds at most one entry per label.
type UserTransaction struct {
	UserID        uint            `gorm:"primaryKey;autoIncrement:false"`
	TransactionID uint            `gorm:"primaryKey;autoIncrement:false"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Details       *string         `gorm:"size:1024"`
	Attachments   []string        `gorm:"serializer:json"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	User        User        `gorm:"constraint:OnDelete:CASCADE"`
	Transaction Transaction `gorm:"constraint:OnDelete:CASCADE"`
}
