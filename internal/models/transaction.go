package models

// Transaction type values.
const (
	TypeExpense = "EXPENSE"
	TypeIncome  = "INCOME"
)

// Transaction is a shared transaction label: one row per distinct
// (type, title, category) triple, referenced by any number of user
// entries. CategoryID is nullable because deleting a category sets it
// to NULL on referencing transactions.
type Transaction struct {
	ID         uint      `gorm:"primaryKey"`
	Type       string    `gorm:"size:16;not null;uniqueIndex:uq_type_title_category"`
	Title      string    `gorm:"size:255;not null;uniqueIndex:uq_type_title_category"`
	CategoryID *uint     `gorm:"uniqueIndex:uq_type_title_category"`
	Category   *Category `gorm:"constraint:OnDelete:SET NULL"`
}
