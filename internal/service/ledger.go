package service

import (
	"errors"
	"time"

	"github.com/M-Ibrahim-Raza/Expensilo-Backend/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Ledger keeps per-user ledger entries consistent with the shared
// Category and Transaction label tables: get-or-create de-duplication on
// the way in, orphan cleanup on the way out. Every operation runs inside
// one storage transaction, so concurrent readers never observe partial
// state and any failure rolls the whole unit back.
type Ledger struct {
	db *gorm.DB
}

func NewLedger(db *gorm.DB) *Ledger {
	return &Ledger{db: db}
}

// EntryView is a ledger entry joined with its transaction label and
// category name. ID is the transaction id, which together with the user
// identifies the entry.
type EntryView struct {
	ID          uint            `json:"id"`
	UserID      uint            `json:"user_id"`
	Amount      decimal.Decimal `json:"amount"`
	Details     *string         `json:"details"`
	Attachments []string        `json:"attachments"`
	Category    *string         `json:"category"`
	Type        string          `json:"type"`
	Title       string          `json:"title"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// AddEntryParams carries a new entry. Category and CreatedAt are
// optional; a nil category leaves the transaction label uncategorized.
type AddEntryParams struct {
	Amount      decimal.Decimal
	Details     *string
	Attachments []string
	Type        string
	Title       string
	Category    *string
	CreatedAt   *time.Time
}

// UpdateEntryParams is a partial update: nil fields are left untouched.
// Category, Type and Title act on the shared transaction row and are
// therefore visible to every user whose entry shares the label.
type UpdateEntryParams struct {
	Amount      *decimal.Decimal
	Details     *string
	Attachments *[]string
	Category    *string
	Type        *string
	Title       *string
}

// ensureSubscription creates the (user, category) link if missing.
// Logging an entry under a category subscribes the user to it.
func ensureSubscription(tx *gorm.DB, userID, categoryID uint) error {
	var count int64
	if err := tx.Model(&models.UserCategory{}).
		Where("user_id = ? AND category_id = ?", userID, categoryID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	link := models.UserCategory{UserID: userID, CategoryID: categoryID}
	if err := tx.Create(&link).Error; err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
		return err
	}
	return nil
}

func loadEntryView(tx *gorm.DB, userID, transactionID uint) (*EntryView, error) {
	var entry models.UserTransaction
	if err := tx.Where("user_id = ? AND transaction_id = ?", userID, transactionID).
		First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("Transaction not found for user with id %d", userID)
		}
		return nil, err
	}
	return entryView(tx, &entry)
}

func entryView(tx *gorm.DB, entry *models.UserTransaction) (*EntryView, error) {
	var txn models.Transaction
	if err := tx.First(&txn, entry.TransactionID).Error; err != nil {
		return nil, err
	}

	var categoryName *string
	if txn.CategoryID != nil {
		var category models.Category
		if err := tx.First(&category, *txn.CategoryID).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
		} else {
			categoryName = &category.Name
		}
	}

	return &EntryView{
		ID:          entry.TransactionID,
		UserID:      entry.UserID,
		Amount:      entry.Amount,
		Details:     entry.Details,
		Attachments: entry.Attachments,
		Category:    categoryName,
		Type:        txn.Type,
		Title:       txn.Title,
		CreatedAt:   entry.CreatedAt,
		UpdatedAt:   entry.UpdatedAt,
	}, nil
}

// Add creates a ledger entry, resolving the category and transaction
// labels first so the entry never references a row that does not exist:
// category -> subscription link -> transaction label -> entry, all in
// one transaction.
func (l *Ledger) Add(userID uint, p AddEntryParams) (*EntryView, error) {
	var view *EntryView
	err := l.db.Transaction(func(tx *gorm.DB) error {
		if _, err := getUser(tx, userID); err != nil {
			return err
		}

		var categoryID *uint
		if p.Category != nil {
			id, err := GetOrCreateCategory(tx, *p.Category)
			if err != nil {
				return err
			}
			categoryID = &id
			if err := ensureSubscription(tx, userID, id); err != nil {
				return err
			}
		}

		transactionID, err := GetOrCreateTransaction(tx, p.Type, p.Title, categoryID)
		if err != nil {
			return err
		}

		entry := models.UserTransaction{
			UserID:        userID,
			TransactionID: transactionID,
			Amount:        p.Amount,
			Details:       p.Details,
			Attachments:   p.Attachments,
		}
		if p.CreatedAt != nil {
			entry.CreatedAt = *p.CreatedAt
		}
		if err := tx.Create(&entry).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return conflictf("Duplicate entry or integrity error")
			}
			return err
		}

		view, err = entryView(tx, &entry)
		return err
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// ReadAll returns every entry of the user, joined with label fields.
func (l *Ledger) ReadAll(userID uint) ([]EntryView, error) {
	var views []EntryView
	err := l.db.Transaction(func(tx *gorm.DB) error {
		if _, err := getUser(tx, userID); err != nil {
			return err
		}

		var entries []models.UserTransaction
		if err := tx.Where("user_id = ?", userID).
			Order("created_at, transaction_id").
			Find(&entries).Error; err != nil {
			return err
		}

		views = make([]EntryView, 0, len(entries))
		for i := range entries {
			v, err := entryView(tx, &entries[i])
			if err != nil {
				return err
			}
			views = append(views, *v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

// Update applies the present fields of p to the user's entry. Amount,
// details and attachments touch only this entry; category, type and
// title mutate the shared transaction row in place, which also changes
// what other users sharing that label see. That mirrors the stored
// data model and is covered by tests rather than hidden.
func (l *Ledger) Update(userID, entryID uint, p UpdateEntryParams) (*EntryView, error) {
	var view *EntryView
	err := l.db.Transaction(func(tx *gorm.DB) error {
		if _, err := getUser(tx, userID); err != nil {
			return err
		}

		var entry models.UserTransaction
		if err := tx.Where("user_id = ? AND transaction_id = ?", userID, entryID).
			First(&entry).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFoundf("Transaction not found for user with id %d", userID)
			}
			return err
		}

		entryUpdates := map[string]any{}
		if p.Amount != nil {
			entryUpdates["amount"] = *p.Amount
		}
		if p.Details != nil {
			entryUpdates["details"] = *p.Details
		}
		if p.Attachments != nil {
			entry.Attachments = *p.Attachments
			if err := tx.Model(&entry).Update("attachments", entry.Attachments).Error; err != nil {
				return err
			}
		}
		if len(entryUpdates) > 0 {
			if err := tx.Model(&entry).Updates(entryUpdates).Error; err != nil {
				return err
			}
		}

		txnUpdates := map[string]any{}
		if p.Category != nil {
			categoryID, err := GetOrCreateCategory(tx, *p.Category)
			if err != nil {
				return err
			}
			if err := ensureSubscription(tx, userID, categoryID); err != nil {
				return err
			}
			txnUpdates["category_id"] = categoryID
		}
		if p.Type != nil {
			txnUpdates["type"] = *p.Type
		}
		if p.Title != nil {
			txnUpdates["title"] = *p.Title
		}
		if len(txnUpdates) > 0 {
			if err := tx.Model(&models.Transaction{}).
				Where("id = ?", entry.TransactionID).
				Updates(txnUpdates).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return conflictf("Duplicate entry or integrity error")
				}
				return err
			}
		}

		var err error
		view, err = loadEntryView(tx, userID, entry.TransactionID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// Delete removes the user's entry and garbage collects the transaction
// label (and transitively its category) when the last reference is gone.
// The joined view captured before deletion is the result payload.
func (l *Ledger) Delete(userID, entryID uint) (*EntryView, error) {
	var view *EntryView
	err := l.db.Transaction(func(tx *gorm.DB) error {
		if _, err := getUser(tx, userID); err != nil {
			return err
		}

		var entry models.UserTransaction
		if err := tx.Where("user_id = ? AND transaction_id = ?", userID, entryID).
			First(&entry).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFoundf("Transaction not found for user with id %d", userID)
			}
			return err
		}

		var txn models.Transaction
		if err := tx.First(&txn, entry.TransactionID).Error; err != nil {
			return err
		}

		var err error
		view, err = entryView(tx, &entry)
		if err != nil {
			return err
		}

		if err := tx.Where("user_id = ? AND transaction_id = ?", userID, entryID).
			Delete(&models.UserTransaction{}).Error; err != nil {
			return err
		}

		return DeleteTransactionIfOrphan(tx, &txn)
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}
