package service

import (
	"errors"

	"github.com/M-Ibrahim-Raza/Expensilo-Backend/internal/models"

	"gorm.io/gorm"
)

func transactionTripleQuery(tx *gorm.DB, txnType, title string, categoryID *uint) *gorm.DB {
	q := tx.Where("type = ? AND title = ?", txnType, title)
	if categoryID == nil {
		return q.Where("category_id IS NULL")
	}
	return q.Where("category_id = ?", *categoryID)
}

// GetOrCreateTransaction resolves a (type, title, category) triple to a
// shared transaction label, inserting it on first use. Races on the
// composite unique index are resolved by re-reading, same as categories.
func GetOrCreateTransaction(tx *gorm.DB, txnType, title string, categoryID *uint) (uint, error) {
	var txn models.Transaction
	err := transactionTripleQuery(tx, txnType, title, categoryID).First(&txn).Error
	if err == nil {
		return txn.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	txn = models.Transaction{Type: txnType, Title: title, CategoryID: categoryID}
	if err := tx.Create(&txn).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			var existing models.Transaction
			if err := transactionTripleQuery(tx, txnType, title, categoryID).First(&existing).Error; err != nil {
				return 0, err
			}
			return existing.ID, nil
		}
		return 0, err
	}
	return txn.ID, nil
}

// DeleteTransactionIfOrphan removes the transaction label once no ledger
// entry references it, then orphan-checks its category in turn so no
// label row survives a delete with zero references.
func DeleteTransactionIfOrphan(tx *gorm.DB, txn *models.Transaction) error {
	var refs int64
	if err := tx.Model(&models.UserTransaction{}).
		Where("transaction_id = ?", txn.ID).
		Count(&refs).Error; err != nil {
		return err
	}
	if refs > 0 {
		return nil
	}

	if err := tx.Delete(&models.Transaction{}, txn.ID).Error; err != nil {
		return err
	}
	if txn.CategoryID != nil {
		return DeleteCategoryIfOrphan(tx, *txn.CategoryID)
	}
	return nil
}

// ListTransactions returns every transaction label.
func ListTransactions(tx *gorm.DB) ([]models.Transaction, error) {
	var txns []models.Transaction
	if err := tx.Order("id").Find(&txns).Error; err != nil {
		return nil, err
	}
	if len(txns) == 0 {
		return nil, notFoundf("No transactions found")
	}
	return txns, nil
}
