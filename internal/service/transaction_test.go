package service

import (
	"testing"

	"github.com/M-Ibrahim-Raza/Expensilo-Backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreateTransaction_Dedup(t *testing.T) {
	db := newTestDB(t)

	catID, err := GetOrCreateCategory(db, "Housing")
	require.NoError(t, err)

	id1, err := GetOrCreateTransaction(db, models.TypeExpense, "Rent", &catID)
	require.NoError(t, err)
	id2, err := GetOrCreateTransaction(db, models.TypeExpense, "Rent", &catID)
	require.NoError(t, err)

	assert.Equal(t, id1, id2)
	assert.EqualValues(t, 1, count(t, db, &models.Transaction{}, ""))

	// the triple distinguishes on every component
	id3, err := GetOrCreateTransaction(db, models.TypeIncome, "Rent", &catID)
	require.NoError(t, err)
	assert.NotEqual(t, id1, id3)

	id4, err := GetOrCreateTransaction(db, models.TypeExpense, "Rent", nil)
	require.NoError(t, err)
	assert.NotEqual(t, id1, id4)
	assert.EqualValues(t, 3, count(t, db, &models.Transaction{}, ""))
}

func TestGetOrCreateTransaction_NullCategoryDedup(t *testing.T) {
	db := newTestDB(t)

	id1, err := GetOrCreateTransaction(db, models.TypeExpense, "Misc", nil)
	require.NoError(t, err)
	id2, err := GetOrCreateTransaction(db, models.TypeExpense, "Misc", nil)
	require.NoError(t, err)

	assert.Equal(t, id1, id2)
	assert.EqualValues(t, 1, count(t, db, &models.Transaction{}, ""))
}

func TestDeleteTransactionIfOrphan_CascadesToCategory(t *testing.T) {
	db := newTestDB(t)

	catID, err := GetOrCreateCategory(db, "Once")
	require.NoError(t, err)
	txnID, err := GetOrCreateTransaction(db, models.TypeExpense, "One-off", &catID)
	require.NoError(t, err)

	var txn models.Transaction
	require.NoError(t, db.First(&txn, txnID).Error)

	// no entry references the label, so it is collected together with
	// its now-unreferenced category
	require.NoError(t, DeleteTransactionIfOrphan(db, &txn))
	assert.EqualValues(t, 0, count(t, db, &models.Transaction{}, ""))
	assert.EqualValues(t, 0, count(t, db, &models.Category{}, ""))
}

func TestDeleteTransactionIfOrphan_KeepsReferenced(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "Alice", "alice@example.com")
	ledger := NewLedger(db)

	view, err := ledger.Add(user.ID, AddEntryParams{
		Amount: dec("10.00"),
		Type:   models.TypeExpense,
		Title:  "Lunch",
	})
	require.NoError(t, err)

	var txn models.Transaction
	require.NoError(t, db.First(&txn, view.ID).Error)

	require.NoError(t, DeleteTransactionIfOrphan(db, &txn))
	assert.EqualValues(t, 1, count(t, db, &models.Transaction{}, ""))
}
