package service

import (
	"errors"
	"testing"

	"github.com/M-Ibrahim-Raza/Expensilo-Backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriptions_AddAndList(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "Alice", "alice@example.com")
	subs := NewSubscriptions(db)

	link, err := subs.Add(user.ID, "Food")
	require.NoError(t, err)
	assert.Equal(t, user.ID, link.UserID)

	categories, err := subs.List(user.ID)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Food", categories[0].Name)
}

func TestSubscriptions_AddDuplicateConflict(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "Alice", "alice@example.com")
	subs := NewSubscriptions(db)

	_, err := subs.Add(user.ID, "Food")
	require.NoError(t, err)

	_, err = subs.Add(user.ID, "Food")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConflict))
	assert.EqualValues(t, 1, count(t, db, &models.UserCategory{}, ""))
}

func TestSubscriptions_DeleteCollectsOrphanCategory(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "Alice", "alice@example.com")
	subs := NewSubscriptions(db)

	_, err := subs.Add(user.ID, "Fleeting")
	require.NoError(t, err)

	require.NoError(t, subs.Delete(user.ID, "Fleeting"))
	assert.EqualValues(t, 0, count(t, db, &models.UserCategory{}, ""))
	assert.EqualValues(t, 0, count(t, db, &models.Category{}, ""))
}

func TestSubscriptions_DeleteKeepsCategoryWithOtherLink(t *testing.T) {
	db := newTestDB(t)
	userA := newTestUser(t, db, "Alice", "alice@example.com")
	userB := newTestUser(t, db, "Bob", "bob@example.com")
	subs := NewSubscriptions(db)

	_, err := subs.Add(userA.ID, "Shared")
	require.NoError(t, err)
	_, err = subs.Add(userB.ID, "Shared")
	require.NoError(t, err)

	require.NoError(t, subs.Delete(userA.ID, "Shared"))
	assert.EqualValues(t, 1, count(t, db, &models.Category{}, ""))
}

func TestSubscriptions_DeleteKeepsCategoryReferencedByTransaction(t *testing.T) {
	db := newTestDB(t)
	userA := newTestUser(t, db, "Alice", "alice@example.com")
	userB := newTestUser(t, db, "Bob", "bob@example.com")
	ledger := NewLedger(db)
	subs := NewSubscriptions(db)

	// Bob's entry holds a transaction referencing the category
	_, err := ledger.Add(userB.ID, AddEntryParams{
		Amount:   dec("20.00"),
		Type:     models.TypeExpense,
		Title:    "Dinner",
		Category: strptr("Food"),
	})
	require.NoError(t, err)

	_, err = subs.Add(userA.ID, "Food")
	require.NoError(t, err)

	require.NoError(t, subs.Delete(userA.ID, "Food"))
	// Bob's link and the transaction reference both keep the row
	assert.EqualValues(t, 1, count(t, db, &models.Category{}, ""))
}

func TestSubscriptions_DeleteNotLinked(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "Alice", "alice@example.com")
	subs := NewSubscriptions(db)

	err := subs.Delete(user.ID, "Nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}
