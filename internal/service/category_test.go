package service

import (
	"errors"
	"testing"

	"github.com/M-Ibrahim-Raza/Expensilo-Backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestGetOrCreateCategory_Dedup(t *testing.T) {
	db := newTestDB(t)

	id1, err := GetOrCreateCategory(db, "Food")
	require.NoError(t, err)
	id2, err := GetOrCreateCategory(db, "Food")
	require.NoError(t, err)

	assert.Equal(t, id1, id2)
	assert.EqualValues(t, 1, count(t, db, &models.Category{}, ""))
}

func TestGetOrCreateCategory_DuplicateInsertIsConstraintError(t *testing.T) {
	db := newTestDB(t)

	_, err := GetOrCreateCategory(db, "Food")
	require.NoError(t, err)

	// a raw insert racing past the lookup hits the unique index; the
	// registry resolves exactly this error by re-reading
	err = db.Create(&models.Category{Name: "Food"}).Error
	require.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))
}

func TestResolveCategoryID(t *testing.T) {
	db := newTestDB(t)

	id, err := GetOrCreateCategory(db, "Travel")
	require.NoError(t, err)

	resolved, err := ResolveCategoryID(db, "Travel")
	require.NoError(t, err)
	assert.Equal(t, id, resolved)

	_, err = ResolveCategoryID(db, "Nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestDeleteCategoryIfOrphan(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db, "Alice", "alice@example.com")

	id, err := GetOrCreateCategory(db, "Food")
	require.NoError(t, err)

	// a user link keeps the category alive
	require.NoError(t, db.Create(&models.UserCategory{UserID: user.ID, CategoryID: id}).Error)
	require.NoError(t, DeleteCategoryIfOrphan(db, id))
	assert.EqualValues(t, 1, count(t, db, &models.Category{}, ""))

	// a referencing transaction keeps it alive too
	require.NoError(t, db.Where("user_id = ?", user.ID).Delete(&models.UserCategory{}).Error)
	txnID, err := GetOrCreateTransaction(db, models.TypeExpense, "Dinner", &id)
	require.NoError(t, err)
	require.NoError(t, DeleteCategoryIfOrphan(db, id))
	assert.EqualValues(t, 1, count(t, db, &models.Category{}, ""))

	// with both gone the row is collected
	require.NoError(t, db.Delete(&models.Transaction{}, txnID).Error)
	require.NoError(t, DeleteCategoryIfOrphan(db, id))
	assert.EqualValues(t, 0, count(t, db, &models.Category{}, ""))
}

func TestListCategoryUsers(t *testing.T) {
	db := newTestDB(t)
	userA := newTestUser(t, db, "Alice", "alice@example.com")
	userB := newTestUser(t, db, "Bob", "bob@example.com")

	id, err := GetOrCreateCategory(db, "Shared")
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.UserCategory{UserID: userA.ID, CategoryID: id}).Error)
	require.NoError(t, db.Create(&models.UserCategory{UserID: userB.ID, CategoryID: id}).Error)

	users, err := ListCategoryUsers(db, "Shared")
	require.NoError(t, err)
	assert.Equal(t, []uint{userA.ID, userB.ID}, users)

	// unknown category yields an empty list, not an error
	users, err = ListCategoryUsers(db, "Unknown")
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestListCategories_Empty(t *testing.T) {
	db := newTestDB(t)

	_, err := ListCategories(db)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}
