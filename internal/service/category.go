package service

import (
	"errors"

	"github.com/M-Ibrahim-Raza/Expensilo-Backend/internal/models"

	"gorm.io/gorm"
)

// GetOrCreateCategory resolves a category name to its id, inserting the
// row on first use. Concurrent callers with the same name race on the
// unique index; the loser observes gorm.ErrDuplicatedKey and re-reads the
// winner's row instead of failing.
func GetOrCreateCategory(tx *gorm.DB, name string) (uint, error) {
	var category models.Category
	err := tx.Where("name = ?", name).First(&category).Error
	if err == nil {
		return category.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	category = models.Category{Name: name}
	if err := tx.Create(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			var existing models.Category
			if err := tx.Where("name = ?", name).First(&existing).Error; err != nil {
				return 0, err
			}
			return existing.ID, nil
		}
		return 0, err
	}
	return category.ID, nil
}

// ResolveCategoryID looks up an existing category by name.
func ResolveCategoryID(tx *gorm.DB, name string) (uint, error) {
	var category models.Category
	if err := tx.Where("name = ?", name).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, notFoundf("Category %s not found", name)
		}
		return 0, err
	}
	return category.ID, nil
}

// DeleteCategoryIfOrphan removes the category row once nothing references
// it: no user subscription and no transaction label. Callers must have
// flushed the triggering delete first so the counts reflect post-delete
// state.
func DeleteCategoryIfOrphan(tx *gorm.DB, categoryID uint) error {
	var links int64
	if err := tx.Model(&models.UserCategory{}).
		Where("category_id = ?", categoryID).
		Count(&links).Error; err != nil {
		return err
	}
	if links > 0 {
		return nil
	}

	var refs int64
	if err := tx.Model(&models.Transaction{}).
		Where("category_id = ?", categoryID).
		Count(&refs).Error; err != nil {
		return err
	}
	if refs > 0 {
		return nil
	}

	return tx.Delete(&models.Category{}, categoryID).Error
}

// ListCategories returns every category.
func ListCategories(tx *gorm.DB) ([]models.Category, error) {
	var categories []models.Category
	if err := tx.Order("id").Find(&categories).Error; err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, notFoundf("No categories found")
	}
	return categories, nil
}

// ListCategoryUsers returns the ids of users subscribed to the named
// category. An unknown category yields an empty list, not an error.
func ListCategoryUsers(tx *gorm.DB, name string) ([]uint, error) {
	var category models.Category
	if err := tx.Where("name = ?", name).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []uint{}, nil
		}
		return nil, err
	}

	var userIDs []uint
	if err := tx.Model(&models.UserCategory{}).
		Where("category_id = ?", category.ID).
		Order("user_id").
		Pluck("user_id", &userIDs).Error; err != nil {
		return nil, err
	}
	return userIDs, nil
}
