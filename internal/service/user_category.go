package service

import (
	"github.com/M-Ibrahim-Raza/Expensilo-Backend/internal/models"

	"gorm.io/gorm"
)

// Subscriptions manages the per-user category links.
type Subscriptions struct {
	db *gorm.DB
}

func NewSubscriptions(db *gorm.DB) *Subscriptions {
	return &Subscriptions{db: db}
}

// List returns the categories the user is subscribed to.
func (s *Subscriptions) List(userID uint) ([]models.Category, error) {
	var categories []models.Category
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := getUser(tx, userID); err != nil {
			return err
		}
		return tx.Model(&models.Category{}).
			Joins("JOIN user_categories ON user_categories.category_id = categories.id").
			Where("user_categories.user_id = ?", userID).
			Order("categories.id").
			Find(&categories).Error
	})
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// Add subscribes the user to the named category, creating the category
// on first use. An existing link is a Conflict.
func (s *Subscriptions) Add(userID uint, categoryName string) (*models.UserCategory, error) {
	var link models.UserCategory
	err := s.db.Transaction(func(tx *gorm.DB) error {
		categoryID, err := GetOrCreateCategory(tx, categoryName)
		if err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&models.UserCategory{}).
			Where("user_id = ? AND category_id = ?", userID, categoryID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return conflictf("Category '%s' is already linked to this user.", categoryName)
		}

		link = models.UserCategory{UserID: userID, CategoryID: categoryID}
		return tx.Create(&link).Error
	})
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// Delete removes the user's link to the named category and garbage
// collects the category once neither a link nor a transaction label
// references it. The orphan check runs after the link delete so the
// reference counts reflect post-delete state.
func (s *Subscriptions) Delete(userID uint, categoryName string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := getUser(tx, userID); err != nil {
			return err
		}

		var link models.UserCategory
		if err := tx.Model(&models.UserCategory{}).
			Joins("JOIN categories ON categories.id = user_categories.category_id").
			Where("user_categories.user_id = ? AND categories.name = ?", userID, categoryName).
			First(&link).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return notFoundf("Category '%s' not linked to user with id %d", categoryName, userID)
			}
			return err
		}

		if err := tx.Where("user_id = ? AND category_id = ?", userID, link.CategoryID).
			Delete(&models.UserCategory{}).Error; err != nil {
			return err
		}

		return DeleteCategoryIfOrphan(tx, link.CategoryID)
	})
}
