package service

import (
	"errors"

	"github.com/M-Ibrahim-Raza/Expensilo-Backend/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Users provides account CRUD and credential checks.
type Users struct {
	db         *gorm.DB
	bcryptCost int
}

func NewUsers(db *gorm.DB, bcryptCost int) *Users {
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Users{db: db, bcryptCost: bcryptCost}
}

// getUser fetches a user row or reports NotFound.
func getUser(tx *gorm.DB, userID uint) (*models.User, error) {
	var user models.User
	if err := tx.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("User with id %d not found", userID)
		}
		return nil, err
	}
	return &user, nil
}

// CreateUserParams carries signup fields. Password and GoogleAuth are
// both optional; at least the callers' schema requires one of them.
type CreateUserParams struct {
	Name        string
	Email       string
	Password    *string
	GoogleAuth  *string
	Preferences map[string]any
}

// UpdateUserParams is a partial update: nil fields are left untouched.
type UpdateUserParams struct {
	Name        *string
	Password    *string
	GoogleAuth  *string
	Preferences map[string]any
}

func (s *Users) Get(userID uint) (*models.User, error) {
	return getUser(s.db, userID)
}

// Create registers a new user, hashing the password when one is given.
// A taken email is a Conflict.
func (s *Users) Create(p CreateUserParams) (*models.User, error) {
	var user models.User
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("email = ?", p.Email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return conflictf("Email already exist")
		}

		user = models.User{
			Name:        p.Name,
			Email:       p.Email,
			GoogleAuth:  p.GoogleAuth,
			Preferences: p.Preferences,
		}
		if p.Password != nil && *p.Password != "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(*p.Password), s.bcryptCost)
			if err != nil {
				return err
			}
			h := string(hash)
			user.PasswordHash = &h
		}

		if err := tx.Create(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return conflictf("Email already exist")
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Update applies the fields present in p to the user. Absent fields keep
// their stored value.
func (s *Users) Update(userID uint, p UpdateUserParams) (*models.User, error) {
	var user *models.User
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		user, err = getUser(tx, userID)
		if err != nil {
			return err
		}

		updates := map[string]any{}
		if p.Name != nil {
			updates["name"] = *p.Name
		}
		if p.Password != nil && *p.Password != "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(*p.Password), s.bcryptCost)
			if err != nil {
				return err
			}
			updates["password_hash"] = string(hash)
		}
		if p.GoogleAuth != nil {
			updates["google_auth"] = *p.GoogleAuth
		}
		if p.Preferences != nil {
			user.Preferences = p.Preferences
			if err := tx.Model(user).Update("preferences", user.Preferences).Error; err != nil {
				return err
			}
		}
		if len(updates) > 0 {
			if err := tx.Model(user).Updates(updates).Error; err != nil {
				return err
			}
		}
		return tx.First(user, userID).Error
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes the user with its entries and subscriptions, then
// orphan-checks every label the user referenced so no category or
// transaction row is left without references.
func (s *Users) Delete(userID uint) (*models.User, error) {
	var user *models.User
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		user, err = getUser(tx, userID)
		if err != nil {
			return err
		}

		var entries []models.UserTransaction
		if err := tx.Where("user_id = ?", userID).Find(&entries).Error; err != nil {
			return err
		}
		var links []models.UserCategory
		if err := tx.Where("user_id = ?", userID).Find(&links).Error; err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", userID).Delete(&models.UserTransaction{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.UserCategory{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.User{}, userID).Error; err != nil {
			return err
		}

		for _, e := range entries {
			var txn models.Transaction
			if err := tx.First(&txn, e.TransactionID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					continue
				}
				return err
			}
			if err := DeleteTransactionIfOrphan(tx, &txn); err != nil {
				return err
			}
		}
		for _, l := range links {
			if err := DeleteCategoryIfOrphan(tx, l.CategoryID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate checks email and password and returns the matching user.
func (s *Users) Authenticate(email, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("Incorrect email")
		}
		return nil, err
	}
	if user.PasswordHash == nil ||
		bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password)) != nil {
		return nil, notFoundf("Incorrect password")
	}
	return &user, nil
}
