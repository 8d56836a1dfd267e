package repo

import (
	"errors"

	"boardhub/app/models"

	"gorm.io/gorm"
)

type AccountRepository struct{ db *gorm.DB }

func NewAccountRepository(db *gorm.DB) *AccountRepository { return &AccountRepository{db: db} }

func (r *AccountRepository) CountByEmail(email string) (int64, error) {
	var count int64
	return count, r.db.Model(&models.Account{}).Where("email = ?", email).Count(&count).Error
}

// FindByEmail expects a normalized (lowercased, trimmed) address; returns
// (nil, nil) when absent.
func (r *AccountRepository) FindByEmail(email string) (*models.Account, error) {
	var a models.Account
	if err := r.db.Preload("User").Where("email = ?", email).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *AccountRepository) FindByID(userID uint) (*models.Account, error) {
	var a models.Account
	if err := r.db.Preload("User").Where("user_id = ?", userID).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

// CreateWithProfile creates the profile and the account in one transaction:
// either both rows exist afterwards or neither does.
func (r *AccountRepository) CreateWithProfile(profile *models.User, account *models.Account) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(profile).Error; err != nil {
			return err
		}
		account.UserID = profile.ID
		account.User = *profile
		return tx.Omit("User").Create(account).Error
	})
}

func (r *AccountRepository) Save(a *models.Account) error { return r.db.Omit("User").Save(a).Error }

func (r *AccountRepository) SaveProfile(u *models.User) error { return r.db.Save(u).Error }

func (r *AccountRepository) ListAll() ([]models.Account, error) {
	var accounts []models.Account
	return accounts, r.db.Preload("User").Order("user_id ASC").Find(&accounts).Error
}
