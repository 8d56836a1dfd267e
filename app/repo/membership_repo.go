package repo

import (
	"errors"

	"boardhub/app/models"

	"gorm.io/gorm"
)

type MembershipRepository struct{ db *gorm.DB }

func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

func (r *MembershipRepository) Find(boardID, userID uint) (*models.Membership, error) {
	var m models.Membership
	if err := r.db.Where("board_id = ? AND user_id = ?", boardID, userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *MembershipRepository) Create(m *models.Membership) error {
	return r.db.Omit("Board", "Account").Create(m).Error
}

func (r *MembershipRepository) Delete(boardID, userID uint) error {
	return r.db.Where("board_id = ? AND user_id = ?", boardID, userID).Delete(&models.Membership{}).Error
}

func (r *MembershipRepository) ListByBoard(boardID uint) ([]models.Membership, error) {
	var members []models.Membership
	err := r.db.Preload("Account.User").
		Where("board_id = ?", boardID).
		Order("joined_at ASC").
		Find(&members).Error
	return members, err
}

func (r *MembershipRepository) ListByUser(userID uint) ([]models.Membership, error) {
	var members []models.Membership
	err := r.db.Preload("Board").
		Where("user_id = ?", userID).
		Order("joined_at DESC").
		Find(&members).Error
	return members, err
}
