package repo

import (
	"errors"

	"boardhub/app/models"

	"gorm.io/gorm"
)

type BanRepository struct{ db *gorm.DB }

func NewBanRepository(db *gorm.DB) *BanRepository { return &BanRepository{db: db} }

func (r *BanRepository) Find(boardID, userID uint) (*models.Ban, error) {
	var b models.Ban
	if err := r.db.Where("board_id = ? AND user_id = ?", boardID, userID).First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

// BanMember inserts the ban and removes any membership atomically. A banned
// user must never remain a listed member, so both writes commit or neither.
func (r *BanRepository) BanMember(ban *models.Ban) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(ban).Error; err != nil {
			return err
		}
		return tx.Where("board_id = ? AND user_id = ?", ban.BoardID, ban.UserID).
			Delete(&models.Membership{}).Error
	})
}

func (r *BanRepository) Delete(boardID, userID uint) error {
	return r.db.Where("board_id = ? AND user_id = ?", boardID, userID).Delete(&models.Ban{}).Error
}
