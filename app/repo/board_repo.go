package repo

import (
	"errors"

	"boardhub/app/models"

	"gorm.io/gorm"
)

type BoardRepository struct{ db *gorm.DB }

func NewBoardRepository(db *gorm.DB) *BoardRepository { return &BoardRepository{db: db} }

func (r *BoardRepository) Create(b *models.Board) error { return r.db.Create(b).Error }

// FindByID returns (nil, nil) when the board does not exist so the policy
// layer can treat absence as its own outcome.
func (r *BoardRepository) FindByID(id uint) (*models.Board, error) {
	var b models.Board
	if err := r.db.First(&b, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (r *BoardRepository) Save(b *models.Board) error { return r.db.Save(b).Error }

// Delete removes the board and its memberships, bans and messages in one
// transaction.
func (r *BoardRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("board_id = ?", id).Delete(&models.Membership{}).Error; err != nil {
			return err
		}
		if err := tx.Where("board_id = ?", id).Delete(&models.Ban{}).Error; err != nil {
			return err
		}
		if err := tx.Where("board_id = ?", id).Delete(&models.Message{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Board{}, id).Error
	})
}

func (r *BoardRepository) ListActive() ([]models.Board, error) {
	var boards []models.Board
	return boards, r.db.Where("status = ?", models.StatusActive).Order("id DESC").Find(&boards).Error
}

// ListAccessible returns active boards the user could see: public ones,
// private ones they belong to, and boards they administer. Ban filtering is
// the caller's job (the policy decides per board).
func (r *BoardRepository) ListAccessible(userID uint) ([]models.Board, error) {
	sub := r.db.Model(&models.Membership{}).Select("board_id").Where("user_id = ?", userID)
	var boards []models.Board
	err := r.db.
		Where("status = ?", models.StatusActive).
		Where(r.db.Where("visibility = ?", models.VisibilityPublic).
			Or("admin_id = ?", userID).
			Or("id IN (?)", sub)).
		Order("id DESC").
		Find(&boards).Error
	return boards, err
}

func (r *BoardRepository) CountOwned(userID uint) (int64, error) {
	var count int64
	return count, r.db.Model(&models.Board{}).Where("admin_id = ?", userID).Count(&count).Error
}

func (r *BoardRepository) ListOwned(userID uint) ([]models.Board, error) {
	var boards []models.Board
	return boards, r.db.Where("admin_id = ?", userID).Order("id DESC").Find(&boards).Error
}
