package repo

import (
	"errors"

	"boardhub/app/models"

	"gorm.io/gorm"
)

type MessageRepository struct{ db *gorm.DB }

func NewMessageRepository(db *gorm.DB) *MessageRepository { return &MessageRepository{db: db} }

func (r *MessageRepository) Create(m *models.Message) error {
	return r.db.Omit("Author").Create(m).Error
}

func (r *MessageRepository) FindByID(id uint) (*models.Message, error) {
	var m models.Message
	if err := r.db.Preload("Author.User").First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

// ListByBoard returns the thread in chronological order; ties on timestamp
// break by insertion order.
func (r *MessageRepository) ListByBoard(boardID uint) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.Preload("Author.User").
		Where("board_id = ?", boardID).
		Order("created_at ASC").Order("id ASC").
		Find(&messages).Error
	return messages, err
}

func (r *MessageRepository) ListRecentByBoard(boardID uint, limit int) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.Preload("Author.User").
		Where("board_id = ?", boardID).
		Order("created_at DESC").Order("id DESC").
		Limit(limit).
		Find(&messages).Error
	return messages, err
}

func (r *MessageRepository) ListRecentByAuthor(userID uint, limit int) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.
		Where("author_id = ?", userID).
		Order("created_at DESC").Order("id DESC").
		Limit(limit).
		Find(&messages).Error
	return messages, err
}
