package repo

import (
	"OptiTools/internal/model"
	"context"

	"gorm.io/gorm"
)

// MessageRepository хранит сообщения, принятые заглушкой.
type MessageRepository interface {
	// SaveBatch сохраняет все сообщения одного запроса в одной транзакции.
	SaveBatch(ctx context.Context, msgs []model.SentMessage) error
	// ListRecent возвращает последние limit сообщений, новые первыми.
	ListRecent(ctx context.Context, limit int) ([]model.SentMessage, error)
}

type messageRepo struct {
	db *gorm.DB
}

// NewMessageRepository создаёт реализацию репозитория для SentMessage.
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepo{db: db}
}

// Migrate создаёт таблицу сообщений.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&model.SentMessage{})
}

func (r *messageRepo) SaveBatch(ctx context.Context, msgs []model.SentMessage) error {
	if len(msgs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&msgs).Error
}

func (r *messageRepo) ListRecent(ctx context.Context, limit int) ([]model.SentMessage, error) {
	var res []model.SentMessage
	err := r.db.WithContext(ctx).Order("id DESC").Limit(limit).Find(&res).Error
	return res, err
}
