package service

import (
	"OptiTools/internal/model"
	"OptiTools/internal/repo"
	"OptiTools/internal/sms"
	"context"

	"github.com/google/uuid"
)

// segmentLen — длина одного SMS-сегмента в символах.
const segmentLen = 160

// BulkService принимает пакеты сообщений и сохраняет их.
type BulkService struct {
	repo repo.MessageRepository
}

func NewBulkService(r repo.MessageRepository) *BulkService {
	return &BulkService{repo: r}
}

// BulkResult — ответ на пакет, по форме близкий к ответу провайдера.
type BulkResult struct {
	EventID  string `json:"eventId"`
	Messages int    `json:"messages"`
	Parts    int    `json:"parts"`
	Sample   string `json:"sample,omitempty"`
}

// Accept сохраняет пакет под новым eventId.
func (s *BulkService) Accept(ctx context.Context, batch sms.Batch) (BulkResult, error) {
	eventID := uuid.NewString()
	msgs := make([]model.SentMessage, 0, len(batch.Messages))
	parts := 0
	for _, m := range batch.Messages {
		msgs = append(msgs, model.SentMessage{
			EventID:     eventID,
			Content:     m.Content,
			Destination: m.Destination,
			CustomerID:  m.CustomerID,
		})
		parts += segments(m.Content)
	}
	if err := s.repo.SaveBatch(ctx, msgs); err != nil {
		return BulkResult{}, err
	}
	res := BulkResult{EventID: eventID, Messages: len(msgs), Parts: parts}
	if len(batch.Messages) > 0 {
		res.Sample = batch.Messages[0].Content
	}
	return res, nil
}

// Recent возвращает последние принятые сообщения.
func (s *BulkService) Recent(ctx context.Context, limit int) ([]model.SentMessage, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.repo.ListRecent(ctx, limit)
}

func segments(content string) int {
	n := len([]rune(content))
	if n == 0 {
		return 1
	}
	return (n + segmentLen - 1) / segmentLen
}
