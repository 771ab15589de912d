package model

import "time"

// SentMessage — сообщение, принятое заглушкой провайдера.
type SentMessage struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	EventID     string `gorm:"type:uuid;not null;index" json:"eventId"`
	Content     string `gorm:"not null" json:"content"`
	Destination string `gorm:"not null" json:"destination"`
	CustomerID  string `json:"customerId"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
