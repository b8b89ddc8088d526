package models

import (
	"time"

	"github.com/google/uuid"
)

// MailSendHistory records every outbound mail for auditing.
type MailSendHistory struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	FromEmail string    `gorm:"column:from_email;not null"`
	ToEmail   string    `gorm:"column:to_email;not null"`
	Subject   string    `gorm:"column:subject;not null"`
	Content   string    `gorm:"column:content;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (MailSendHistory) TableName() string {
	return "mail_send_histories"
}
