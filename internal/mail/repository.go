package mail

import (
	"context"

	"gorm.io/gorm"

	"github.com/jmlee-dev/cafekiosk-backend/pkg/db/models"
)

// Repository persists mail send histories.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to mail history operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a mail send history row.
func (r *Repository) Create(ctx context.Context, history *models.MailSendHistory) error {
	return r.db.WithContext(ctx).Create(history).Error
}

// CountByRecipient returns how many mails were recorded for the recipient.
func (r *Repository) CountByRecipient(ctx context.Context, toEmail string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&models.MailSendHistory{}).
		Where("to_email = ?", toEmail).
		Count(&n).Error
	return n, err
}
