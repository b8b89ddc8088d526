package mail

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jmlee-dev/cafekiosk-backend/pkg/db/models"
	pkgerrors "github.com/jmlee-dev/cafekiosk-backend/pkg/errors"
)

// Service sends mail and records every successful delivery.
type Service interface {
	SendMail(ctx context.Context, fromEmail, toEmail, subject, content string) error
}

type service struct {
	client SendClient
	repo   *Repository
}

// NewService builds the mail service.
func NewService(client SendClient, repo *Repository) (Service, error) {
	if client == nil {
		return nil, fmt.Errorf("mail client required")
	}
	if repo == nil {
		return nil, fmt.Errorf("mail history repository required")
	}
	return &service{client: client, repo: repo}, nil
}

func (s *service) SendMail(ctx context.Context, fromEmail, toEmail, subject, content string) error {
	if toEmail == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "mail recipient required")
	}

	if err := s.client.Send(ctx, fromEmail, toEmail, subject, content); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "send mail")
	}

	history := &models.MailSendHistory{
		ID:        uuid.New(),
		FromEmail: fromEmail,
		ToEmail:   toEmail,
		Subject:   subject,
		Content:   content,
	}
	if err := s.repo.Create(ctx, history); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "record mail history")
	}
	return nil
}
