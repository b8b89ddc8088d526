package mail

import (
	"context"

	"github.com/jmlee-dev/cafekiosk-backend/pkg/logger"
)

// SendClient delivers a single mail message.
type SendClient interface {
	Send(ctx context.Context, fromEmail, toEmail, subject, content string) error
}

// LogClient writes outbound mail to the log instead of speaking SMTP. It is
// the default client until a real provider is wired in.
type LogClient struct {
	log *logger.Logger
}

// NewLogClient builds the logging mail client.
func NewLogClient(log *logger.Logger) *LogClient {
	return &LogClient{log: log}
}

func (c *LogClient) Send(ctx context.Context, fromEmail, toEmail, subject, content string) error {
	if c.log != nil {
		ctx = c.log.WithFields(ctx, map[string]any{
			"from":    fromEmail,
			"to":      toEmail,
			"subject": subject,
		})
		c.log.Info(ctx, "mail sent (log client)")
	}
	return nil
}
