package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/jmlee-dev/cafekiosk-backend/internal/mail"
	"github.com/jmlee-dev/cafekiosk-backend/internal/orders"
	"github.com/jmlee-dev/cafekiosk-backend/pkg/db/models"
	"github.com/jmlee-dev/cafekiosk-backend/pkg/enums"
)

type orderReader interface {
	FindAllByRegisteredAtBetweenAndStatus(ctx context.Context, start, end time.Time, status enums.OrderStatus) ([]models.Order, error)
}

// compile-time check: the orders repository satisfies the reader surface.
var _ orderReader = (*orders.Repository)(nil)

// OrderStatisticsJob mails the previous day's total sales of completed
// payments.
type OrderStatisticsJob struct {
	orders    orderReader
	mailer    mail.Service
	fromEmail string
	toEmail   string
	now       func() time.Time
}

// OrderStatisticsJobParams configure the statistics job.
type OrderStatisticsJobParams struct {
	Orders    orderReader
	Mailer    mail.Service
	FromEmail string
	ToEmail   string
	Now       func() time.Time
}

// NewOrderStatisticsJob builds the daily sales statistics job.
func NewOrderStatisticsJob(params OrderStatisticsJobParams) (*OrderStatisticsJob, error) {
	if params.Orders == nil {
		return nil, fmt.Errorf("order reader required")
	}
	if params.Mailer == nil {
		return nil, fmt.Errorf("mail service required")
	}
	if params.ToEmail == "" {
		return nil, fmt.Errorf("statistics recipient required")
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &OrderStatisticsJob{
		orders:    params.Orders,
		mailer:    params.Mailer,
		fromEmail: params.FromEmail,
		toEmail:   params.ToEmail,
		now:       now,
	}, nil
}

func (j *OrderStatisticsJob) Name() string {
	return "order-statistics"
}

// Run sums total_price of PAYMENT_COMPLETED orders registered yesterday and
// mails the summary.
func (j *OrderStatisticsJob) Run(ctx context.Context) error {
	today := j.now().UTC().Truncate(24 * time.Hour)
	start := today.AddDate(0, 0, -1)

	completed, err := j.orders.FindAllByRegisteredAtBetweenAndStatus(ctx, start, today, enums.OrderStatusPaymentCompleted)
	if err != nil {
		return fmt.Errorf("load completed orders: %w", err)
	}

	var total int64
	for i := range completed {
		total += completed[i].TotalPrice
	}

	subject := fmt.Sprintf("Order statistics for %s", start.Format("2006-01-02"))
	content := fmt.Sprintf("Total sales: %d", total)
	if err := j.mailer.SendMail(ctx, j.fromEmail, j.toEmail, subject, content); err != nil {
		return fmt.Errorf("send statistics mail: %w", err)
	}
	return nil
}
