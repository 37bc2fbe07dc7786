package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"sales/internal/core/application/usecases/queries"
	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// PaymentDisparitiesTopic is the topic the disparity report is published on.
const PaymentDisparitiesTopic = "order_sale_payment_disparities"

// PaymentDisparitiesEvent summarises one run of the disparity report.
type PaymentDisparitiesEvent struct {
	EventID      string  `json:"event_id"`
	Count        int     `json:"count"`
	OrderSaleIDs []int64 `json:"order_sale_ids"`
}

// PaymentDisparitiesQueryHandler runs the disparity report.
type PaymentDisparitiesQueryHandler interface {
	Handle(
		ctx context.Context,
		query queries.GetSalesWithPaymentDisparitiesQuery,
	) (*queries.GetSalesWithPaymentDisparitiesQueryResponse, error)
}

// PaymentDisparityJob periodically looks for sales whose transfer receipts do not
// add up to the sale total and announces them to the payments service.
type PaymentDisparityJob struct {
	handler   PaymentDisparitiesQueryHandler
	publisher ports.EventPublisher
	schedule  string
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewPaymentDisparityJob creates the job. schedule is a cron expression with seconds.
func NewPaymentDisparityJob(
	handler PaymentDisparitiesQueryHandler,
	publisher ports.EventPublisher,
	schedule string,
	logger *slog.Logger,
) *PaymentDisparityJob {
	return &PaymentDisparityJob{
		handler:   handler,
		publisher: publisher,
		schedule:  schedule,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "payment_disparity_job"),
	}
}

// Start schedules the job. It fails for invalid schedules.
func (j *PaymentDisparityJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Payment disparity job failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Payment disparity job started", "schedule", j.schedule)
	return nil
}

// Run executes one pass: it reads the report, logs its size and publishes it
// when at least one sale is off.
func (j *PaymentDisparityJob) Run(ctx context.Context) error {
	report, err := j.handler.Handle(ctx, queries.NewGetSalesWithPaymentDisparitiesQuery())
	if err != nil {
		return err
	}

	j.logger.InfoContext(ctx, "Payment disparities found", "count", len(report.Sales))
	if len(report.Sales) == 0 {
		return nil
	}

	event := PaymentDisparitiesEvent{
		EventID:      kernel.NewUUID().String(),
		Count:        len(report.Sales),
		OrderSaleIDs: make([]int64, 0, len(report.Sales)),
	}
	for _, s := range report.Sales {
		event.OrderSaleIDs = append(event.OrderSaleIDs, s.OrderSaleID)
	}

	if err = j.publisher.Publish(ctx, PaymentDisparitiesTopic, event); err != nil {
		return fmt.Errorf("publish payment disparities: %w", err)
	}
	return nil
}

// Stop waits for a running pass to finish and stops the schedule.
func (j *PaymentDisparityJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Payment disparity job stopped")
}
