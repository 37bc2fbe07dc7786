// Package jobs provides scheduled background tasks for the sales service.
//
// Jobs are cron based (github.com/robfig/cron/v3, expressions with seconds).
//
// # Available Jobs
//
// PaymentDisparityJob runs the payment disparity report and publishes the ids of
// the sales whose active transfer receipts differ from the sale total on the
// order_sale_payment_disparities topic. The default schedule is "0 0 * * * *",
// at the start of every hour.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(disparitiesHandler, publisher, "0 0 * * * *", logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed pass is logged and retried on the next tick. Invalid schedules fail StartAll.
package jobs
