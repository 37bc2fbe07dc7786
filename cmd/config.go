package cmd

import "time"

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	LogLevel   string

	// AdminRole lifts the delivered and in production restrictions.
	AdminRole string

	// PubSubProjectID selects the Pub/Sub project. Events are only logged when it is empty.
	PubSubProjectID string

	// DisparityJobSchedule is a cron expression with seconds.
	DisparityJobSchedule string

	CacheSize int
	CacheTTL  time.Duration
}
