package main

import (
	"log/slog"
	"os"

	"logistic/cmd"
	"logistic/internal/cli"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	root, err := cmd.NewCompositionRoot(configs, logger)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if err := cli.NewRootCommand(&root).Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

func getConfigs() cmd.Config {
	// A missing .env file is fine when the environment is set by the host.
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:           os.Getenv("HTTP_PORT"),
		TenantDSNs:         os.Getenv("TENANT_DSNS"),
		CronSchedule:       os.Getenv("CRON_SCHEDULE"),
		CronTarget:         os.Getenv("CRON_TARGET"),
		BatchLimit:         os.Getenv("BATCH_LIMIT"),
		DefaultPaymentDays: os.Getenv("DEFAULT_PAYMENT_DAYS"),
		CommitStrategy:     os.Getenv("COMMIT_STRATEGY"),
	}
}
