package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/sbkuehn/azure-cost-export/internal/azure"
	"github.com/sbkuehn/azure-cost-export/internal/config"
	"github.com/sbkuehn/azure-cost-export/internal/costexport"
	"github.com/sbkuehn/azure-cost-export/internal/log"
)

const (
	exitCodeOK = iota
	exitCodeConfigError
	exitCodeLoggerError
	exitCodeRunError
)

func main() {
	cfg, err := config.New()
	if err != nil {
		fmt.Println("failed to create config")
		os.Exit(exitCodeConfigError)
	}

	flag.StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "which log level to output")
	flag.StringVar(&cfg.Export.Name, "export-name", cfg.Export.Name, "name of the cost export")
	flag.Parse()

	if cfg.Azure.SubscriptionID == "" {
		fmt.Println("missing required environment variables: AZURE_SUBSCRIPTION_ID")
		os.Exit(exitCodeConfigError)
	}

	logger, err := log.New(cfg.Log.Format, cfg.Log.Level)
	if err != nil {
		fmt.Println("unable to create logger")
		os.Exit(exitCodeLoggerError)
	}

	if err := run(cfg, logger); err != nil {
		logger.WithError(err).Error("error in run()")
		os.Exit(exitCodeRunError)
	}

	os.Exit(exitCodeOK)
}

func run(cfg *config.Config, logger *logrus.Logger) error {
	ctx := context.Background()

	session, err := azure.NewSession(cfg.Azure.SubscriptionID, logger)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	exportClient, err := costexport.New(costexport.SubscriptionScope(cfg.Azure.SubscriptionID), session.Credential(), nil)
	if err != nil {
		return err
	}

	runs, err := exportClient.RunHistory(ctx, cfg.Export.Name)
	if err != nil {
		return fmt.Errorf("failed to fetch run history for export %s: %w", cfg.Export.Name, err)
	}

	logger.WithFields(logrus.Fields{
		"export": cfg.Export.Name,
		"runs":   len(runs),
	}).Info("fetched export run history")

	for _, r := range runs {
		fields := logrus.Fields{
			"status": r.Properties.Status,
			"type":   r.Properties.ExecutionType,
		}
		if r.Properties.SubmittedTime != nil {
			fields["submitted"] = r.Properties.SubmittedTime
		}
		if r.Properties.FileName != "" {
			fields["file"] = r.Properties.FileName
		}
		logger.WithFields(fields).Info("export run")
	}

	return nil
}
