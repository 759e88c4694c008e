package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sbkuehn/azure-cost-export/internal/azure"
	"github.com/sbkuehn/azure-cost-export/internal/config"
	"github.com/sbkuehn/azure-cost-export/internal/costexport"
	"github.com/sbkuehn/azure-cost-export/internal/log"
	"github.com/sbkuehn/azure-cost-export/internal/storage"
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
	flag.BoolVar(&cfg.Export.TriggerNow, "trigger-now", cfg.Export.TriggerNow, "trigger an export run after the upsert")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Println(err)
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

	logger.WithField("subscription", cfg.Azure.SubscriptionID).Info("select subscription")
	if err := session.SelectSubscription(ctx); err != nil {
		return err
	}

	storageClient, err := storage.New(cfg.Azure.SubscriptionID, cfg.Azure.ResourceGroup, cfg.Azure.StorageAccount, session.Credential(), nil, logger)
	if err != nil {
		return fmt.Errorf("failed to create storage client: %w", err)
	}

	logger.WithField("container", cfg.Export.Container).Info("ensure destination container exists")
	if err := storageClient.EnsureContainer(ctx, cfg.Export.Container); err != nil {
		return err
	}

	exportClient, err := costexport.New(costexport.SubscriptionScope(cfg.Azure.SubscriptionID), session.Credential(), nil)
	if err != nil {
		return err
	}

	export := costexport.BuildExport(costexport.Params{
		StorageResourceID: storageClient.AccountResourceID(),
		Container:         cfg.Export.Container,
		RootFolderPath:    cfg.Export.RootFolderPath,
		TimeZone:          cfg.Export.TimeZone,
	}, time.Now())

	logger.WithFields(logrus.Fields{
		"export":       cfg.Export.Name,
		"subscription": cfg.Azure.SubscriptionID,
	}).Info("creating or updating cost export")

	if _, err := exportClient.CreateOrUpdate(ctx, cfg.Export.Name, export); err != nil {
		return fmt.Errorf("failed to create or update export %s: %w", cfg.Export.Name, err)
	}
	logger.WithField("export", cfg.Export.Name).Info("export created or updated")

	// a failed trigger does not undo the upsert, so it is logged and ignored
	if cfg.Export.TriggerNow {
		if err := exportClient.Run(ctx, cfg.Export.Name); err != nil {
			logger.WithError(err).WithField("export", cfg.Export.Name).Error("failed to trigger export run")
		} else {
			logger.WithField("export", cfg.Export.Name).Info("triggered export run")
		}
	}

	logger.Info("process completed")
	return nil
}
