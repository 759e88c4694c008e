package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Azure configuration
type Azure struct {
	// SubscriptionID is the subscription the export is scoped to
	SubscriptionID string `envconfig:"AZURE_SUBSCRIPTION_ID" default:""`

	// ResourceGroup is the resource group holding the storage account
	ResourceGroup string `envconfig:"AZURE_RESOURCE_GROUP" default:""`

	// StorageAccount is the storage account the export files land in
	StorageAccount string `envconfig:"STORAGE_ACCOUNT_NAME" default:""`
}

// Export configuration
type Export struct {
	// Name identifies the export within its scope
	Name string `envconfig:"EXPORT_NAME" default:"DailyCostExport"`

	// Container is the blob container the export writes to
	Container string `envconfig:"CONTAINER_NAME" default:""`

	// RootFolderPath is the folder prefix inside the container
	RootFolderPath string `envconfig:"ROOT_FOLDER_PATH" default:"costexports"`

	// TimeZone is the schedule time zone, in Windows time zone format
	TimeZone string `envconfig:"TIME_ZONE" default:"Central Standard Time"`

	// TriggerNow requests an immediate run after the upsert
	TriggerNow bool `envconfig:"TRIGGER_NOW" default:"false"`
}

// Log configuration
type Log struct {
	// Format customizes the log format. Can be "text" or "json".
	Format string `envconfig:"LOG_FORMAT" default:"text"`

	// Level is the log level used by the exporter tools
	Level string `envconfig:"LOG_LEVEL" default:"INFO"`
}

// Config is the configuration for the application
type Config struct {
	Azure  Azure
	Export Export
	Log    Log
}

func New() (*Config, error) {
	cfg := &Config{}

	err := envconfig.Process("", cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate reports the required variables that have no usable default.
func (c *Config) Validate() error {
	missing := []string{}
	if c.Azure.SubscriptionID == "" {
		missing = append(missing, "AZURE_SUBSCRIPTION_ID")
	}
	if c.Azure.ResourceGroup == "" {
		missing = append(missing, "AZURE_RESOURCE_GROUP")
	}
	if c.Azure.StorageAccount == "" {
		missing = append(missing, "STORAGE_ACCOUNT_NAME")
	}
	if c.Export.Container == "" {
		missing = append(missing, "CONTAINER_NAME")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}
