package costexport

import (
	"time"
)

// Wire types for the Cost Management Exports API, api-version 2023-03-01.
// Kept by hand because the schedule time zone is not part of the generated
// SDK model.

type Export struct {
	ID         string     `json:"id,omitempty"`
	Name       string     `json:"name,omitempty"`
	Type       string     `json:"type,omitempty"`
	Properties Properties `json:"properties"`
}

type Properties struct {
	DeliveryInfo DeliveryInfo `json:"deliveryInfo"`
	Format       string       `json:"format"`
	Schedule     Schedule     `json:"schedule"`
	Timeframe    string       `json:"timeframe"`
	DataSet      DataSet      `json:"dataSet"`
}

type DeliveryInfo struct {
	Destination Destination `json:"destination"`
}

type Destination struct {
	ResourceID     string `json:"resourceId"`
	Container      string `json:"container"`
	RootFolderPath string `json:"rootFolderPath"`
}

type Schedule struct {
	Status           string           `json:"status"`
	Recurrence       string           `json:"recurrence"`
	RecurrencePeriod RecurrencePeriod `json:"recurrencePeriod"`
	TimeZone         string           `json:"timeZone"`
}

type RecurrencePeriod struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

type DataSet struct {
	Granularity   string               `json:"granularity"`
	Configuration DataSetConfiguration `json:"configuration"`
}

type DataSetConfiguration struct {
	Columns []string `json:"columns"`
}

// ExportRun is one entry of an export's run history.
type ExportRun struct {
	ID         string        `json:"id,omitempty"`
	Name       string        `json:"name,omitempty"`
	Properties RunProperties `json:"properties"`
}

type RunProperties struct {
	ExecutionType       string     `json:"executionType,omitempty"`
	Status              string     `json:"status,omitempty"`
	SubmittedBy         string     `json:"submittedBy,omitempty"`
	SubmittedTime       *time.Time `json:"submittedTime,omitempty"`
	ProcessingStartTime *time.Time `json:"processingStartTime,omitempty"`
	ProcessingEndTime   *time.Time `json:"processingEndTime,omitempty"`
	FileName            string     `json:"fileName,omitempty"`
}

type runListResult struct {
	Value []ExportRun `json:"value"`
}
