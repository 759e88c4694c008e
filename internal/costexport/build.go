package costexport

import (
	"time"
)

const (
	formatCSV            = "Csv"
	statusActive         = "Active"
	recurrenceDaily      = "Daily"
	timeframeMonthToDate = "MonthToDate"
	granularityDaily     = "Daily"

	// how long the recurrence schedule stays valid from creation
	recurrenceWindow = 365 * 24 * time.Hour
)

// Columns is the fixed column set every export is created with.
var Columns = []string{
	"Date",
	"ResourceId",
	"ResourceGroupName",
	"ServiceName",
	"Cost",
	"Currency",
}

// Params are the inputs the export definition is built from.
type Params struct {
	StorageResourceID string
	Container         string
	RootFolderPath    string
	TimeZone          string
}

// BuildExport maps the parameters onto the wire format: daily CSV export of
// month-to-date cost, scheduled from now for a year. Identical inputs and
// clock produce an identical definition, so re-submitting updates the
// existing export in place instead of creating a second one.
func BuildExport(p Params, now time.Time) Export {
	from := now.UTC().Truncate(time.Second)

	return Export{
		Properties: Properties{
			DeliveryInfo: DeliveryInfo{
				Destination: Destination{
					ResourceID:     p.StorageResourceID,
					Container:      p.Container,
					RootFolderPath: p.RootFolderPath,
				},
			},
			Format: formatCSV,
			Schedule: Schedule{
				Status:     statusActive,
				Recurrence: recurrenceDaily,
				RecurrencePeriod: RecurrencePeriod{
					From: from,
					To:   from.Add(recurrenceWindow),
				},
				TimeZone: p.TimeZone,
			},
			Timeframe: timeframeMonthToDate,
			DataSet: DataSet{
				Granularity:   granularityDaily,
				Configuration: DataSetConfiguration{
					Columns: Columns,
				},
			},
		},
	}
}
