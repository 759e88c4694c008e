package costexport

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testParams() Params {
	return Params{
		StorageResourceID: "/subscriptions/sub-123/resourceGroups/rg-billing/providers/Microsoft.Storage/storageAccounts/costdata",
		Container:         "exports",
		RootFolderPath:    "costexports",
		TimeZone:          "Central Standard Time",
	}
}

func TestBuildExport(t *testing.T) {
	now := time.Date(2024, time.May, 1, 12, 30, 45, 987654321, time.UTC)
	export := BuildExport(testParams(), now)

	payload, err := json.Marshal(export)
	require.NoError(t, err)

	require.JSONEq(t, `{
		"properties": {
			"deliveryInfo": {
				"destination": {
					"resourceId": "/subscriptions/sub-123/resourceGroups/rg-billing/providers/Microsoft.Storage/storageAccounts/costdata",
					"container": "exports",
					"rootFolderPath": "costexports"
				}
			},
			"format": "Csv",
			"schedule": {
				"status": "Active",
				"recurrence": "Daily",
				"recurrencePeriod": {
					"from": "2024-05-01T12:30:45Z",
					"to": "2025-05-01T12:30:45Z"
				},
				"timeZone": "Central Standard Time"
			},
			"timeframe": "MonthToDate",
			"dataSet": {
				"granularity": "Daily",
				"configuration": {
					"columns": ["Date", "ResourceId", "ResourceGroupName", "ServiceName", "Cost", "Currency"]
				}
			}
		}
	}`, string(payload))
}

func TestBuildExportDeterministic(t *testing.T) {
	now := time.Date(2024, time.May, 1, 12, 30, 45, 0, time.UTC)

	first := BuildExport(testParams(), now)
	second := BuildExport(testParams(), now)

	assert.Equal(t, first, second)
}

func TestBuildExportNormalizesClockToUTC(t *testing.T) {
	zone := time.FixedZone("CET", 2*60*60)
	now := time.Date(2024, time.May, 1, 14, 30, 45, 0, zone)

	export := BuildExport(testParams(), now)

	assert.Equal(t, time.Date(2024, time.May, 1, 12, 30, 45, 0, time.UTC), export.Properties.Schedule.RecurrencePeriod.From)
	assert.Equal(t, time.Date(2025, time.May, 1, 12, 30, 45, 0, time.UTC), export.Properties.Schedule.RecurrencePeriod.To)
}

func TestSubscriptionScope(t *testing.T) {
	assert.Equal(t, "/subscriptions/sub-123", SubscriptionScope("sub-123"))
}
