package fouryousee

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestReport(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		client, rec := newTestClient(t, echoHandler)

		_, err := client.RequestReport(context.Background(), ReportInput{
			Filter: ReportFilter{
				StartDate: "2024-03-01",
				EndDate:   "2024-03-31",
				StartTime: "00:00:00",
				EndTime:   "23:59:59",
				PlayerID:  []int{2},
			},
		})
		require.NoError(t, err)

		req := rec.last()
		assert.Equal(t, http.MethodPost, req.Method)
		assert.Equal(t, "/reports/", req.Path)
		assert.JSONEq(t, `{
			"type": "detailed",
			"filter": {
				"startDate": "2024-03-01",
				"endDate": "2024-03-31",
				"startTime": "00:00:00",
				"endTime": "23:59:59",
				"playerId": [2],
				"sort": -1
			}
		}`, string(req.Body))
	})

	t.Run("explicit sort is kept", func(t *testing.T) {
		client, rec := newTestClient(t, echoHandler)

		_, err := client.RequestReport(context.Background(), ReportInput{
			Filter: ReportFilter{StartDate: "2024-03-01", Sort: Int(1)},
		})
		require.NoError(t, err)

		body := decodeBody(t, rec.last().Body)
		filter, ok := body["filter"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, float64(1), filter["sort"])
	})
}

func TestRequestReportValidation(t *testing.T) {
	tests := []struct {
		name      string
		input     ReportInput
		wantField string
		wantMsg   string
	}{
		{
			name:      "missing filter",
			input:     ReportInput{Type: ReportDetailed},
			wantField: "filter",
			wantMsg:   "missing 'filter' field",
		},
		{
			name:      "bad date",
			input:     ReportInput{Filter: ReportFilter{StartDate: "01/03/2024"}},
			wantField: "startDate",
			wantMsg:   "must match the layout 2006-01-02",
		},
		{
			name:      "bad time",
			input:     ReportInput{Filter: ReportFilter{EndTime: "25:00"}},
			wantField: "endTime",
		},
		{
			name:      "bad media id",
			input:     ReportInput{Filter: ReportFilter{MediaID: []int{0}}},
			wantField: "mediaId",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, rec := newTestClient(t, echoHandler)

			_, err := client.RequestReport(context.Background(), tt.input)
			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.True(t, strings.HasPrefix(validationErr.Field, tt.wantField), "field %s", validationErr.Field)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
			assert.Zero(t, rec.count())
		})
	}
}
