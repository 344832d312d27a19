package fouryousee

import "context"

const (
	// ReportDetailed lists every exhibition
	ReportDetailed = "detailed"

	defaultReportSort = -1
)

// ReportFilter narrows the exhibitions a report covers
type ReportFilter struct {
	StartDate string `json:"startDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `json:"endDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	StartTime string `json:"startTime,omitempty" validate:"omitempty,datetime=15:04:05"`
	EndTime   string `json:"endTime,omitempty" validate:"omitempty,datetime=15:04:05"`
	MediaID   []int  `json:"mediaId,omitempty" validate:"omitempty,dive,gt=0"`
	PlayerID  []int  `json:"playerId,omitempty" validate:"omitempty,dive,gt=0"`
	// Sort defaults to -1, newest first
	Sort *int `json:"sort,omitempty"`
}

// ReportInput describes a report to request
type ReportInput struct {
	Type   string       `json:"type,omitempty"`
	Filter ReportFilter `json:"filter" validate:"required"`
}

// Reports returns report requests and their status; ByID asks the server
// and fails with an APIError on a miss
func (c *Client) Reports(ctx context.Context, q Query) (Result, error) {
	return c.Get(ctx, ResourceReports, q)
}

// RequestReport asks the API to build a report. The report is generated
// asynchronously; poll Reports with the returned id for its status.
func (c *Client) RequestReport(ctx context.Context, in ReportInput) (Record, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	if in.Type == "" {
		in.Type = ReportDetailed
	}
	if in.Filter.Sort == nil {
		in.Filter.Sort = Int(defaultReportSort)
	}
	return c.create(ctx, ResourceReports, in)
}
