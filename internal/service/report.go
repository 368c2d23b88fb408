package service

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/204g1a3204/sleep-disorder-app/internal"
	"github.com/204g1a3204/sleep-disorder-app/internal/storage"
)

var (
	idMu   sync.Mutex
	lastID int64
)

// newReportID derives the report id from the creation timestamp in
// milliseconds. Same-millisecond submissions bump past the previous id so
// ids stay unique within the collection.
func newReportID(now time.Time) string {
	idMu.Lock()
	defer idMu.Unlock()
	ms := now.UnixMilli()
	if ms <= lastID {
		ms = lastID + 1
	}
	lastID = ms
	return strconv.FormatInt(ms, 10)
}

var validSnoring = map[string]bool{"": true, "Never": true, "Sometimes": true, "Every Night": true}

func ValidateSubmission(sub *internal.IntakeSubmission) error {
	if sub.Email == "" {
		return internal.NewAppError(400, "email is required")
	}
	if !validSnoring[sub.Snoring] {
		return internal.NewAppError(400, "unknown snoring frequency")
	}
	return nil
}

// CreateReport runs the assessment over the submission and appends the
// resulting report to the collection.
func CreateReport(ctx context.Context, reports storage.ReportRepository, sub *internal.IntakeSubmission) (*internal.Report, error) {
	a := Assess(sub)
	now := time.Now()
	r := &internal.Report{
		IntakeSubmission: *sub,
		ID:               newReportID(now),
		Result:           a.Result,
		RiskLevel:        a.RiskLevel,
		Recommendations:  a.Recommendations,
		Date:             formatDate(now),
	}
	if err := reports.AppendReport(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// formatDate renders the locale-style M/D/YYYY creation date carried on
// every report.
func formatDate(t time.Time) string {
	return t.Format("1/2/2006")
}

func GetReport(ctx context.Context, reports storage.ReportRepository, id string) (*internal.Report, error) {
	return reports.GetReport(ctx, id)
}

// ListUserReports returns the user's analysis history in stored order.
func ListUserReports(ctx context.Context, reports storage.ReportRepository, email string) ([]internal.Report, error) {
	all, err := reports.ListReports(ctx)
	if err != nil {
		return nil, err
	}
	mine := []internal.Report{}
	for i := range all {
		if all[i].Email == email {
			mine = append(mine, all[i])
		}
	}
	return mine, nil
}
