package storage

import (
	"context"

	"github.com/204g1a3204/sleep-disorder-app/internal"
)

type UserRepository interface {
	ListUsers(ctx context.Context) ([]internal.User, error)
	AppendUser(ctx context.Context, u *internal.User) error
}

type ReportRepository interface {
	ListReports(ctx context.Context) ([]internal.Report, error)
	AppendReport(ctx context.Context, r *internal.Report) error
	GetReport(ctx context.Context, id string) (*internal.Report, error)
}
