package storage

import (
	"context"
	"sync"

	"github.com/204g1a3204/sleep-disorder-app/internal"
	"github.com/204g1a3204/sleep-disorder-app/internal/errs"
)

// MemoryStorage holds both collections in process memory. Used by tests
// and anywhere a throwaway store is enough.
type MemoryStorage struct {
	mu      sync.RWMutex
	users   []internal.User
	reports []internal.Report
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (s *MemoryStorage) ListUsers(ctx context.Context) ([]internal.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]internal.User, len(s.users))
	copy(out, s.users)
	return out, nil
}

func (s *MemoryStorage) AppendUser(ctx context.Context, u *internal.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append(s.users, *u)
	return nil
}

func (s *MemoryStorage) ListReports(ctx context.Context) ([]internal.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]internal.Report, len(s.reports))
	copy(out, s.reports)
	return out, nil
}

func (s *MemoryStorage) AppendReport(ctx context.Context, r *internal.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports = append(s.reports, *r)
	return nil
}

func (s *MemoryStorage) GetReport(ctx context.Context, id string) (*internal.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.reports {
		if s.reports[i].ID == id {
			r := s.reports[i]
			return &r, nil
		}
	}
	return nil, errs.ErrReportNotFound
}

var _ UserRepository = (*MemoryStorage)(nil)
var _ ReportRepository = (*MemoryStorage)(nil)
