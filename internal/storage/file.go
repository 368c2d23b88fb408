package storage

import (
	"context"
	"sync"

	"github.com/204g1a3204/sleep-disorder-app/internal"
	"github.com/204g1a3204/sleep-disorder-app/internal/errs"
)

// FileStorage keeps each collection as one JSON document on disk. Every
// operation re-reads and rewrites the whole file; the file is the sole
// source of truth. The lock is held across the full load-modify-save
// cycle so concurrent appends cannot drop each other's writes.
type FileStorage struct {
	usersFile   string
	reportsFile string
	mu          sync.RWMutex
	logger      internal.Logger
}

func NewFileStorage(usersFile, reportsFile string, logger internal.Logger) (*FileStorage, error) {
	if err := ensureCollection(usersFile); err != nil {
		logger.Errorf("storage: failed to init users file: %v", err)
		return nil, err
	}
	if err := ensureCollection(reportsFile); err != nil {
		logger.Errorf("storage: failed to init reports file: %v", err)
		return nil, err
	}
	return &FileStorage{
		usersFile:   usersFile,
		reportsFile: reportsFile,
		logger:      logger,
	}, nil
}

// --- UserRepository ---

func (s *FileStorage) ListUsers(ctx context.Context) ([]internal.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users, err := readCollection[internal.User](s.usersFile)
	if err != nil {
		s.logger.Warnf("storage: unreadable users file, recovering with empty collection: %v", err)
	}
	return users, nil
}

func (s *FileStorage) AppendUser(ctx context.Context, u *internal.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	users, err := readCollection[internal.User](s.usersFile)
	if err != nil {
		s.logger.Warnf("storage: unreadable users file, recovering with empty collection: %v", err)
	}
	users = append(users, *u)
	if err := writeCollection(s.usersFile, users); err != nil {
		s.logger.Errorf("storage: failed to save users: %v", err)
		return err
	}
	return nil
}

// --- ReportRepository ---

func (s *FileStorage) ListReports(ctx context.Context) ([]internal.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	reports, err := readCollection[internal.Report](s.reportsFile)
	if err != nil {
		s.logger.Warnf("storage: unreadable reports file, recovering with empty collection: %v", err)
	}
	return reports, nil
}

func (s *FileStorage) AppendReport(ctx context.Context, r *internal.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	reports, err := readCollection[internal.Report](s.reportsFile)
	if err != nil {
		s.logger.Warnf("storage: unreadable reports file, recovering with empty collection: %v", err)
	}
	reports = append(reports, *r)
	if err := writeCollection(s.reportsFile, reports); err != nil {
		s.logger.Errorf("storage: failed to save reports: %v", err)
		return err
	}
	return nil
}

func (s *FileStorage) GetReport(ctx context.Context, id string) (*internal.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	reports, err := readCollection[internal.Report](s.reportsFile)
	if err != nil {
		s.logger.Warnf("storage: unreadable reports file, recovering with empty collection: %v", err)
	}
	for i := range reports {
		if reports[i].ID == id {
			return &reports[i], nil
		}
	}
	return nil, errs.ErrReportNotFound
}

// --- Compile-time assertions ---
var _ UserRepository = (*FileStorage)(nil)
var _ ReportRepository = (*FileStorage)(nil)
