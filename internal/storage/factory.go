package storage

import "github.com/204g1a3204/sleep-disorder-app/internal"

func NewFileRepositories(usersFile, reportsFile string, logger internal.Logger) (UserRepository, ReportRepository, error) {
	storage, err := NewFileStorage(usersFile, reportsFile, logger)
	if err != nil {
		return nil, nil, err
	}
	return storage, storage, nil
}

func NewPostgresRepositories(dsn string, logger internal.Logger) (UserRepository, ReportRepository, error) {
	storage, err := NewPostgresStorage(dsn, logger)
	if err != nil {
		return nil, nil, err
	}
	return storage, storage, nil
}
