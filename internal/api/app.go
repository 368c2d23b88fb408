package api

import (
	"github.com/204g1a3204/sleep-disorder-app/internal"
	"github.com/204g1a3204/sleep-disorder-app/internal/auth"
	"github.com/204g1a3204/sleep-disorder-app/internal/storage"
)

type App interface {
	Logger() internal.Logger
	Users() storage.UserRepository
	Reports() storage.ReportRepository
	Admin() *auth.AdminGate
}
