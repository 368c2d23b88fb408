package api

import (
	"github.com/gin-gonic/gin"

	"github.com/204g1a3204/sleep-disorder-app/internal"
	"github.com/204g1a3204/sleep-disorder-app/internal/auth"
	"github.com/204g1a3204/sleep-disorder-app/internal/storage"
)

type app struct {
	logger  internal.Logger
	users   storage.UserRepository
	reports storage.ReportRepository
	admin   *auth.AdminGate
}

func NewApp(logger internal.Logger, users storage.UserRepository, reports storage.ReportRepository, admin *auth.AdminGate) App {
	return &app{logger: logger, users: users, reports: reports, admin: admin}
}

func (a *app) Logger() internal.Logger             { return a.logger }
func (a *app) Users() storage.UserRepository       { return a.users }
func (a *app) Reports() storage.ReportRepository   { return a.reports }
func (a *app) Admin() *auth.AdminGate              { return a.admin }

// RegisterRoutes wires every endpoint onto the engine.
func RegisterRoutes(r *gin.Engine, a App) {
	r.Use(RequestIDMiddleware())

	r.POST("/register", PostRegister(a))
	r.POST("/login", PostLogin(a))
	r.POST("/predict", PostPredict(a))
	r.GET("/view-report", GetReport(a))
	r.GET("/dashboard", GetDashboard(a))
	r.POST("/admin-portal", PostAdminPortal(a))
}
