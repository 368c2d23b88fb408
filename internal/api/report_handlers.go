package api

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/204g1a3204/sleep-disorder-app/internal"
	"github.com/204g1a3204/sleep-disorder-app/internal/errs"
	"github.com/204g1a3204/sleep-disorder-app/internal/service"
)

func PostPredict(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sub internal.IntakeSubmission
		if err := c.ShouldBindJSON(&sub); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}

		if err := service.ValidateSubmission(&sub); err != nil {
			HandleError(c, app.Logger(), err, 400, "Validation failed")
			return
		}

		report, err := service.CreateReport(c.Request.Context(), app.Reports(), &sub)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to save report")
			return
		}

		meta := map[string]any{"redirect": "/view-report?id=" + report.ID}
		HandleSuccess(c, app.Logger(), report, meta)
	}
}

func GetReport(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Query("id")
		if id == "" {
			HandleError(c, app.Logger(), errs.ErrReportNotFound, 400, "Missing report id")
			return
		}

		report, err := service.GetReport(c.Request.Context(), app.Reports(), id)
		if err != nil {
			if errors.Is(err, errs.ErrReportNotFound) {
				HandleError(c, app.Logger(), err, 404, "Report not found")
				return
			}
			HandleError(c, app.Logger(), err, 500, "Failed to fetch report")
			return
		}

		HandleSuccess(c, app.Logger(), report, nil)
	}
}

func GetDashboard(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Query("user")
		if email == "" {
			HandleError(c, app.Logger(), errs.ErrInvalidCredentials, 400, "Missing user")
			return
		}

		reports, err := service.ListUserReports(c.Request.Context(), app.Reports(), email)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch reports")
			return
		}

		HandleSuccess(c, app.Logger(), reports, map[string]any{"user": email})
	}
}
