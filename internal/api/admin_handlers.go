package api

import (
	"github.com/gin-gonic/gin"

	"github.com/204g1a3204/sleep-disorder-app/internal/service"
)

type AdminLoginRequest struct {
	AdminEmail string `json:"adminEmail"`
	AdminKey   string `json:"adminKey"`
}

// PostAdminPortal authenticates the admin and returns the aggregate
// dashboard statistics together with the raw report collection for the
// tabular view.
func PostAdminPortal(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AdminLoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}

		if err := app.Admin().Verify(req.AdminEmail, req.AdminKey); err != nil {
			HandleError(c, app.Logger(), err, 401, "Access Denied")
			return
		}

		reports, err := app.Reports().ListReports(c.Request.Context())
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch reports")
			return
		}

		summary := service.Summarize(reports)
		meta := map[string]any{"summary": summary}
		HandleSuccess(c, app.Logger(), reports, meta)
	}
}
