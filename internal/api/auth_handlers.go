package api

import (
	"errors"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/204g1a3204/sleep-disorder-app/internal"
	"github.com/204g1a3204/sleep-disorder-app/internal/errs"
	"github.com/204g1a3204/sleep-disorder-app/internal/service"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func PostRegister(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}

		if err := service.ValidateRegisterRequest(&req); err != nil {
			var appErr *internal.AppError
			if errors.As(err, &appErr) {
				HandleError(c, app.Logger(), err, appErr.Code, "Validation failed")
				return
			}
			HandleError(c, app.Logger(), err, 400, "Validation failed")
			return
		}

		if err := service.Register(c.Request.Context(), app.Users(), &req); err != nil {
			if errors.Is(err, errs.ErrDuplicateEmail) {
				HandleError(c, app.Logger(), err, 409, "User Already Exists")
				return
			}
			HandleError(c, app.Logger(), err, 500, "Failed to register user")
			return
		}

		HandleSuccess(c, app.Logger(), gin.H{"email": req.Email}, nil)
	}
}

func PostLogin(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}

		email, err := service.Login(c.Request.Context(), app.Users(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, errs.ErrInvalidCredentials) {
				HandleError(c, app.Logger(), err, 401, "Invalid Credentials")
				return
			}
			HandleError(c, app.Logger(), err, 500, "Failed to log in")
			return
		}

		// The verified email doubles as the session identity; the UI
		// carries it as a query parameter on subsequent requests.
		meta := map[string]any{"redirect": "/dashboard?user=" + url.QueryEscape(email)}
		HandleSuccess(c, app.Logger(), gin.H{"email": email}, meta)
	}
}
