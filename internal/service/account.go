package service

import (
	"context"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/204g1a3204/sleep-disorder-app/internal"
	"github.com/204g1a3204/sleep-disorder-app/internal/auth"
	"github.com/204g1a3204/sleep-disorder-app/internal/errs"
	"github.com/204g1a3204/sleep-disorder-app/internal/storage"
)

var validate = validator.New()

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^[0-9]{10}$`)
	// passwordCharsRe covers the full allowed password alphabet; the
	// per-class requirements are checked separately since RE2 has no
	// lookahead.
	passwordCharsRe = regexp.MustCompile(`^[A-Za-z\d@$!%*#?&]{8,}$`)
)

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func ValidateRegisterRequest(req *RegisterRequest) error {
	if err := validate.Struct(req); err != nil {
		return err
	}
	if !emailRe.MatchString(req.Email) {
		return internal.NewAppError(400, "Invalid Email Format")
	}
	if !phoneRe.MatchString(req.Phone) {
		return internal.NewAppError(400, "Phone Number must be 10 digits")
	}
	if !validPassword(req.Password) {
		return internal.NewAppError(400, "Password too weak! Must include letters, numbers, and a special symbol.")
	}
	return nil
}

// validPassword enforces at least 8 characters with one letter, one digit
// and one special symbol, all drawn from the allowed alphabet.
func validPassword(p string) bool {
	if !passwordCharsRe.MatchString(p) {
		return false
	}
	hasLetter := strings.ContainsFunc(p, func(r rune) bool {
		return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
	})
	hasDigit := strings.ContainsAny(p, "0123456789")
	hasSpecial := strings.ContainsAny(p, "@$!%*#?&")
	return hasLetter && hasDigit && hasSpecial
}

// Register creates a user record with a bcrypt password digest. Emails
// are matched exactly, case-sensitive, against the existing collection.
func Register(ctx context.Context, users storage.UserRepository, req *RegisterRequest) error {
	existing, err := users.ListUsers(ctx)
	if err != nil {
		return err
	}
	for i := range existing {
		if existing[i].Email == req.Email {
			return errs.ErrDuplicateEmail
		}
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return err
	}
	u := &internal.User{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: hash,
	}
	return users.AppendUser(ctx, u)
}

// Login verifies credentials with a linear scan over the user collection
// and returns the verified email as the caller's identity. There is no
// session or token issuance; callers carry the identity themselves.
func Login(ctx context.Context, users storage.UserRepository, email, password string) (string, error) {
	existing, err := users.ListUsers(ctx)
	if err != nil {
		return "", err
	}
	for i := range existing {
		if existing[i].Email == email {
			if auth.VerifyPassword(existing[i].PasswordHash, password) {
				return existing[i].Email, nil
			}
			return "", errs.ErrInvalidCredentials
		}
	}
	return "", errs.ErrInvalidCredentials
}
