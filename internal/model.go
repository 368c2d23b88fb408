package internal

import "strings"

// RiskLevel is the coarse severity tier attached to an assessment result.
type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskModerate RiskLevel = "Moderate"
	RiskHigh     RiskLevel = "High"
)

type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	// bcrypt digest; kept under the legacy "password" key so existing
	// user files stay readable.
	PasswordHash string `json:"password"`
}

// IntakeSubmission carries the health form exactly as the HTTP layer parsed
// it: every field is text. Numeric fields are interpreted by the assessment
// engine, which tolerates malformed values. TeaCoffee and WorkHours are
// optional and empty when the submitting form did not collect them.
type IntakeSubmission struct {
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Age         string `json:"age"`
	Gender      string `json:"gender"`
	Occupation  string `json:"occupation"`
	Stress      string `json:"stress"`
	BloodPress  string `json:"bp"`
	HeartRate   string `json:"heart_rate"`
	SleepDur    string `json:"sleep_duration"`
	TeaCoffee   string `json:"tea_coffee,omitempty"`
	BMI         string `json:"bmi"`
	Snoring     string `json:"snoring"`
	WorkHours   string `json:"work_hours,omitempty"`
}

// Report is an IntakeSubmission plus the assessment outcome and creation
// metadata. Reports are append-only: created once, never mutated.
type Report struct {
	IntakeSubmission

	ID              string    `json:"id"`
	Result          string    `json:"result"`
	RiskLevel       RiskLevel `json:"riskLevel"`
	Recommendations []string  `json:"recommendations"`
	Date            string    `json:"date"`
}

// HighRisk reports whether the report represents a high-risk case. The
// riskLevel enum is canonical; the substring check on the diagnosis text is
// kept as a fallback for records written by older producers that only
// carried the result field.
func (r *Report) HighRisk() bool {
	return r.RiskLevel == RiskHigh || strings.Contains(r.Result, "High")
}

type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) Error() string { return e.Message }

func NewAppError(code int, msg string) *AppError {
	return &AppError{Code: code, Message: msg}
}
