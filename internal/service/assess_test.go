package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/204g1a3204/sleep-disorder-app/internal"
)

func TestAssess_Rules(t *testing.T) {
	tests := []struct {
		name       string
		sub        internal.IntakeSubmission
		wantResult string
		wantLevel  internal.RiskLevel
	}{
		{
			name:       "obese and nightly snoring flags sleep apnea",
			sub:        internal.IntakeSubmission{BMI: "Obese Class I (30.0 - 34.9)", Snoring: "Every Night", SleepDur: "8", Stress: "1"},
			wantResult: "High Risk: Possible Sleep Apnea",
			wantLevel:  internal.RiskHigh,
		},
		{
			name:       "short sleep flags deprivation",
			sub:        internal.IntakeSubmission{BMI: "Normal (18.5 - 24.9)", Snoring: "Never", SleepDur: "4.5", Stress: "1"},
			wantResult: "High Risk: Severe Sleep Deprivation",
			wantLevel:  internal.RiskHigh,
		},
		{
			name:       "high stress with borderline sleep flags insomnia",
			sub:        internal.IntakeSubmission{BMI: "Normal (18.5 - 24.9)", Snoring: "Never", SleepDur: "6", Stress: "9"},
			wantResult: "High Risk: Insomnia Indicators",
			wantLevel:  internal.RiskHigh,
		},
		{
			name:       "heavy caffeine flags moderate risk",
			sub:        internal.IntakeSubmission{BMI: "Normal (18.5 - 24.9)", Snoring: "Never", SleepDur: "8", Stress: "2", TeaCoffee: "5"},
			wantResult: "Moderate Risk: Caffeine Disruption",
			wantLevel:  internal.RiskModerate,
		},
		{
			name:       "no rule matches yields healthy",
			sub:        internal.IntakeSubmission{BMI: "Normal (18.5 - 24.9)", Snoring: "Never", SleepDur: "8", Stress: "2"},
			wantResult: "Healthy Sleep Pattern",
			wantLevel:  internal.RiskLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Assess(&tt.sub)
			assert.Equal(t, tt.wantResult, got.Result)
			assert.Equal(t, tt.wantLevel, got.RiskLevel)
			assert.NotEmpty(t, got.Recommendations)
		})
	}
}

func TestAssess_FirstMatchWins(t *testing.T) {
	// Satisfies both the apnea rule and the deprivation rule; the
	// apnea rule is evaluated first and must win.
	sub := internal.IntakeSubmission{
		BMI:      "Obese Class II (35.0 - 39.9)",
		Snoring:  "Every Night",
		SleepDur: "3",
		Stress:   "9",
	}
	got := Assess(&sub)
	assert.Equal(t, "High Risk: Possible Sleep Apnea", got.Result)
	assert.Equal(t, internal.RiskHigh, got.RiskLevel)
}

func TestAssess_Deterministic(t *testing.T) {
	sub := internal.IntakeSubmission{BMI: "Overweight (25.0 - 29.9)", Snoring: "Sometimes", SleepDur: "6", Stress: "8", TeaCoffee: "3"}
	first := Assess(&sub)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Assess(&sub))
	}
}

func TestAssess_MalformedNumbersFallThrough(t *testing.T) {
	tests := []struct {
		name string
		sub  internal.IntakeSubmission
	}{
		{"malformed sleep duration", internal.IntakeSubmission{BMI: "Normal (18.5 - 24.9)", Snoring: "Never", SleepDur: "seven", Stress: "2"}},
		{"missing sleep duration", internal.IntakeSubmission{BMI: "Normal (18.5 - 24.9)", Snoring: "Never", Stress: "2"}},
		{"malformed stress", internal.IntakeSubmission{BMI: "Normal (18.5 - 24.9)", Snoring: "Never", SleepDur: "6", Stress: "very high"}},
		{"malformed tea coffee", internal.IntakeSubmission{BMI: "Normal (18.5 - 24.9)", Snoring: "Never", SleepDur: "8", Stress: "2", TeaCoffee: "lots"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Assess(&tt.sub)
			// A value that cannot be parsed never trips a numeric
			// threshold, so every case falls to the healthy default.
			assert.Equal(t, "Healthy Sleep Pattern", got.Result)
			assert.Equal(t, internal.RiskLow, got.RiskLevel)
		})
	}
}

func TestAssess_MalformedStressStillAllowsLaterRules(t *testing.T) {
	// Stress is unreadable but caffeine is over the limit; rule 3 must
	// be skipped and rule 4 must still fire.
	sub := internal.IntakeSubmission{BMI: "Normal (18.5 - 24.9)", Snoring: "Never", SleepDur: "6", Stress: "??", TeaCoffee: "6"}
	got := Assess(&sub)
	assert.Equal(t, "Moderate Risk: Caffeine Disruption", got.Result)
}
