package service

import (
	"math"
	"strconv"
	"strings"

	"github.com/204g1a3204/sleep-disorder-app/internal"
)

// Assessment is the outcome of running the risk rules over one submission.
type Assessment struct {
	Result          string
	RiskLevel       internal.RiskLevel
	Recommendations []string
}

// parseNumber interprets a text field as a number. Missing or malformed
// values come back as NaN, which compares false against every threshold,
// so a broken field simply fails to trigger the rules that read it.
func parseNumber(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// Assess maps a health intake submission to a diagnosis, a risk tier and
// a list of recommendations. The rules form an ordered decision list and
// the first match wins. Pure and deterministic; persisting the resulting
// report is the caller's job.
func Assess(sub *internal.IntakeSubmission) Assessment {
	stress := parseNumber(sub.Stress)
	sleep := parseNumber(sub.SleepDur)
	teaCoffee := parseNumber(sub.TeaCoffee)

	switch {
	case strings.Contains(sub.BMI, "Obese") && sub.Snoring == "Every Night":
		return Assessment{
			Result:    "High Risk: Possible Sleep Apnea",
			RiskLevel: internal.RiskHigh,
			Recommendations: []string{
				"Consult a specialist for CPAP therapy.",
				"Avoid sleeping on your back.",
				"Weight management is advised.",
			},
		}
	case sleep < 5:
		return Assessment{
			Result:    "High Risk: Severe Sleep Deprivation",
			RiskLevel: internal.RiskHigh,
			Recommendations: []string{
				"Prioritize 7-8 hours of sleep.",
				"Consult a doctor about your sleep schedule.",
				"Avoid using screens 1 hour before bed.",
			},
		}
	case stress > 7 && sleep < 6.5:
		return Assessment{
			Result:    "High Risk: Insomnia Indicators",
			RiskLevel: internal.RiskHigh,
			Recommendations: []string{
				"Practice relaxation techniques.",
				"Reduce evening stress.",
				"Limit caffeine intake.",
			},
		}
	case teaCoffee > 4:
		return Assessment{
			Result:    "Moderate Risk: Caffeine Disruption",
			RiskLevel: internal.RiskModerate,
			Recommendations: []string{
				"Limit tea/coffee to 2 cups a day.",
				"Avoid caffeine after 4 PM.",
			},
		}
	default:
		return Assessment{
			Result:    "Healthy Sleep Pattern",
			RiskLevel: internal.RiskLow,
			Recommendations: []string{
				"Maintain your current routine.",
				"Keep a consistent sleep schedule.",
			},
		}
	}
}
