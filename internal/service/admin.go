package service

import (
	"sort"

	"github.com/204g1a3204/sleep-disorder-app/internal"
)

// AgeBuckets counts reports per dashboard age group.
type AgeBuckets struct {
	Young  int `json:"18-30"`
	Middle int `json:"31-50"`
	Senior int `json:"50+"`
}

type OccupationCount struct {
	Occupation string `json:"occupation"`
	Count      int    `json:"count"`
}

// Summary is the aggregate view behind the admin dashboard charts.
type Summary struct {
	HighRiskCount  int               `json:"highRiskCount"`
	LowRiskCount   int               `json:"lowRiskCount"`
	AgeBuckets     AgeBuckets        `json:"ageBuckets"`
	TopOccupations []OccupationCount `json:"topOccupations"`
}

// Summarize computes dashboard statistics over the full report
// collection. LowRiskCount is everything that is not high risk, so
// moderate cases count as low, matching the two-slice risk chart. An
// unparseable age fails both bucket comparisons and lands in 50+.
func Summarize(reports []internal.Report) Summary {
	s := Summary{TopOccupations: []OccupationCount{}}

	occCounts := map[string]int{}
	occOrder := []string{}

	for i := range reports {
		r := &reports[i]

		age := parseNumber(r.Age)
		switch {
		case age <= 30:
			s.AgeBuckets.Young++
		case age <= 50:
			s.AgeBuckets.Middle++
		default:
			s.AgeBuckets.Senior++
		}

		if !r.HighRisk() {
			continue
		}
		s.HighRiskCount++

		occ := r.Occupation
		if occ == "" {
			occ = "Other"
		}
		if _, seen := occCounts[occ]; !seen {
			occOrder = append(occOrder, occ)
		}
		occCounts[occ]++
	}
	s.LowRiskCount = len(reports) - s.HighRiskCount

	// Sort by count descending; stable sort over first-encountered
	// order breaks ties.
	sort.SliceStable(occOrder, func(i, j int) bool {
		return occCounts[occOrder[i]] > occCounts[occOrder[j]]
	})
	if len(occOrder) > 4 {
		occOrder = occOrder[:4]
	}
	for _, occ := range occOrder {
		s.TopOccupations = append(s.TopOccupations, OccupationCount{Occupation: occ, Count: occCounts[occ]})
	}
	return s
}
