package hydrate

import (
	"github.com/sirupsen/logrus"

	"github.com/sahdevkumar/Result-Management-sub000/core"
)

// SubjectResult is one subject's consolidated outcome for a student in an
// exam. It is derived fresh on every hydration and never persisted.
type SubjectResult struct {
	SubjectID   string  `json:"subjectId"`
	SubjectName string  `json:"subjectName"`
	Obtained    float64 `json:"obtained"`
	Max         float64 `json:"max"`
	Percent     float64 `json:"percent"`
	Grade       string  `json:"grade"`
}

// Summary aggregates a student's consolidated results across all subjects.
type Summary struct {
	Results  []SubjectResult `json:"results"`
	Obtained float64         `json:"obtained"`
	Max      float64         `json:"max"`
	Percent  float64         `json:"percent"`
}

// Grade maps a percentage to the report-card letter scale. This is the print
// time policy; marks entry uses the separate EntryPassed rule.
func Grade(pct float64) string {
	switch {
	case pct >= 90:
		return "A+"
	case pct >= 80:
		return "A"
	case pct >= 70:
		return "B"
	case pct >= 60:
		return "C"
	case pct >= 50:
		return "D"
	case pct >= 40:
		return "E"
	default:
		return "F"
	}
}

// EntryPassed is the binary pass/fail rule applied during live marks entry:
// at least 33% of the maximum. It is a policy independent of Grade and the
// two are intentionally not unified.
func EntryPassed(obtained, max float64) bool {
	if max <= 0 {
		return false
	}
	return obtained/max*100 >= 33
}

// Consolidate groups a student's mark records by subject and sums obtained
// amounts (objective + subjective) against the summed maxima. Results follow
// the subject catalog's order; subjects without marks are omitted.
func Consolidate(marks []core.MarkRecord, subjects []core.Subject) []SubjectResult {
	type tally struct {
		obtained float64
		max      float64
	}
	bySubject := make(map[string]*tally)
	for _, m := range marks {
		t := bySubject[m.SubjectID]
		if t == nil {
			t = &tally{}
			bySubject[m.SubjectID] = t
		}
		t.obtained += m.ObjObtained + m.SubObtained
		t.max += m.ObjMax + m.SubMax
	}

	results := make([]SubjectResult, 0, len(bySubject))
	for _, s := range subjects {
		t, ok := bySubject[s.ID]
		if !ok {
			continue
		}
		r := SubjectResult{
			SubjectID:   s.ID,
			SubjectName: s.Name,
			Obtained:    t.obtained,
			Max:         t.max,
		}
		if t.max > 0 {
			r.Percent = 100 * t.obtained / t.max
		}
		r.Grade = Grade(r.Percent)
		results = append(results, r)
		delete(bySubject, s.ID)
	}
	for id := range bySubject {
		logrus.WithField("subjectId", id).Debug("Dropping marks for subject missing from catalog")
	}
	return results
}

// Summarize consolidates and aggregates. When no record carries a maximum the
// overall max falls back to subjectCount x 100; a zero overall max yields a
// zero percentage.
func Summarize(marks []core.MarkRecord, subjects []core.Subject) Summary {
	sum := Summary{Results: Consolidate(marks, subjects)}
	for _, r := range sum.Results {
		sum.Obtained += r.Obtained
		sum.Max += r.Max
	}
	if sum.Max == 0 {
		sum.Max = float64(len(sum.Results)) * 100
	}
	if sum.Max > 0 {
		sum.Percent = 100 * sum.Obtained / sum.Max
	}
	return sum
}
