package hydrate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// The placeholder vocabulary is fixed. Scalar tokens are substituted
// independently and may co-occur in one element; the two block tokens are
// checked first and, when present, the whole element resolves to the block
// content. Anything else shaped like {{...}} is left verbatim.
const (
	TokenName       = "{{name}}"
	TokenRoll       = "{{roll}}"
	TokenClass      = "{{class}}"
	TokenGuardian   = "{{guardian}}"
	TokenExam       = "{{exam}}"
	TokenSchool     = "{{school}}"
	TokenTotal      = "{{total}}"
	TokenPercentage = "{{percentage}}"

	TokenMarksTable   = "{{marks_table}}"
	TokenMarksSummary = "{{marks_summary}}"
)

type tokenEntry struct {
	pattern *regexp.Regexp
	resolve func(r *report) string
}

func tokenPattern(token string) *regexp.Regexp {
	return regexp.MustCompile("(?i)" + regexp.QuoteMeta(token))
}

// scalarTokens is the ordered substitution table. Keeping it a table (rather
// than inline replacements) lets tests enumerate every token on its own.
var scalarTokens = []tokenEntry{
	{tokenPattern(TokenName), func(r *report) string { return r.student.Name }},
	{tokenPattern(TokenRoll), func(r *report) string { return r.student.Roll }},
	{tokenPattern(TokenClass), func(r *report) string {
		return r.student.Class + "-" + r.student.Section
	}},
	{tokenPattern(TokenGuardian), func(r *report) string { return r.student.Guardian }},
	{tokenPattern(TokenExam), func(r *report) string { return r.exam.Name }},
	{tokenPattern(TokenSchool), func(r *report) string { return r.school.Name }},
	{tokenPattern(TokenTotal), func(r *report) string { return formatAmount(r.summary.Obtained) }},
	{tokenPattern(TokenPercentage), func(r *report) string {
		return fmt.Sprintf("%.1f%%", r.summary.Percent)
	}},
}

var (
	marksTablePattern   = tokenPattern(TokenMarksTable)
	marksSummaryPattern = tokenPattern(TokenMarksSummary)
)

// substitute resolves one text element's content against the report.
func substitute(text string, r *report) string {
	if marksTablePattern.MatchString(text) {
		return r.marksTable()
	}
	if marksSummaryPattern.MatchString(text) {
		return r.marksSummary()
	}
	for _, t := range scalarTokens {
		text = t.pattern.ReplaceAllStringFunc(text, func(string) string {
			return t.resolve(r)
		})
	}
	return text
}

// marksTable renders one line per subject: "Name: obtained/max (Grade)".
func (r *report) marksTable() string {
	lines := make([]string, 0, len(r.summary.Results))
	for _, sr := range r.summary.Results {
		lines = append(lines, fmt.Sprintf("%s: %s/%s (%s)",
			sr.SubjectName, formatAmount(sr.Obtained), formatAmount(sr.Max), sr.Grade))
	}
	return strings.Join(lines, "\n")
}

// marksSummary renders a comma-joined "Name obtained/max" list.
func (r *report) marksSummary() string {
	parts := make([]string, 0, len(r.summary.Results))
	for _, sr := range r.summary.Results {
		parts = append(parts, fmt.Sprintf("%s %s/%s",
			sr.SubjectName, formatAmount(sr.Obtained), formatAmount(sr.Max)))
	}
	return strings.Join(parts, ", ")
}

// formatAmount prints marks without trailing zeros ("75", "62.5").
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
