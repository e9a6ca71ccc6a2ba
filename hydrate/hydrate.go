// Package hydrate turns a report template's elements plus one student's exam
// data into concrete text. Hydration is pure: the source template is never
// mutated, nothing is cached between calls, and fixed inputs always produce
// identical output.
package hydrate

import "github.com/sahdevkumar/Result-Management-sub000/core"

// Context carries the inputs for hydrating one student's page: the student,
// the exam, that student's mark records, and the subject catalog. It is
// consumed once per page generated.
type Context struct {
	Student  core.Student
	Exam     core.Exam
	Marks    []core.MarkRecord
	Subjects []core.Subject
	School   core.SchoolInfo
}

// report holds the values the token table resolves against, computed once per
// hydration from the Context.
type report struct {
	student core.Student
	exam    core.Exam
	school  core.SchoolInfo
	summary Summary
}

// Hydrate returns a new element list with every text element's placeholder
// tokens resolved against the student's consolidated results. Image and
// watermark elements pass through unchanged, geometry included.
func Hydrate(elements []core.Element, hctx Context) []core.Element {
	r := &report{
		student: hctx.Student,
		exam:    hctx.Exam,
		school:  hctx.School,
		summary: Summarize(hctx.Marks, hctx.Subjects),
	}

	out := make([]core.Element, len(elements))
	copy(out, elements)
	for i := range out {
		if out[i].Kind == core.KindText {
			out[i].Content = substitute(out[i].Content, r)
		}
	}
	return out
}
