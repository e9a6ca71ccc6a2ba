// Package printing drives the hydration engine over many students against one
// template and lays out discrete, unscaled pages for printing.
package printing

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/sahdevkumar/Result-Management-sub000/core"
	"github.com/sahdevkumar/Result-Management-sub000/hydrate"
)

// Page is one student's fully hydrated element list at the template's exact
// canvas dimensions. Pages are ephemeral: rebuilt per print invocation and
// discarded after export.
type Page struct {
	StudentID   string         `json:"studentId"`
	StudentName string         `json:"studentName"`
	Width       int            `json:"width"`
	Height      int            `json:"height"`
	Elements    []core.Element `json:"elements"`
}

// Exporter is the external print/export collaborator that receives the
// assembled pages.
type Exporter interface {
	Export(ctx context.Context, pages []Page) error
}

// Assembler produces one page per target student for a chosen template and
// exam. Generation is sequential per student, never concurrent: hydration of
// student N+1 does not begin until student N's completes. That bounds how many
// hydrated pages exist at once and makes page order exactly the input order.
type Assembler struct {
	store core.TemplateStore
	dir   core.Directory
}

func NewAssembler(store core.TemplateStore, dir core.Directory) *Assembler {
	return &Assembler{store: store, dir: dir}
}

// BuildPages hydrates one page per student id, preserving input order. An
// empty template id, exam id, or student list is the normal idle state and
// yields no pages and no error. A failure for any single student aborts the
// whole batch with that student identified in the error.
func (a *Assembler) BuildPages(ctx context.Context, templateID, examID string, studentIDs []string) ([]Page, error) {
	if templateID == "" || examID == "" || len(studentIDs) == 0 {
		return nil, nil
	}

	tpl, err := a.store.Get(ctx, templateID)
	if err != nil {
		return nil, err
	}

	exam, err := a.findExam(ctx, examID)
	if err != nil {
		return nil, err
	}
	subjects, err := a.dir.Subjects(ctx)
	if err != nil {
		return nil, err
	}
	students, err := a.dir.Students(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]core.Student, len(students))
	for _, s := range students {
		byID[s.ID] = s
	}
	var school core.SchoolInfo
	if info, err := a.dir.SchoolInfo(ctx); err == nil && info != nil {
		school = *info
	}

	pages := make([]Page, 0, len(studentIDs))
	for _, sid := range studentIDs {
		student, ok := byID[sid]
		if !ok {
			return nil, fmt.Errorf("student with id %s not found", sid)
		}

		marks, err := a.dir.StudentMarks(ctx, sid, examID)
		if err != nil {
			return nil, fmt.Errorf("fetch marks for student %s (%s): %w", student.Name, sid, err)
		}

		elements := hydrate.Hydrate(tpl.Elements, hydrate.Context{
			Student:  student,
			Exam:     exam,
			Marks:    marks,
			Subjects: subjects,
			School:   school,
		})
		pages = append(pages, Page{
			StudentID:   sid,
			StudentName: student.Name,
			Width:       tpl.Width,
			Height:      tpl.Height,
			Elements:    elements,
		})
	}

	logrus.WithFields(logrus.Fields{
		"template_id": templateID,
		"exam_id":     examID,
		"pages":       len(pages),
	}).Info("Assembled print pages")
	return pages, nil
}

// BuildPage is the single-student path used for preview and single print.
func (a *Assembler) BuildPage(ctx context.Context, templateID, examID, studentID string) (*Page, error) {
	if studentID == "" {
		return nil, nil
	}
	pages, err := a.BuildPages(ctx, templateID, examID, []string{studentID})
	if err != nil || pages == nil {
		return nil, err
	}
	return &pages[0], nil
}

func (a *Assembler) findExam(ctx context.Context, examID string) (core.Exam, error) {
	exams, err := a.dir.Exams(ctx)
	if err != nil {
		return core.Exam{}, err
	}
	for _, e := range exams {
		if e.ID == examID {
			return e, nil
		}
	}
	return core.Exam{}, fmt.Errorf("exam with id %s not found", examID)
}
