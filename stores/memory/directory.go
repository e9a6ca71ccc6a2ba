package memory

import (
	"context"
	"fmt"

	"github.com/sahdevkumar/Result-Management-sub000/core"
)

// Directory is an in-memory core.Directory fed with explicit fixtures. It
// backs tests and the default dev run, where no database is configured.
type Directory struct {
	students []core.Student
	exams    []core.Exam
	subjects []core.Subject
	// marks indexed by "studentID/examID"
	marks  map[string][]core.MarkRecord
	school core.SchoolInfo
}

func NewDirectory(students []core.Student, exams []core.Exam, subjects []core.Subject, school core.SchoolInfo) *Directory {
	return &Directory{
		students: students,
		exams:    exams,
		subjects: subjects,
		marks:    make(map[string][]core.MarkRecord),
		school:   school,
	}
}

// SetMarks registers the mark records for one student in one exam.
func (d *Directory) SetMarks(studentID, examID string, marks []core.MarkRecord) {
	d.marks[markKey(studentID, examID)] = marks
}

func (d *Directory) Students(ctx context.Context) ([]core.Student, error) {
	return d.students, nil
}

func (d *Directory) Exams(ctx context.Context) ([]core.Exam, error) {
	return d.exams, nil
}

func (d *Directory) Subjects(ctx context.Context) ([]core.Subject, error) {
	return d.subjects, nil
}

func (d *Directory) StudentMarks(ctx context.Context, studentID, examID string) ([]core.MarkRecord, error) {
	return d.marks[markKey(studentID, examID)], nil
}

func (d *Directory) SchoolInfo(ctx context.Context) (*core.SchoolInfo, error) {
	info := d.school
	return &info, nil
}

func markKey(studentID, examID string) string {
	return fmt.Sprintf("%s/%s", studentID, examID)
}
