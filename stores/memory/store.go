package memory

import "github.com/sahdevkumar/Result-Management-sub000/core"

// Store bundles the template store with a fixture-backed Directory so a run
// without any database configured still serves the report and directory APIs.
type Store struct {
	core.TemplateStore
	*Directory
}

func NewStore(dir *Directory) *Store {
	return &Store{TemplateStore: NewTemplateStore(), Directory: dir}
}

// SeedDirectory returns a Directory populated with demo school data for the
// default dev run.
func SeedDirectory() *Directory {
	dir := NewDirectory(
		[]core.Student{
			{ID: "st-demo-1", Name: "Aarav Sharma", Roll: "1", Class: "8", Section: "B", Guardian: "Ramesh Sharma"},
			{ID: "st-demo-2", Name: "Diya Patel", Roll: "2", Class: "8", Section: "B", Guardian: "Suresh Patel"},
		},
		[]core.Exam{{ID: "ex-demo-1", Name: "Half Yearly 2025"}},
		[]core.Subject{
			{ID: "sub-demo-1", Name: "Mathematics"},
			{ID: "sub-demo-2", Name: "Science"},
		},
		core.SchoolInfo{Name: "Demo Public School", Address: "Demo Lane 1", Phone: "000-0000"},
	)
	dir.SetMarks("st-demo-1", "ex-demo-1", []core.MarkRecord{
		{SubjectID: "sub-demo-1", ObjObtained: 40, ObjMax: 60, SubObtained: 35, SubMax: 40},
		{SubjectID: "sub-demo-2", ObjObtained: 48, ObjMax: 60, SubObtained: 34, SubMax: 40},
	})
	dir.SetMarks("st-demo-2", "ex-demo-1", []core.MarkRecord{
		{SubjectID: "sub-demo-1", ObjObtained: 55, ObjMax: 60, SubObtained: 37, SubMax: 40},
		{SubjectID: "sub-demo-2", ObjObtained: 52, ObjMax: 60, SubObtained: 39, SubMax: 40},
	})
	return dir
}
