package sqlite

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/sahdevkumar/Result-Management-sub000/core"
)

func TestMain(m *testing.M) {
	if !CGOEnabled {
		fmt.Println("skipping sqlite store tests: CGO disabled")
		os.Exit(0)
	}

	os.Exit(m.Run())
}

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	return NewStore(dbPath)
}

func sampleElements() []core.Element {
	return []core.Element{
		{ID: "e1", Kind: core.KindText, X: 10, Y: 20, Width: 200, Height: 40, Content: "{{marks_table}}",
			Style: core.Style{FontSize: 14, FontFamily: "Times", Color: "#000000", Opacity: 1}},
		{ID: "e2", Kind: core.KindImage, X: 600, Y: 30, Width: 96, Height: 96, Content: "data:image/png;base64,AAAA",
			Style: core.Style{Opacity: 1}},
	}
}

func TestNewStore(t *testing.T) {
	if setupTestStore(t) == nil {
		t.Fatal("NewStore() returned nil")
	}
}

func TestRoundTrip(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	elements := sampleElements()

	saved, err := store.Save(ctx, "Annual Card", elements, 794, 1123)
	if err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := store.Get(ctx, saved.ID)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if loaded.Name != "Annual Card" || loaded.Width != 794 || loaded.Height != 1123 {
		t.Errorf("metadata mismatch: %+v", loaded)
	}
	if len(loaded.Elements) != 2 {
		t.Fatalf("element count mismatch: got %d, want 2", len(loaded.Elements))
	}
	for i := range elements {
		if loaded.Elements[i] != elements[i] {
			t.Errorf("element %d mismatch: got %+v, want %+v", i, loaded.Elements[i], elements[i])
		}
	}
}

func TestGet_NotFound(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.Get(context.Background(), "nonexistent-id")
	if err == nil {
		t.Fatal("Get() should return error for nonexistent ID")
	}
	expectedError := "template with id nonexistent-id not found"
	if err.Error() != expectedError {
		t.Errorf("Get() error mismatch: got %q, want %q", err.Error(), expectedError)
	}
}

func TestGet_CorruptElementsReported(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	saved, _ := store.Save(ctx, "Card", sampleElements(), 794, 1123)
	if _, err := store.db.ExecContext(ctx,
		"UPDATE templates SET elements = ? WHERE id = ?", []byte("{broken"), saved.ID); err != nil {
		t.Fatal(err)
	}

	if _, err := store.Get(ctx, saved.ID); err == nil {
		t.Fatal("corrupt stored data must surface as an error")
	}
}

func TestList_NewestFirst(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	first, _ := store.Save(ctx, "first", sampleElements(), 794, 1123)
	second, _ := store.Save(ctx, "second", sampleElements(), 600, 800)

	templates, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(templates) != 2 {
		t.Fatalf("expected 2 templates, got %d", len(templates))
	}
	if templates[0].ID != second.ID || templates[1].ID != first.ID {
		t.Errorf("list should be newest first: got [%s, %s]", templates[0].Name, templates[1].Name)
	}
}

func TestDelete(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	saved, _ := store.Save(ctx, "Card", sampleElements(), 794, 1123)
	if err := store.Delete(ctx, saved.ID); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if err := store.Delete(ctx, saved.ID); err == nil {
		t.Error("double delete should report not found")
	}
}

func TestDirectory_EmptyTables(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	students, err := store.Students(ctx)
	if err != nil {
		t.Fatalf("Students() failed: %v", err)
	}
	if len(students) != 0 {
		t.Errorf("expected no students, got %d", len(students))
	}

	info, err := store.SchoolInfo(ctx)
	if err != nil {
		t.Fatalf("SchoolInfo() failed: %v", err)
	}
	if info == nil {
		t.Error("SchoolInfo() should return empty info, not nil")
	}
}

func TestDirectory_ReadsMasterTables(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	seed := []string{
		`INSERT INTO students (id, name, roll, class, section, guardian) VALUES ('st1', 'Aarav', '17', '8', 'B', 'Ramesh')`,
		`INSERT INTO exams (id, name) VALUES ('ex1', 'Half Yearly 2025')`,
		`INSERT INTO subjects (id, name) VALUES ('sub1', 'Mathematics')`,
		`INSERT INTO marks (student_id, exam_id, subject_id, obj_obtained, obj_max, sub_obtained, sub_max)
			VALUES ('st1', 'ex1', 'sub1', 40, 60, 35, 40)`,
		`INSERT INTO school_info (id, name, address, phone) VALUES (1, 'Sunrise Public School', 'Pune', '000')`,
	}
	for _, sts := range seed {
		if _, err := store.db.ExecContext(ctx, sts); err != nil {
			t.Fatal(err)
		}
	}

	students, err := store.Students(ctx)
	if err != nil || len(students) != 1 {
		t.Fatalf("Students() = %v, %v", students, err)
	}
	if students[0].Name != "Aarav" || students[0].Class != "8" || students[0].Section != "B" {
		t.Errorf("student mismatch: %+v", students[0])
	}

	marks, err := store.StudentMarks(ctx, "st1", "ex1")
	if err != nil || len(marks) != 1 {
		t.Fatalf("StudentMarks() = %v, %v", marks, err)
	}
	if marks[0].ObjObtained != 40 || marks[0].SubMax != 40 {
		t.Errorf("mark record mismatch: %+v", marks[0])
	}

	if marks, _ := store.StudentMarks(ctx, "st1", "other-exam"); len(marks) != 0 {
		t.Errorf("marks should be scoped to the exam, got %d records", len(marks))
	}

	info, err := store.SchoolInfo(ctx)
	if err != nil || info.Name != "Sunrise Public School" {
		t.Errorf("SchoolInfo() = %+v, %v", info, err)
	}
}
