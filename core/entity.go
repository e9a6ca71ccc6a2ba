package core

import (
	"context"
	"time"
)

// Element kinds. A canvas holds at most one Watermark at a time.
const (
	KindText      = "Text"
	KindImage     = "Image"
	KindWatermark = "Watermark"
)

// MinElementSize is the floor applied to element width and height on resize.
const MinElementSize = 20.0

type (
	// Style holds the presentation attributes of an element. Text elements use
	// every field; image and watermark elements only use Opacity.
	Style struct {
		FontSize       float64 `json:"fontSize,omitempty"`
		FontFamily     string  `json:"fontFamily,omitempty"`
		Color          string  `json:"color,omitempty"`
		FontWeight     string  `json:"fontWeight,omitempty"`
		FontStyle      string  `json:"fontStyle,omitempty"`
		TextDecoration string  `json:"textDecoration,omitempty"`
		Opacity        float64 `json:"opacity"`
		TextAlign      string  `json:"textAlign,omitempty"`
		LineHeight     float64 `json:"lineHeight,omitempty"`
		LetterSpacing  float64 `json:"letterSpacing,omitempty"`
	}

	// Element is one visual unit on a report-card canvas. Position and size are
	// canvas-space pixels, independent of the editor's current zoom factor.
	// For Text elements Content may embed placeholder tokens; for Image and
	// Watermark elements it is an image-data reference.
	Element struct {
		ID      string  `json:"id"`
		Kind    string  `json:"kind"`
		X       float64 `json:"x"`
		Y       float64 `json:"y"`
		Width   float64 `json:"width"`
		Height  float64 `json:"height"`
		Content string  `json:"content"`
		Style   Style   `json:"style"`
	}

	// Template is a named, persisted snapshot of a full canvas. Once saved it is
	// immutable; loading one replaces the editor's working copy wholesale.
	Template struct {
		ID        string    `json:"id"`
		Name      string    `json:"name"`
		Width     int       `json:"width"`
		Height    int       `json:"height"`
		CreatedAt time.Time `json:"createdAt"`
		Elements  []Element `json:"elements"`
	}

	// TemplateStore defines the persistence layer for template snapshots.
	TemplateStore interface {
		// Save appends a new template with a fresh id and timestamp.
		Save(ctx context.Context, name string, elements []Element, width, height int) (*Template, error)

		// List returns metadata for all stored templates, newest first. The
		// returned templates do not carry Elements; use Get for the full snapshot.
		List(ctx context.Context) ([]*Template, error)

		// Get returns the full snapshot for the editor to adopt wholesale.
		Get(ctx context.Context, id string) (*Template, error)

		// Delete removes a template permanently.
		Delete(ctx context.Context, id string) error
	}
)

type (
	Student struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Roll     string `json:"roll"`
		Class    string `json:"class"`
		Section  string `json:"section"`
		Guardian string `json:"guardian"`
	}

	Exam struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}

	Subject struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}

	// MarkRecord is one stored marks entry for a student in an exam. Obtained
	// and max amounts are split into objective and subjective parts.
	MarkRecord struct {
		SubjectID   string  `json:"subjectId"`
		ObjObtained float64 `json:"objObtained"`
		ObjMax      float64 `json:"objMax"`
		SubObtained float64 `json:"subObtained"`
		SubMax      float64 `json:"subMax"`
	}

	SchoolInfo struct {
		Name    string `json:"name"`
		Address string `json:"address"`
		Phone   string `json:"phone"`
	}

	// Directory is the read contract over the school's master data. The CRUD
	// console that writes these records lives outside this module.
	Directory interface {
		Students(ctx context.Context) ([]Student, error)
		Exams(ctx context.Context) ([]Exam, error)
		Subjects(ctx context.Context) ([]Subject, error)
		StudentMarks(ctx context.Context, studentID, examID string) ([]MarkRecord, error)
		SchoolInfo(ctx context.Context) (*SchoolInfo, error)
	}
)
