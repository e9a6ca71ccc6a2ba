package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	stdlog "log"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"

	"github.com/sahdevkumar/Result-Management-sub000/core"
)

// Store persists template snapshots in SQLite and doubles as the read-only
// core.Directory over the school's master tables. The console application that
// writes students/exams/subjects/marks maintains those tables; this module
// only reads them.
type Store struct {
	db *sql.DB
}

func NewStore(dataSourceName string) *Store {
	db, err := sql.Open("sqlite3", dataSourceName)
	if err != nil {
		stdlog.Fatal(err)
	}

	statements := []string{
		`CREATE TABLE IF NOT EXISTS templates (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			created_at INTEGER NOT NULL,
			elements BLOB NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS students (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			roll TEXT,
			class TEXT,
			section TEXT,
			guardian TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS exams (id TEXT PRIMARY KEY, name TEXT NOT NULL);`,
		`CREATE TABLE IF NOT EXISTS subjects (id TEXT PRIMARY KEY, name TEXT NOT NULL);`,
		`CREATE TABLE IF NOT EXISTS marks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			student_id TEXT NOT NULL,
			exam_id TEXT NOT NULL,
			subject_id TEXT NOT NULL,
			obj_obtained REAL NOT NULL DEFAULT 0,
			obj_max REAL NOT NULL DEFAULT 0,
			sub_obtained REAL NOT NULL DEFAULT 0,
			sub_max REAL NOT NULL DEFAULT 0
		);`,
		`CREATE INDEX IF NOT EXISTS idx_marks_student_exam ON marks (student_id, exam_id);`,
		`CREATE TABLE IF NOT EXISTS school_info (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			name TEXT,
			address TEXT,
			phone TEXT
		);`,
	}
	for _, sts := range statements {
		if _, err := db.Exec(sts); err != nil {
			stdlog.Fatal(err)
		}
	}

	return &Store{db}
}

func (s *Store) Save(ctx context.Context, name string, elements []core.Element, width, height int) (*core.Template, error) {
	tpl := &core.Template{
		ID:        ulid.Make().String(),
		Name:      name,
		Width:     width,
		Height:    height,
		CreatedAt: time.Now().UTC(),
		Elements:  elements,
	}
	log := logrus.WithFields(logrus.Fields{
		"template_id": tpl.ID,
		"name":        name,
	})

	data, err := json.Marshal(tpl.Elements)
	if err != nil {
		log.WithField("error", err).Error("Failed to marshal template elements")
		return nil, err
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO templates (id, name, width, height, created_at, elements) VALUES (?, ?, ?, ?, ?, ?)",
		tpl.ID, tpl.Name, tpl.Width, tpl.Height, tpl.CreatedAt.UnixMilli(), data)
	if err != nil {
		log.WithField("error", err).Error("Failed to save template")
		return nil, err
	}

	log.Info("Template saved successfully")
	return tpl, nil
}

func (s *Store) List(ctx context.Context) ([]*core.Template, error) {
	log := logrus.WithField("op", "list_templates")

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, width, height, created_at FROM templates ORDER BY created_at DESC, id DESC")
	if err != nil {
		log.WithField("error", err).Error("Failed to list templates")
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			log.WithError(cerr).Warn("Failed to close template rows")
		}
	}()

	var templates []*core.Template
	for rows.Next() {
		var tpl core.Template
		var createdAt int64
		if err := rows.Scan(&tpl.ID, &tpl.Name, &tpl.Width, &tpl.Height, &createdAt); err != nil {
			log.WithField("error", err).Error("Failed to scan template")
			return nil, err
		}
		tpl.CreatedAt = time.UnixMilli(createdAt).UTC()
		templates = append(templates, &tpl)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	log.Info("Templates listed successfully")
	return templates, nil
}

func (s *Store) Get(ctx context.Context, id string) (*core.Template, error) {
	log := logrus.WithField("template_id", id)

	var tpl core.Template
	var createdAt int64
	var data []byte
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, width, height, created_at, elements FROM templates WHERE id = ?",
		id).Scan(&tpl.ID, &tpl.Name, &tpl.Width, &tpl.Height, &createdAt, &data)
	if err != nil {
		if err == sql.ErrNoRows {
			log.WithField("error", "template not found").Warn("Template with specified ID not found")
			return nil, fmt.Errorf("template with id %s not found", id)
		}
		log.WithField("error", err).Error("Failed to retrieve template")
		return nil, err
	}
	tpl.CreatedAt = time.UnixMilli(createdAt).UTC()

	if err := json.Unmarshal(data, &tpl.Elements); err != nil {
		log.WithField("error", err).Error("Corrupt template elements")
		return nil, fmt.Errorf("parse template %s: %w", id, err)
	}

	log.Info("Template retrieved successfully")
	return &tpl, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	log := logrus.WithField("template_id", id)

	result, err := s.db.ExecContext(ctx, "DELETE FROM templates WHERE id = ?", id)
	if err != nil {
		log.WithField("error", err).Error("Failed to delete template")
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("template with id %s not found", id)
	}

	log.Info("Template deleted successfully")
	return nil
}
