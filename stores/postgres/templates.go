package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	stdlog "log"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"

	"github.com/sahdevkumar/Result-Management-sub000/core"
)

// Store persists template snapshots in PostgreSQL and reads the school's
// master tables as the core.Directory, mirroring the sqlite backend for
// deployments that already run the console against Postgres.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(dsn string) *Store {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		stdlog.Fatalf("failed to parse pgx config: %v", err)
	}
	config.MaxConns = 10

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		stdlog.Fatalf("failed to connect pgx pool: %v", err)
	}

	schema := `CREATE TABLE IF NOT EXISTS templates (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		width INTEGER NOT NULL,
		height INTEGER NOT NULL,
		created_at BIGINT NOT NULL,
		elements JSONB NOT NULL
	);`
	if _, err := pool.Exec(ctx, schema); err != nil {
		stdlog.Fatalf("failed to create templates table: %v", err)
	}

	return &Store{pool: pool}
}

func (s *Store) Close() { s.pool.Close() }

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

	_, err = s.pool.Exec(ctx,
		"INSERT INTO templates (id, name, width, height, created_at, elements) VALUES ($1, $2, $3, $4, $5, $6)",
		tpl.ID, tpl.Name, tpl.Width, tpl.Height, tpl.CreatedAt.UnixMilli(), data)
	if err != nil {
		log.WithField("error", err).Error("Failed to save template")
		return nil, err
	}

	log.Info("Template saved successfully")
	return tpl, nil
}

func (s *Store) List(ctx context.Context) ([]*core.Template, error) {
	rows, err := s.pool.Query(ctx,
		"SELECT id, name, width, height, created_at FROM templates ORDER BY created_at DESC, id DESC")
	if err != nil {
		logrus.WithField("error", err).Error("Failed to list templates")
		return nil, err
	}
	defer rows.Close()

	var templates []*core.Template
	for rows.Next() {
		var tpl core.Template
		var createdAt int64
		if err := rows.Scan(&tpl.ID, &tpl.Name, &tpl.Width, &tpl.Height, &createdAt); err != nil {
			return nil, err
		}
		tpl.CreatedAt = time.UnixMilli(createdAt).UTC()
		templates = append(templates, &tpl)
	}
	return templates, rows.Err()
}

func (s *Store) Get(ctx context.Context, id string) (*core.Template, error) {
	log := logrus.WithField("template_id", id)

	var tpl core.Template
	var createdAt int64
	var data []byte
	err := s.pool.QueryRow(ctx,
		"SELECT id, name, width, height, created_at, elements FROM templates WHERE id = $1",
		id).Scan(&tpl.ID, &tpl.Name, &tpl.Width, &tpl.Height, &createdAt, &data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
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

	tag, err := s.pool.Exec(ctx, "DELETE FROM templates WHERE id = $1", id)
	if err != nil {
		log.WithField("error", err).Error("Failed to delete template")
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("template with id %s not found", id)
	}

	log.Info("Template deleted successfully")
	return nil
}
