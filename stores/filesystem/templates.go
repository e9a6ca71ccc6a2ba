package filesystem

import (
	"context"
	"encoding/json"
	"fmt"
	stdlog "log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"

	"github.com/sahdevkumar/Result-Management-sub000/core"
)

type templateStore struct {
	basePath string
}

// NewTemplateStore returns a template store keeping one JSON file per template
// under basePath.
func NewTemplateStore(basePath string) core.TemplateStore {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		stdlog.Fatalf("failed to create base directory: %v", err)
	}
	return &templateStore{basePath: basePath}
}

func (s *templateStore) path(id string) string {
	return filepath.Join(s.basePath, id+".json")
}

func (s *templateStore) Save(ctx context.Context, name string, elements []core.Element, width, height int) (*core.Template, error) {
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
		"file_path":   s.path(tpl.ID),
	})

	data, err := json.Marshal(tpl)
	if err != nil {
		log.WithError(err).Error("Failed to marshal template")
		return nil, err
	}
	if err := os.WriteFile(s.path(tpl.ID), data, 0644); err != nil {
		log.WithError(err).Error("Failed to write template file")
		return nil, err
	}

	log.Info("Template saved successfully")
	return tpl, nil
}

func (s *templateStore) List(ctx context.Context) ([]*core.Template, error) {
	log := logrus.WithField("base_path", s.basePath)

	files, err := os.ReadDir(s.basePath)
	if err != nil {
		log.WithError(err).Error("Failed to read template directory")
		return nil, err
	}

	templates := make([]*core.Template, 0, len(files))
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.basePath, file.Name()))
		if err != nil {
			log.WithError(err).Error("Failed to read template file")
			return nil, err
		}
		var tpl core.Template
		if err := json.Unmarshal(data, &tpl); err != nil {
			// A corrupt collection is a data-loss risk; report it instead of
			// quietly shrinking the list.
			log.WithError(err).WithField("file", file.Name()).Error("Corrupt template file")
			return nil, fmt.Errorf("parse template file %s: %w", file.Name(), err)
		}
		tpl.Elements = nil
		templates = append(templates, &tpl)
	}

	sort.Slice(templates, func(i, j int) bool {
		if templates[i].CreatedAt.Equal(templates[j].CreatedAt) {
			return templates[i].ID > templates[j].ID
		}
		return templates[i].CreatedAt.After(templates[j].CreatedAt)
	})

	log.Infof("Listed %d templates", len(templates))
	return templates, nil
}

func (s *templateStore) Get(ctx context.Context, id string) (*core.Template, error) {
	log := logrus.WithField("template_id", id)

	data, err := os.ReadFile(s.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			log.WithField("error", "template not found").Warn("Template with specified ID not found")
			return nil, fmt.Errorf("template with id %s not found", id)
		}
		log.WithError(err).Error("Failed to read template file")
		return nil, err
	}

	var tpl core.Template
	if err := json.Unmarshal(data, &tpl); err != nil {
		log.WithError(err).Error("Corrupt template file")
		return nil, fmt.Errorf("parse template %s: %w", id, err)
	}

	log.Info("Template retrieved successfully")
	return &tpl, nil
}

func (s *templateStore) Delete(ctx context.Context, id string) error {
	log := logrus.WithField("template_id", id)

	if err := os.Remove(s.path(id)); err != nil {
		if os.IsNotExist(err) {
			log.Warn("Template with specified ID not found")
			return fmt.Errorf("template with id %s not found", id)
		}
		log.WithError(err).Error("Failed to delete template file")
		return err
	}

	log.Info("Template deleted successfully")
	return nil
}
