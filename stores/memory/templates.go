package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"

	"github.com/sahdevkumar/Result-Management-sub000/core"
)

type templateStore struct {
	mu        sync.RWMutex
	templates map[string]*core.Template
}

// NewTemplateStore returns an in-memory template store. Each instance owns its
// own map; nothing survives a restart.
func NewTemplateStore() core.TemplateStore {
	return &templateStore{
		templates: make(map[string]*core.Template),
	}
}

func (s *templateStore) Save(ctx context.Context, name string, elements []core.Element, width, height int) (*core.Template, error) {
	tpl := &core.Template{
		ID:        ulid.Make().String(),
		Name:      name,
		Width:     width,
		Height:    height,
		CreatedAt: time.Now().UTC(),
		Elements:  cloneElements(elements),
	}

	s.mu.Lock()
	s.templates[tpl.ID] = tpl
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"template_id": tpl.ID,
		"name":        name,
		"elements":    len(tpl.Elements),
	}).Info("Template saved successfully")
	return snapshot(tpl), nil
}

func (s *templateStore) List(ctx context.Context) ([]*core.Template, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	templates := make([]*core.Template, 0, len(s.templates))
	for _, tpl := range s.templates {
		meta := snapshot(tpl)
		meta.Elements = nil
		templates = append(templates, meta)
	}

	sort.Slice(templates, func(i, j int) bool {
		if templates[i].CreatedAt.Equal(templates[j].CreatedAt) {
			return templates[i].ID > templates[j].ID
		}
		return templates[i].CreatedAt.After(templates[j].CreatedAt)
	})

	return templates, nil
}

func (s *templateStore) Get(ctx context.Context, id string) (*core.Template, error) {
	log := logrus.WithField("template_id", id)

	s.mu.RLock()
	tpl, ok := s.templates[id]
	s.mu.RUnlock()

	if !ok {
		log.WithField("error", "template not found").Warn("Template with specified ID not found")
		return nil, fmt.Errorf("template with id %s not found", id)
	}

	log.Info("Template retrieved successfully")
	return snapshot(tpl), nil
}

func (s *templateStore) Delete(ctx context.Context, id string) error {
	log := logrus.WithField("template_id", id)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.templates[id]; !ok {
		return fmt.Errorf("template with id %s not found", id)
	}
	delete(s.templates, id)

	log.Info("Template deleted successfully")
	return nil
}

// snapshot deep-copies a template so stored snapshots stay immutable no matter
// what callers do with what they get back.
func snapshot(tpl *core.Template) *core.Template {
	out := *tpl
	out.Elements = cloneElements(tpl.Elements)
	return &out
}

func cloneElements(elements []core.Element) []core.Element {
	if elements == nil {
		return nil
	}
	out := make([]core.Element, len(elements))
	copy(out, elements)
	return out
}
