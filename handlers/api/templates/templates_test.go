package templates

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sahdevkumar/Result-Management-sub000/core"
)

// Mock template store for testing
type mockTemplateStore struct {
	templates map[string]*core.Template
	saveErr   error
	listErr   error
	getErr    error
	deleteErr error
}

func newMockTemplateStore() *mockTemplateStore {
	return &mockTemplateStore{templates: make(map[string]*core.Template)}
}

func (m *mockTemplateStore) Save(ctx context.Context, name string, elements []core.Element, width, height int) (*core.Template, error) {
	if m.saveErr != nil {
		return nil, m.saveErr
	}
	tpl := &core.Template{
		ID:        fmt.Sprintf("template-%d", len(m.templates)),
		Name:      name,
		Width:     width,
		Height:    height,
		CreatedAt: time.Unix(123456789, 0).UTC(),
		Elements:  elements,
	}
	m.templates[tpl.ID] = tpl
	return tpl, nil
}

func (m *mockTemplateStore) List(ctx context.Context) ([]*core.Template, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []*core.Template
	for _, tpl := range m.templates {
		out = append(out, tpl)
	}
	return out, nil
}

func (m *mockTemplateStore) Get(ctx context.Context, id string) (*core.Template, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	tpl, ok := m.templates[id]
	if !ok {
		return nil, fmt.Errorf("template with id %s not found", id)
	}
	return tpl, nil
}

func (m *mockTemplateStore) Delete(ctx context.Context, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if _, ok := m.templates[id]; !ok {
		return fmt.Errorf("template with id %s not found", id)
	}
	delete(m.templates, id)
	return nil
}

func setupRouter(store core.TemplateStore) *chi.Mux {
	r := chi.NewRouter()
	r.Post("/api/templates", HandleSave(store))
	r.Get("/api/templates", HandleList(store))
	r.Get("/api/templates/{id}", HandleGet(store))
	r.Delete("/api/templates/{id}", HandleDelete(store))
	return r
}

func saveBody(name string, width, height int) *bytes.Buffer {
	body, _ := json.Marshal(SaveTemplateRequest{
		Name:   name,
		Width:  width,
		Height: height,
		Elements: []core.Element{
			{ID: "e1", Kind: core.KindText, X: 10, Y: 10, Width: 200, Height: 40, Content: "{{name}}"},
		},
	})
	return bytes.NewBuffer(body)
}

func TestHandleSave_Success(t *testing.T) {
	store := newMockTemplateStore()
	router := setupRouter(store)

	req := httptest.NewRequest(http.MethodPost, "/api/templates", saveBody("Annual Card", 794, 1123))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", w.Code)
	}

	var tpl core.Template
	if err := json.Unmarshal(w.Body.Bytes(), &tpl); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if tpl.ID == "" || tpl.Name != "Annual Card" {
		t.Errorf("response mismatch: %+v", tpl)
	}
	if len(store.templates) != 1 {
		t.Errorf("template not stored")
	}
}

func TestHandleSave_InvalidBody(t *testing.T) {
	router := setupRouter(newMockTemplateStore())

	req := httptest.NewRequest(http.MethodPost, "/api/templates", strings.NewReader("{not json"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestHandleSave_RequiresName(t *testing.T) {
	router := setupRouter(newMockTemplateStore())

	req := httptest.NewRequest(http.MethodPost, "/api/templates", saveBody("   ", 794, 1123))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestHandleSave_RequiresPositiveDimensions(t *testing.T) {
	router := setupRouter(newMockTemplateStore())

	req := httptest.NewRequest(http.MethodPost, "/api/templates", saveBody("Card", 0, 1123))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestHandleSave_StoreError(t *testing.T) {
	store := newMockTemplateStore()
	store.saveErr = errors.New("disk full")
	router := setupRouter(store)

	req := httptest.NewRequest(http.MethodPost, "/api/templates", saveBody("Card", 794, 1123))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", w.Code)
	}
}

func TestHandleList_Success(t *testing.T) {
	store := newMockTemplateStore()
	store.Save(context.Background(), "one", nil, 794, 1123)
	router := setupRouter(store)

	req := httptest.NewRequest(http.MethodGet, "/api/templates", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var templates []*core.Template
	if err := json.Unmarshal(w.Body.Bytes(), &templates); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(templates) != 1 {
		t.Errorf("expected 1 template, got %d", len(templates))
	}
}

func TestHandleList_EmptyIsArrayNotNull(t *testing.T) {
	router := setupRouter(newMockTemplateStore())

	req := httptest.NewRequest(http.MethodGet, "/api/templates", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if got := strings.TrimSpace(w.Body.String()); got != "[]" {
		t.Errorf("empty list should encode as [], got %q", got)
	}
}

func TestHandleList_StoreError(t *testing.T) {
	store := newMockTemplateStore()
	store.listErr = errors.New("corrupt collection")
	router := setupRouter(store)

	req := httptest.NewRequest(http.MethodGet, "/api/templates", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// A corrupt collection surfaces as a failure, never as an empty list.
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", w.Code)
	}
}

func TestHandleGet_Success(t *testing.T) {
	store := newMockTemplateStore()
	saved, _ := store.Save(context.Background(), "Card", []core.Element{
		{ID: "e1", Kind: core.KindText, Width: 100, Height: 30, Content: "{{roll}}"},
	}, 794, 1123)
	router := setupRouter(store)

	req := httptest.NewRequest(http.MethodGet, "/api/templates/"+saved.ID, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var tpl core.Template
	if err := json.Unmarshal(w.Body.Bytes(), &tpl); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(tpl.Elements) != 1 || tpl.Elements[0].Content != "{{roll}}" {
		t.Errorf("snapshot mismatch: %+v", tpl)
	}
}

func TestHandleGet_NotFound(t *testing.T) {
	router := setupRouter(newMockTemplateStore())

	req := httptest.NewRequest(http.MethodGet, "/api/templates/missing", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}

func TestHandleDelete_Success(t *testing.T) {
	store := newMockTemplateStore()
	saved, _ := store.Save(context.Background(), "Card", nil, 794, 1123)
	router := setupRouter(store)

	req := httptest.NewRequest(http.MethodDelete, "/api/templates/"+saved.ID, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", w.Code)
	}
	if len(store.templates) != 0 {
		t.Errorf("template not deleted")
	}
}

func TestHandleDelete_Error(t *testing.T) {
	store := newMockTemplateStore()
	store.deleteErr = errors.New("boom")
	router := setupRouter(store)

	req := httptest.NewRequest(http.MethodDelete, "/api/templates/anything", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", w.Code)
	}
}
