package templates

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/sirupsen/logrus"

	"github.com/sahdevkumar/Result-Management-sub000/core"
)

type (
	SaveTemplateRequest struct {
		Name     string         `json:"name"`
		Width    int            `json:"width"`
		Height   int            `json:"height"`
		Elements []core.Element `json:"elements"`
	}
)

// HandleSave persists a new template snapshot under a user-supplied name.
func HandleSave(store core.TemplateStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SaveTemplateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.WithField("error", err).Error("Failed to decode request")
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.Name) == "" {
			http.Error(w, "Template name is required", http.StatusBadRequest)
			return
		}
		if req.Width <= 0 || req.Height <= 0 {
			http.Error(w, "Canvas dimensions must be positive", http.StatusBadRequest)
			return
		}

		tpl, err := store.Save(r.Context(), req.Name, req.Elements, req.Width, req.Height)
		if err != nil {
			logrus.WithField("error", err).Error("Failed to save template")
			http.Error(w, "Failed to save template", http.StatusInternalServerError)
			return
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, tpl)
	}
}

// HandleList lists stored template metadata, newest first.
func HandleList(store core.TemplateStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		templates, err := store.List(r.Context())
		if err != nil {
			logrus.WithField("error", err).Error("Failed to list templates")
			http.Error(w, "Failed to list templates", http.StatusInternalServerError)
			return
		}

		if templates == nil {
			templates = []*core.Template{}
		}

		render.JSON(w, r, templates)
	}
}

// HandleGet returns the full snapshot for the editor to adopt wholesale.
func HandleGet(store core.TemplateStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		tpl, err := store.Get(r.Context(), id)
		if err != nil {
			logrus.WithField("error", err).Error("Failed to get template")
			http.Error(w, "Template not found", http.StatusNotFound)
			return
		}

		render.JSON(w, r, tpl)
	}
}

// HandleDelete removes a template permanently. The confirmation prompt lives
// in the console UI; by the time this is called the intent is confirmed.
func HandleDelete(store core.TemplateStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		if err := store.Delete(r.Context(), id); err != nil {
			logrus.WithField("error", err).Error("Failed to delete template")
			http.Error(w, "Failed to delete template", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
