package reports

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/render"
	"github.com/sirupsen/logrus"

	"github.com/sahdevkumar/Result-Management-sub000/printing"
)

type (
	PreviewRequest struct {
		TemplateID string `json:"template_id"`
		ExamID     string `json:"exam_id"`
		StudentID  string `json:"student_id"`
	}

	PrintRequest struct {
		TemplateID string   `json:"template_id"`
		ExamID     string   `json:"exam_id"`
		StudentIDs []string `json:"student_ids"`
	}
)

// HandlePreview hydrates a single student's page and returns it as JSON.
// An incomplete selection (missing template, exam, or student) is the normal
// idle state: the engine does not run and the response is 204.
func HandlePreview(assembler *printing.Assembler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PreviewRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.WithField("error", err).Error("Failed to decode request")
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		page, err := assembler.BuildPage(r.Context(), req.TemplateID, req.ExamID, req.StudentID)
		if err != nil {
			logrus.WithField("error", err).Error("Failed to build preview page")
			http.Error(w, "Failed to build preview", http.StatusInternalServerError)
			return
		}
		if page == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		render.JSON(w, r, page)
	}
}

// HandlePrint assembles one page per selected student, in selection order,
// and streams the result as a PDF. Pages are discarded once written.
func HandlePrint(assembler *printing.Assembler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PrintRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.WithField("error", err).Error("Failed to decode request")
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		pages, err := assembler.BuildPages(r.Context(), req.TemplateID, req.ExamID, req.StudentIDs)
		if err != nil {
			logrus.WithField("error", err).Error("Failed to assemble print pages")
			http.Error(w, "Failed to assemble print pages", http.StatusInternalServerError)
			return
		}
		if pages == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="report-cards.pdf"`)
		exporter := printing.NewPDFExporter(w)
		if err := exporter.Export(r.Context(), pages); err != nil {
			logrus.WithField("error", err).Error("Failed to export PDF")
			// Headers are already out; nothing sane left to send.
			return
		}
	}
}
