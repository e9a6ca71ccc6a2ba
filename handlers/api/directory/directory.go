// Package directory exposes the school's master data read contract so the
// console UI can populate its template/exam/student pickers.
package directory

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/sirupsen/logrus"

	"github.com/sahdevkumar/Result-Management-sub000/core"
)

func HandleListStudents(dir core.Directory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		students, err := dir.Students(r.Context())
		if err != nil {
			logrus.WithField("error", err).Error("Failed to list students")
			http.Error(w, "Failed to list students", http.StatusInternalServerError)
			return
		}
		if students == nil {
			students = []core.Student{}
		}
		render.JSON(w, r, students)
	}
}

func HandleListExams(dir core.Directory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		exams, err := dir.Exams(r.Context())
		if err != nil {
			logrus.WithField("error", err).Error("Failed to list exams")
			http.Error(w, "Failed to list exams", http.StatusInternalServerError)
			return
		}
		if exams == nil {
			exams = []core.Exam{}
		}
		render.JSON(w, r, exams)
	}
}

func HandleListSubjects(dir core.Directory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subjects, err := dir.Subjects(r.Context())
		if err != nil {
			logrus.WithField("error", err).Error("Failed to list subjects")
			http.Error(w, "Failed to list subjects", http.StatusInternalServerError)
			return
		}
		if subjects == nil {
			subjects = []core.Subject{}
		}
		render.JSON(w, r, subjects)
	}
}

func HandleGetSchoolInfo(dir core.Directory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		info, err := dir.SchoolInfo(r.Context())
		if err != nil {
			logrus.WithField("error", err).Error("Failed to get school info")
			http.Error(w, "Failed to get school info", http.StatusInternalServerError)
			return
		}
		render.JSON(w, r, info)
	}
}
