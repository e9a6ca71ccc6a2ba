package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"

	"github.com/sahdevkumar/Result-Management-sub000/core"
)

// core.Directory implementation over the console's master tables.

func (s *Store) Students(ctx context.Context) ([]core.Student, error) {
	rows, err := s.pool.Query(ctx,
		"SELECT id, name, COALESCE(roll, ''), COALESCE(class, ''), COALESCE(section, ''), COALESCE(guardian, '') FROM students ORDER BY class, section, roll")
	if err != nil {
		logrus.WithField("error", err).Error("Failed to list students")
		return nil, err
	}
	defer rows.Close()

	var students []core.Student
	for rows.Next() {
		var st core.Student
		if err := rows.Scan(&st.ID, &st.Name, &st.Roll, &st.Class, &st.Section, &st.Guardian); err != nil {
			return nil, err
		}
		students = append(students, st)
	}
	return students, rows.Err()
}

func (s *Store) Exams(ctx context.Context) ([]core.Exam, error) {
	rows, err := s.pool.Query(ctx, "SELECT id, name FROM exams ORDER BY name")
	if err != nil {
		logrus.WithField("error", err).Error("Failed to list exams")
		return nil, err
	}
	defer rows.Close()

	var exams []core.Exam
	for rows.Next() {
		var e core.Exam
		if err := rows.Scan(&e.ID, &e.Name); err != nil {
			return nil, err
		}
		exams = append(exams, e)
	}
	return exams, rows.Err()
}

func (s *Store) Subjects(ctx context.Context) ([]core.Subject, error) {
	rows, err := s.pool.Query(ctx, "SELECT id, name FROM subjects ORDER BY name")
	if err != nil {
		logrus.WithField("error", err).Error("Failed to list subjects")
		return nil, err
	}
	defer rows.Close()

	var subjects []core.Subject
	for rows.Next() {
		var sub core.Subject
		if err := rows.Scan(&sub.ID, &sub.Name); err != nil {
			return nil, err
		}
		subjects = append(subjects, sub)
	}
	return subjects, rows.Err()
}

func (s *Store) StudentMarks(ctx context.Context, studentID, examID string) ([]core.MarkRecord, error) {
	rows, err := s.pool.Query(ctx,
		"SELECT subject_id, obj_obtained, obj_max, sub_obtained, sub_max FROM marks WHERE student_id = $1 AND exam_id = $2",
		studentID, examID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"student_id": studentID,
			"exam_id":    examID,
			"error":      err,
		}).Error("Failed to fetch student marks")
		return nil, err
	}
	defer rows.Close()

	var marks []core.MarkRecord
	for rows.Next() {
		var m core.MarkRecord
		if err := rows.Scan(&m.SubjectID, &m.ObjObtained, &m.ObjMax, &m.SubObtained, &m.SubMax); err != nil {
			return nil, err
		}
		marks = append(marks, m)
	}
	return marks, rows.Err()
}

func (s *Store) SchoolInfo(ctx context.Context) (*core.SchoolInfo, error) {
	var info core.SchoolInfo
	err := s.pool.QueryRow(ctx,
		"SELECT COALESCE(name, ''), COALESCE(address, ''), COALESCE(phone, '') FROM school_info LIMIT 1").
		Scan(&info.Name, &info.Address, &info.Phone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &core.SchoolInfo{}, nil
		}
		logrus.WithField("error", err).Error("Failed to fetch school info")
		return nil, err
	}
	return &info, nil
}
