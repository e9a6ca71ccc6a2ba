package sqlite

import (
	"context"
	"database/sql"

	"github.com/sirupsen/logrus"

	"github.com/sahdevkumar/Result-Management-sub000/core"
)

// core.Directory implementation.

func (s *Store) Students(ctx context.Context) ([]core.Student, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, roll, class, section, guardian FROM students ORDER BY class, section, roll")
	if err != nil {
		logrus.WithField("error", err).Error("Failed to list students")
		return nil, err
	}
	defer rows.Close()

	var students []core.Student
	for rows.Next() {
		var st core.Student
		var roll, class, section, guardian sql.NullString
		if err := rows.Scan(&st.ID, &st.Name, &roll, &class, &section, &guardian); err != nil {
			return nil, err
		}
		st.Roll = roll.String
		st.Class = class.String
		st.Section = section.String
		st.Guardian = guardian.String
		students = append(students, st)
	}
	return students, rows.Err()
}

func (s *Store) Exams(ctx context.Context) ([]core.Exam, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name FROM exams ORDER BY name")
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
	rows, err := s.db.QueryContext(ctx, "SELECT id, name FROM subjects ORDER BY name")
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
	rows, err := s.db.QueryContext(ctx,
		"SELECT subject_id, obj_obtained, obj_max, sub_obtained, sub_max FROM marks WHERE student_id = ? AND exam_id = ?",
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
	var name, address, phone sql.NullString
	err := s.db.QueryRowContext(ctx,
		"SELECT name, address, phone FROM school_info WHERE id = 1").Scan(&name, &address, &phone)
	if err != nil {
		if err == sql.ErrNoRows {
			return &core.SchoolInfo{}, nil
		}
		logrus.WithField("error", err).Error("Failed to fetch school info")
		return nil, err
	}
	info.Name = name.String
	info.Address = address.String
	info.Phone = phone.String
	return &info, nil
}
