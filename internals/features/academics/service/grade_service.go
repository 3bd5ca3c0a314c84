package service

import (
	"math"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"educore_backend/internals/features/academics/model"
)

// GradeService is the source of truth the GWA is derived from. Every grade
// mutation and the resulting GWA write for that student commit in the same
// transaction, so no reader ever sees a grade whose GWA has not landed yet.
type GradeService struct {
	DB *gorm.DB
}

func NewGradeService(db *gorm.DB) *GradeService {
	return &GradeService{DB: db}
}

const (
	GradeMin = 1.0
	GradeMax = 5.0
)

// SubmitGrade upserts the (student, subject) row and recomputes the student's
// GWA before returning. The student row is locked for the duration of the
// transaction so two concurrent submissions for the same student serialize and
// the second recomputation sees both grades.
func (s *GradeService) SubmitGrade(studentCode, subjectCode, subjectName string, grade float64) (*model.GradeModel, error) {
	subjectCode = strings.TrimSpace(subjectCode)
	subjectName = strings.TrimSpace(subjectName)

	if grade < GradeMin || grade > GradeMax {
		return nil, ErrOutOfRange
	}
	grade = math.Round(grade*100) / 100

	var out model.GradeModel
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := lockStudentRow(tx, studentCode); err != nil {
			return err
		}

		row := model.GradeModel{
			StudentCode: studentCode,
			SubjectCode: subjectCode,
			SubjectName: subjectName,
			Grade:       grade,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "student_code"}, {Name: "subject_code"}},
			DoUpdates: clause.AssignmentColumns([]string{"grade", "subject_name", "updated_at"}),
		}).Create(&row).Error; err != nil {
			return translateDBError(err)
		}

		if err := recomputeGWA(tx, studentCode); err != nil {
			return err
		}

		if err := tx.
			Where("student_code = ? AND subject_code = ?", studentCode, subjectCode).
			First(&out).Error; err != nil {
			return translateDBError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *GradeService) GetGrades(studentCode string) ([]model.GradeModel, error) {
	var cnt int64
	if err := s.DB.Model(&model.StudentModel{}).
		Where("student_code = ?", studentCode).
		Count(&cnt).Error; err != nil {
		return nil, translateDBError(err)
	}
	if cnt == 0 {
		return nil, ErrNotFound
	}

	var grades []model.GradeModel
	if err := s.DB.
		Where("student_code = ?", studentCode).
		Order("subject_code ASC").
		Find(&grades).Error; err != nil {
		return nil, translateDBError(err)
	}
	return grades, nil
}

// deleteAllForStudent is only reached through the student-delete cascade; it
// runs inside the caller's transaction.
func deleteAllForStudent(tx *gorm.DB, studentCode string) error {
	if err := tx.
		Where("student_code = ?", studentCode).
		Delete(&model.GradeModel{}).Error; err != nil {
		return translateDBError(err)
	}
	return nil
}

// recomputeGWA writes the unweighted mean of the student's current grade rows
// into students.gwa, 0.0 when no rows exist. Subjects count once each; credit
// units are not modeled.
func recomputeGWA(tx *gorm.DB, studentCode string) error {
	var avg float64
	if err := tx.Model(&model.GradeModel{}).
		Where("student_code = ?", studentCode).
		Select("COALESCE(AVG(grade), 0)").
		Scan(&avg).Error; err != nil {
		return translateDBError(err)
	}

	if err := tx.Model(&model.StudentModel{}).
		Where("student_code = ?", studentCode).
		Update("gwa", avg).Error; err != nil {
		return translateDBError(err)
	}
	return nil
}

// lockStudentRow verifies the student exists and takes a row-level lock on it.
// SQLite (used by the tests) has no SELECT ... FOR UPDATE; its single-writer
// transaction lock gives the same serialization there.
func lockStudentRow(tx *gorm.DB, studentCode string) error {
	q := tx
	if tx.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var m model.StudentModel
	if err := q.
		Where("student_code = ?", studentCode).
		First(&m).Error; err != nil {
		return translateDBError(err)
	}
	return nil
}
