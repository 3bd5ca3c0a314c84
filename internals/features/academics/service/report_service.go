package service

import (
	"gorm.io/gorm"

	"educore_backend/internals/features/academics/model"
)

// ReportService computes read-only cross-entity views. Every report runs in
// its own read transaction so it sees one consistent snapshot across the
// students, grades and courses tables.
type ReportService struct {
	DB *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{DB: db}
}

type Overview struct {
	TotalStudents  int64   `json:"total_students"`
	AverageGWA     float64 `json:"average_gwa"`
	ExcellentCount int64   `json:"excellent_count"`
}

type CourseCount struct {
	CourseCode string `json:"course_code"`
	Count      int64  `json:"count"`
}

type CourseAverage struct {
	CourseCode string  `json:"course_code"`
	AverageGWA float64 `json:"average_gwa"`
}

type GradeDistribution struct {
	Excellent    int64 `json:"excellent"`
	VeryGood     int64 `json:"very_good"`
	Good         int64 `json:"good"`
	Satisfactory int64 `json:"satisfactory"`
	Failed       int64 `json:"failed"`
}

// GWAReport lists every student ordered by GWA ascending; on this scale a
// lower GWA is the better one.
func (s *ReportService) GWAReport() ([]model.StudentModel, error) {
	var students []model.StudentModel
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return tx.
			Order("gwa ASC, student_code ASC").
			Find(&students).Error
	})
	if err != nil {
		return nil, translateDBError(err)
	}
	return students, nil
}

func (s *ReportService) Overview() (*Overview, error) {
	var out Overview
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.StudentModel{}).
			Count(&out.TotalStudents).Error; err != nil {
			return err
		}
		if out.TotalStudents > 0 {
			if err := tx.Model(&model.StudentModel{}).
				Select("COALESCE(AVG(gwa), 0)").
				Scan(&out.AverageGWA).Error; err != nil {
				return err
			}
		}
		// ungraded students sit at the 0.0 sentinel; they are not "excellent"
		return tx.Model(&model.StudentModel{}).
			Where("gwa > 0 AND gwa <= ?", 1.75).
			Count(&out.ExcellentCount).Error
	})
	if err != nil {
		return nil, translateDBError(err)
	}
	return &out, nil
}

func (s *ReportService) StudentsPerCourse() ([]CourseCount, error) {
	var out []CourseCount
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Model(&model.StudentModel{}).
			Select("course_code, COUNT(*) AS count").
			Group("course_code").
			Order("course_code ASC").
			Scan(&out).Error
	})
	if err != nil {
		return nil, translateDBError(err)
	}
	return out, nil
}

// GradeDistributionReport buckets every grade row into the five bands of the
// Philippine grading scale.
func (s *ReportService) GradeDistributionReport() (*GradeDistribution, error) {
	var out GradeDistribution
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		buckets := []struct {
			dst  *int64
			cond string
			args []interface{}
		}{
			{&out.Excellent, "grade = ?", []interface{}{1.0}},
			{&out.VeryGood, "grade > ? AND grade <= ?", []interface{}{1.0, 1.75}},
			{&out.Good, "grade > ? AND grade <= ?", []interface{}{1.75, 2.5}},
			{&out.Satisfactory, "grade > ? AND grade <= ?", []interface{}{2.5, 3.0}},
			{&out.Failed, "grade > ?", []interface{}{3.0}},
		}
		for _, b := range buckets {
			if err := tx.Model(&model.GradeModel{}).
				Where(b.cond, b.args...).
				Count(b.dst).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, translateDBError(err)
	}
	return &out, nil
}

func (s *ReportService) AverageGWAPerCourse() ([]CourseAverage, error) {
	var out []CourseAverage
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Model(&model.StudentModel{}).
			Select("course_code, AVG(gwa) AS average_gwa").
			Group("course_code").
			Order("course_code ASC").
			Scan(&out).Error
	})
	if err != nil {
		return nil, translateDBError(err)
	}
	return out, nil
}

// TopPerformers returns the n graded students with the lowest GWA, ties broken
// by student_code. Ungraded students (sentinel 0.0) are skipped.
func (s *ReportService) TopPerformers(n int) ([]model.StudentModel, error) {
	if n <= 0 {
		return []model.StudentModel{}, nil
	}
	var students []model.StudentModel
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return tx.
			Where("gwa > 0").
			Order("gwa ASC, student_code ASC").
			Limit(n).
			Find(&students).Error
	})
	if err != nil {
		return nil, translateDBError(err)
	}
	return students, nil
}
