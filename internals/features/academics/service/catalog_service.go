package service

import (
	"strings"

	"gorm.io/gorm"

	"educore_backend/internals/features/academics/model"
)

// CatalogService owns the courses and course_subjects reference tables. No
// GWA or grade interaction happens here.
type CatalogService struct {
	DB *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{DB: db}
}

func (s *CatalogService) CreateCourse(code, name string) (*model.CourseModel, error) {
	code = strings.TrimSpace(code)
	name = strings.TrimSpace(name)

	var cnt int64
	if err := s.DB.Model(&model.CourseModel{}).
		Where("code = ?", code).
		Count(&cnt).Error; err != nil {
		return nil, translateDBError(err)
	}
	if cnt > 0 {
		return nil, ErrDuplicateKey
	}

	m := model.CourseModel{Code: code, Name: name}
	if err := s.DB.Create(&m).Error; err != nil {
		return nil, translateDBError(err)
	}
	return &m, nil
}

func (s *CatalogService) ListCourses() ([]model.CourseModel, error) {
	var courses []model.CourseModel
	if err := s.DB.
		Preload("Subjects", func(db *gorm.DB) *gorm.DB {
			return db.Order("subject_code ASC")
		}).
		Order("code ASC").
		Find(&courses).Error; err != nil {
		return nil, translateDBError(err)
	}
	return courses, nil
}

func (s *CatalogService) ListSubjects(courseCode string) ([]model.CourseSubjectModel, error) {
	if err := s.courseMustExist(s.DB, courseCode); err != nil {
		return nil, err
	}
	var subjects []model.CourseSubjectModel
	if err := s.DB.
		Where("course_code = ?", courseCode).
		Order("subject_code ASC").
		Find(&subjects).Error; err != nil {
		return nil, translateDBError(err)
	}
	return subjects, nil
}

func (s *CatalogService) CreateSubject(courseCode, subjectCode, subjectName string) (*model.CourseSubjectModel, error) {
	subjectCode = strings.TrimSpace(subjectCode)
	subjectName = strings.TrimSpace(subjectName)

	var out model.CourseSubjectModel
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		// the owning course is a foreign natural-key target here
		if err := s.courseMustExist(tx, courseCode); err != nil {
			if err == ErrNotFound {
				return ErrInvalidReference
			}
			return err
		}

		var cnt int64
		if err := tx.Model(&model.CourseSubjectModel{}).
			Where("course_code = ? AND subject_code = ?", courseCode, subjectCode).
			Count(&cnt).Error; err != nil {
			return translateDBError(err)
		}
		if cnt > 0 {
			return ErrDuplicateKey
		}

		out = model.CourseSubjectModel{
			CourseCode:  courseCode,
			SubjectCode: subjectCode,
			SubjectName: subjectName,
		}
		if err := tx.Create(&out).Error; err != nil {
			return translateDBError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteCourse removes the course and every subject it owns in one
// transaction. Students referencing the code are left alone:
// course deletion never cascaded (or blocked) in that direction, so a
// student may end up pointing at a code that no longer exists.
func (s *CatalogService) DeleteCourse(code string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("course_code = ?", code).
			Delete(&model.CourseSubjectModel{}).Error; err != nil {
			return translateDBError(err)
		}

		res := tx.Where("code = ?", code).Delete(&model.CourseModel{})
		if res.Error != nil {
			return translateDBError(res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (s *CatalogService) courseMustExist(tx *gorm.DB, code string) error {
	var cnt int64
	if err := tx.Model(&model.CourseModel{}).
		Where("code = ?", code).
		Count(&cnt).Error; err != nil {
		return translateDBError(err)
	}
	if cnt == 0 {
		return ErrNotFound
	}
	return nil
}
