package service

import (
	"strings"

	"gorm.io/gorm"

	"educore_backend/internals/features/academics/model"
)

// StudentService owns the students table and, through the cascade in Delete,
// the student's grade rows.
type StudentService struct {
	DB *gorm.DB
}

func NewStudentService(db *gorm.DB) *StudentService {
	return &StudentService{DB: db}
}

// Sort keys accepted by ListStudents. Anything else falls back to
// student_code.
const (
	SortByStudentCode = "student_code"
	SortByName        = "name"
	SortByGWA         = "gwa"
)

func (s *StudentService) CreateStudent(code, name, courseCode string) (*model.StudentModel, error) {
	code = strings.TrimSpace(code)
	name = strings.TrimSpace(name)
	courseCode = strings.TrimSpace(courseCode)

	var out model.StudentModel
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&model.StudentModel{}).
			Where("student_code = ?", code).
			Count(&cnt).Error; err != nil {
			return translateDBError(err)
		}
		if cnt > 0 {
			return ErrDuplicateKey
		}

		if err := courseRefMustExist(tx, courseCode); err != nil {
			return err
		}

		// new students start ungraded; 0.0 is the empty-average sentinel
		out = model.StudentModel{
			StudentCode: code,
			Name:        name,
			CourseCode:  courseCode,
			GWA:         0.0,
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

func (s *StudentService) GetStudent(code string) (*model.StudentModel, error) {
	var m model.StudentModel
	if err := s.DB.
		Where("student_code = ?", code).
		First(&m).Error; err != nil {
		return nil, translateDBError(err)
	}
	return &m, nil
}

// UpdateStudentCourse re-points the student at a new course. Grade rows and
// the GWA are untouched.
func (s *StudentService) UpdateStudentCourse(code, newCourseCode string) (*model.StudentModel, error) {
	newCourseCode = strings.TrimSpace(newCourseCode)

	var out model.StudentModel
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("student_code = ?", code).
			First(&out).Error; err != nil {
			return translateDBError(err)
		}

		if err := courseRefMustExist(tx, newCourseCode); err != nil {
			return err
		}

		if err := tx.Model(&out).
			Update("course_code", newCourseCode).Error; err != nil {
			return translateDBError(err)
		}
		out.CourseCode = newCourseCode
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes the student's grade rows and then the student row in one
// transaction. A crash mid-way rolls back to the pre-delete state.
func (s *StudentService) Delete(code string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&model.StudentModel{}).
			Where("student_code = ?", code).
			Count(&cnt).Error; err != nil {
			return translateDBError(err)
		}
		if cnt == 0 {
			return ErrNotFound
		}

		if err := deleteAllForStudent(tx, code); err != nil {
			return err
		}

		if err := tx.
			Where("student_code = ?", code).
			Delete(&model.StudentModel{}).Error; err != nil {
			return translateDBError(err)
		}
		return nil
	})
}

func (s *StudentService) ListStudents(sortKey string) ([]model.StudentModel, error) {
	order := "student_code ASC"
	switch sortKey {
	case SortByName:
		order = "name ASC, student_code ASC"
	case SortByGWA:
		order = "gwa ASC, student_code ASC"
	case SortByStudentCode, "":
	}

	var students []model.StudentModel
	if err := s.DB.Order(order).Find(&students).Error; err != nil {
		return nil, translateDBError(err)
	}
	return students, nil
}

// courseRefMustExist validates a foreign natural-key target at write time.
func courseRefMustExist(tx *gorm.DB, courseCode string) error {
	var cnt int64
	if err := tx.Model(&model.CourseModel{}).
		Where("code = ?", courseCode).
		Count(&cnt).Error; err != nil {
		return translateDBError(err)
	}
	if cnt == 0 {
		return ErrInvalidReference
	}
	return nil
}
