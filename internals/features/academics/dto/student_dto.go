package dto

import (
	"time"

	"educore_backend/internals/features/academics/model"
)

type CreateStudentRequest struct {
	StudentCode string `json:"student_code" validate:"required,max=20"`
	Name        string `json:"name" validate:"required,max=100"`
	CourseCode  string `json:"course_code" validate:"required,max=20"`
}

type UpdateStudentCourseRequest struct {
	CourseCode string `json:"course_code" validate:"required,max=20"`
}

type StudentResponse struct {
	ID           uint      `json:"id"`
	StudentCode  string    `json:"student_code"`
	Name         string    `json:"name"`
	CourseCode   string    `json:"course_code"`
	GWA          float64   `json:"gwa"`
	Description  string    `json:"description"`
	FormattedGWA string    `json:"formatted_gwa"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromStudentModel(m model.StudentModel) StudentResponse {
	return StudentResponse{
		ID:           m.ID,
		StudentCode:  m.StudentCode,
		Name:         m.Name,
		CourseCode:   m.CourseCode,
		GWA:          m.GWA,
		Description:  GradeDescription(m.GWA),
		FormattedGWA: FormatGrade(m.GWA),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func FromStudentModels(ms []model.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromStudentModel(m))
	}
	return out
}
