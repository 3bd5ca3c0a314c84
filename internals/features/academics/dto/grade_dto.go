package dto

import (
	"fmt"

	"educore_backend/internals/features/academics/model"
)

type SubmitGradeRequest struct {
	StudentCode string  `json:"student_code" validate:"required,max=20"`
	SubjectCode string  `json:"subject_code" validate:"required,max=20"`
	SubjectName string  `json:"subject_name" validate:"required,max=200"`
	Grade       float64 `json:"grade" validate:"required"`
}

type GradeResponse struct {
	ID             uint    `json:"id"`
	StudentCode    string  `json:"student_code"`
	SubjectCode    string  `json:"subject_code"`
	SubjectName    string  `json:"subject_name"`
	Grade          float64 `json:"grade"`
	Description    string  `json:"description"`
	FormattedGrade string  `json:"formatted_grade"`
}

func FromGradeModel(m model.GradeModel) GradeResponse {
	return GradeResponse{
		ID:             m.ID,
		StudentCode:    m.StudentCode,
		SubjectCode:    m.SubjectCode,
		SubjectName:    m.SubjectName,
		Grade:          m.Grade,
		Description:    GradeDescription(m.Grade),
		FormattedGrade: FormatGrade(m.Grade),
	}
}

func FromGradeModels(ms []model.GradeModel) []GradeResponse {
	out := make([]GradeResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromGradeModel(m))
	}
	return out
}

// GradeDescription maps a grade (or GWA) onto the Philippine grading bands.
// Presentation only; never stored.
func GradeDescription(g float64) string {
	switch {
	case g == 0:
		return "Not yet graded"
	case g == 1.0:
		return "Excellent"
	case g <= 1.75:
		return "Very Good"
	case g <= 2.5:
		return "Good"
	case g <= 3.0:
		return "Satisfactory"
	default:
		return "Failed"
	}
}

func FormatGrade(g float64) string {
	if g == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", g)
}
