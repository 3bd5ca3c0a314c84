package dto

import "educore_backend/internals/features/academics/model"

type GWAReportRow struct {
	StudentCode  string  `json:"student_code"`
	Name         string  `json:"name"`
	CourseCode   string  `json:"course_code"`
	GWA          float64 `json:"gwa"`
	Description  string  `json:"description"`
	FormattedGWA string  `json:"formatted_gwa"`
}

func GWAReportFromStudents(ms []model.StudentModel) []GWAReportRow {
	out := make([]GWAReportRow, 0, len(ms))
	for _, m := range ms {
		out = append(out, GWAReportRow{
			StudentCode:  m.StudentCode,
			Name:         m.Name,
			CourseCode:   m.CourseCode,
			GWA:          m.GWA,
			Description:  GradeDescription(m.GWA),
			FormattedGWA: FormatGrade(m.GWA),
		})
	}
	return out
}
