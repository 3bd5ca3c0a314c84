package dto

import "educore_backend/internals/features/academics/model"

type CreateCourseRequest struct {
	Code string `json:"code" validate:"required,max=20"`
	Name string `json:"name" validate:"required,max=200"`
}

type CreateSubjectRequest struct {
	SubjectCode string `json:"subject_code" validate:"required,max=20"`
	SubjectName string `json:"subject_name" validate:"required,max=200"`
}

type SubjectResponse struct {
	SubjectCode string `json:"subject_code"`
	SubjectName string `json:"subject_name"`
}

type CourseResponse struct {
	ID       uint              `json:"id"`
	Code     string            `json:"code"`
	Name     string            `json:"name"`
	Subjects []SubjectResponse `json:"subjects"`
}

func FromCourseModel(m model.CourseModel) CourseResponse {
	subjects := make([]SubjectResponse, 0, len(m.Subjects))
	for _, s := range m.Subjects {
		subjects = append(subjects, SubjectResponse{
			SubjectCode: s.SubjectCode,
			SubjectName: s.SubjectName,
		})
	}
	return CourseResponse{
		ID:       m.ID,
		Code:     m.Code,
		Name:     m.Name,
		Subjects: subjects,
	}
}

func FromCourseModels(ms []model.CourseModel) []CourseResponse {
	out := make([]CourseResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromCourseModel(m))
	}
	return out
}

func FromSubjectModels(ms []model.CourseSubjectModel) []SubjectResponse {
	out := make([]SubjectResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, SubjectResponse{
			SubjectCode: m.SubjectCode,
			SubjectName: m.SubjectName,
		})
	}
	return out
}
