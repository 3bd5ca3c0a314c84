package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"educore_backend/internals/features/academics/dto"
	"educore_backend/internals/features/academics/service"
	helper "educore_backend/internals/helpers"
)

type GradeController struct {
	Grades *service.GradeService
}

func NewGradeController(db *gorm.DB) *GradeController {
	return &GradeController{Grades: service.NewGradeService(db)}
}

// POST /api/grades
// Repeat submissions for the same (student, subject) update the existing row.
func (h *GradeController) SubmitGrade(c *fiber.Ctx) error {
	var req dto.SubmitGradeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	m, err := h.Grades.SubmitGrade(req.StudentCode, req.SubjectCode, req.SubjectName, req.Grade)
	if err != nil {
		return jsonServiceError(c, err, "Student not found")
	}
	return helper.JsonCreated(c, "Grade recorded", dto.FromGradeModel(*m))
}

// GET /api/grades/:student_code
func (h *GradeController) GetStudentGrades(c *fiber.Ctx) error {
	code := strings.TrimSpace(c.Params("student_code"))
	grades, err := h.Grades.GetGrades(code)
	if err != nil {
		return jsonServiceError(c, err, "Student not found")
	}
	out := dto.FromGradeModels(grades)
	return helper.JsonList(c, "Grades fetched", out, len(out))
}
