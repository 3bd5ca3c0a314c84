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

type StudentController struct {
	Students *service.StudentService
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{Students: service.NewStudentService(db)}
}

// POST /api/students
func (h *StudentController) CreateStudent(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	m, err := h.Students.CreateStudent(req.StudentCode, req.Name, req.CourseCode)
	if err != nil {
		return jsonServiceError(c, err, "Student not found")
	}
	return helper.JsonCreated(c, "Student created", dto.FromStudentModel(*m))
}

// GET /api/students?sort=student_code|name|gwa
func (h *StudentController) ListStudents(c *fiber.Ctx) error {
	students, err := h.Students.ListStudents(strings.TrimSpace(c.Query("sort")))
	if err != nil {
		return jsonServiceError(c, err, "Student not found")
	}
	out := dto.FromStudentModels(students)
	return helper.JsonList(c, "Students fetched", out, len(out))
}

// GET /api/students/:code
func (h *StudentController) GetStudent(c *fiber.Ctx) error {
	code := strings.TrimSpace(c.Params("code"))
	m, err := h.Students.GetStudent(code)
	if err != nil {
		return jsonServiceError(c, err, "Student not found")
	}
	return helper.JsonOK(c, "Student found", dto.FromStudentModel(*m))
}

// PUT /api/students/:code
func (h *StudentController) UpdateStudentCourse(c *fiber.Ctx) error {
	code := strings.TrimSpace(c.Params("code"))

	var req dto.UpdateStudentCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	m, err := h.Students.UpdateStudentCourse(code, req.CourseCode)
	if err != nil {
		return jsonServiceError(c, err, "Student not found")
	}
	return helper.JsonUpdated(c, "Student updated", dto.FromStudentModel(*m))
}

// DELETE /api/students/:code
func (h *StudentController) DeleteStudent(c *fiber.Ctx) error {
	code := strings.TrimSpace(c.Params("code"))
	if err := h.Students.Delete(code); err != nil {
		return jsonServiceError(c, err, "Student not found")
	}
	return helper.JsonDeleted(c, "Student deleted", fiber.Map{"student_code": code})
}
