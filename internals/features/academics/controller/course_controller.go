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

type CourseController struct {
	Catalog *service.CatalogService
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{Catalog: service.NewCatalogService(db)}
}

// POST /api/courses
func (h *CourseController) CreateCourse(c *fiber.Ctx) error {
	var req dto.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	m, err := h.Catalog.CreateCourse(req.Code, req.Name)
	if err != nil {
		return jsonServiceError(c, err, "Course not found")
	}
	return helper.JsonCreated(c, "Course created", dto.FromCourseModel(*m))
}

// GET /api/courses
func (h *CourseController) ListCourses(c *fiber.Ctx) error {
	courses, err := h.Catalog.ListCourses()
	if err != nil {
		return jsonServiceError(c, err, "Course not found")
	}
	out := dto.FromCourseModels(courses)
	return helper.JsonList(c, "Courses fetched", out, len(out))
}

// GET /api/courses/:code/subjects
func (h *CourseController) ListSubjects(c *fiber.Ctx) error {
	code := strings.TrimSpace(c.Params("code"))
	subjects, err := h.Catalog.ListSubjects(code)
	if err != nil {
		return jsonServiceError(c, err, "Course not found")
	}
	out := dto.FromSubjectModels(subjects)
	return helper.JsonList(c, "Subjects fetched", out, len(out))
}

// POST /api/courses/:code/subjects
func (h *CourseController) CreateSubject(c *fiber.Ctx) error {
	code := strings.TrimSpace(c.Params("code"))

	var req dto.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	m, err := h.Catalog.CreateSubject(code, req.SubjectCode, req.SubjectName)
	if err != nil {
		return jsonServiceError(c, err, "Course not found")
	}
	return helper.JsonCreated(c, "Subject created", dto.SubjectResponse{
		SubjectCode: m.SubjectCode,
		SubjectName: m.SubjectName,
	})
}

// DELETE /api/courses/:code
func (h *CourseController) DeleteCourse(c *fiber.Ctx) error {
	code := strings.TrimSpace(c.Params("code"))
	if err := h.Catalog.DeleteCourse(code); err != nil {
		return jsonServiceError(c, err, "Course not found")
	}
	return helper.JsonDeleted(c, "Course deleted", fiber.Map{"code": code})
}
