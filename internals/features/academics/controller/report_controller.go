package controller

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"educore_backend/internals/features/academics/dto"
	"educore_backend/internals/features/academics/service"
	helper "educore_backend/internals/helpers"
)

type ReportController struct {
	Reports *service.ReportService
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{Reports: service.NewReportService(db)}
}

// GET /api/reports/gwa
func (h *ReportController) GWAReport(c *fiber.Ctx) error {
	students, err := h.Reports.GWAReport()
	if err != nil {
		return jsonServiceError(c, err, "Report unavailable")
	}
	out := dto.GWAReportFromStudents(students)
	return helper.JsonList(c, "GWA report", out, len(out))
}

// GET /api/reports/overview
func (h *ReportController) Overview(c *fiber.Ctx) error {
	out, err := h.Reports.Overview()
	if err != nil {
		return jsonServiceError(c, err, "Report unavailable")
	}
	return helper.JsonOK(c, "Overview", out)
}

// GET /api/reports/students-per-course
func (h *ReportController) StudentsPerCourse(c *fiber.Ctx) error {
	out, err := h.Reports.StudentsPerCourse()
	if err != nil {
		return jsonServiceError(c, err, "Report unavailable")
	}
	return helper.JsonList(c, "Students per course", out, len(out))
}

// GET /api/reports/grade-distribution
func (h *ReportController) GradeDistribution(c *fiber.Ctx) error {
	out, err := h.Reports.GradeDistributionReport()
	if err != nil {
		return jsonServiceError(c, err, "Report unavailable")
	}
	return helper.JsonOK(c, "Grade distribution", out)
}

// GET /api/reports/average-gwa-per-course
func (h *ReportController) AverageGWAPerCourse(c *fiber.Ctx) error {
	out, err := h.Reports.AverageGWAPerCourse()
	if err != nil {
		return jsonServiceError(c, err, "Report unavailable")
	}
	return helper.JsonList(c, "Average GWA per course", out, len(out))
}

// GET /api/reports/top-performers?n=5
func (h *ReportController) TopPerformers(c *fiber.Ctx) error {
	n := 5
	if raw := strings.TrimSpace(c.Query("n")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "n must be a positive integer")
		}
		n = parsed
	}

	students, err := h.Reports.TopPerformers(n)
	if err != nil {
		return jsonServiceError(c, err, "Report unavailable")
	}
	out := dto.GWAReportFromStudents(students)
	return helper.JsonList(c, "Top performers", out, len(out))
}
