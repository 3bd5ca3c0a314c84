package controller

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	qrcode "github.com/skip2/go-qrcode"
	"gorm.io/gorm"

	"educore_backend/internals/features/academics/service"
	helper "educore_backend/internals/helpers"
)

type QRController struct {
	Students *service.StudentService
}

func NewQRController(db *gorm.DB) *QRController {
	return &QRController{Students: service.NewStudentService(db)}
}

// GET /api/students/:code/qr?size=256
// The payload is the bare student_code; scanners feed it straight back into
// the student endpoints.
func (h *QRController) StudentQR(c *fiber.Ctx) error {
	code := strings.TrimSpace(c.Params("code"))

	if _, err := h.Students.GetStudent(code); err != nil {
		return jsonServiceError(c, err, "Student not found")
	}

	size := 256
	if raw := strings.TrimSpace(c.Query("size")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 64 || parsed > 1024 {
			return helper.JsonError(c, fiber.StatusBadRequest, "size must be between 64 and 1024")
		}
		size = parsed
	}

	png, err := qrcode.Encode(code, qrcode.Medium, size)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to render QR")
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}
