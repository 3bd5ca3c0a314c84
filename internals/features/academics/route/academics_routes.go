package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	academicsController "educore_backend/internals/features/academics/controller"
)

// PublicAcademicsRoutes: read-only endpoints the GUI polls without a token.
func PublicAcademicsRoutes(api fiber.Router, db *gorm.DB) {
	courseCtrl := academicsController.NewCourseController(db)
	studentCtrl := academicsController.NewStudentController(db)
	gradeCtrl := academicsController.NewGradeController(db)
	reportCtrl := academicsController.NewReportController(db)
	qrCtrl := academicsController.NewQRController(db)

	api.Get("/courses", courseCtrl.ListCourses)
	api.Get("/courses/:code/subjects", courseCtrl.ListSubjects)

	api.Get("/students", studentCtrl.ListStudents)
	api.Get("/students/:code", studentCtrl.GetStudent)
	api.Get("/students/:code/qr", qrCtrl.StudentQR)

	api.Get("/grades/:student_code", gradeCtrl.GetStudentGrades)

	reports := api.Group("/reports")
	reports.Get("/gwa", reportCtrl.GWAReport)
	reports.Get("/overview", reportCtrl.Overview)
	reports.Get("/students-per-course", reportCtrl.StudentsPerCourse)
	reports.Get("/grade-distribution", reportCtrl.GradeDistribution)
	reports.Get("/average-gwa-per-course", reportCtrl.AverageGWAPerCourse)
	reports.Get("/top-performers", reportCtrl.TopPerformers)
}

// ProtectedAcademicsRoutes: every mutating operation sits behind the JWT
// guard.
func ProtectedAcademicsRoutes(api fiber.Router, db *gorm.DB) {
	courseCtrl := academicsController.NewCourseController(db)
	studentCtrl := academicsController.NewStudentController(db)
	gradeCtrl := academicsController.NewGradeController(db)

	api.Post("/courses", courseCtrl.CreateCourse)
	api.Post("/courses/:code/subjects", courseCtrl.CreateSubject)
	api.Delete("/courses/:code", courseCtrl.DeleteCourse)

	api.Post("/students", studentCtrl.CreateStudent)
	api.Put("/students/:code", studentCtrl.UpdateStudentCourse)
	api.Delete("/students/:code", studentCtrl.DeleteStudent)

	api.Post("/grades", gradeCtrl.SubmitGrade)
}
