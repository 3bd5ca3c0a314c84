package model

import "time"

// StudentModel references its course by natural code, not by surrogate id;
// QR payloads and reports address students and courses by code. There is
// no DB foreign key on course_code: deleting a course leaves its students
// untouched, and a constraint would block that.
type StudentModel struct {
	ID          uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	StudentCode string    `gorm:"column:student_code;type:varchar(20);not null;uniqueIndex:uq_students_code" json:"student_code"`
	Name        string    `gorm:"column:name;type:varchar(100);not null" json:"name"`
	CourseCode  string    `gorm:"column:course_code;type:varchar(20);not null;index" json:"course_code"`
	GWA         float64   `gorm:"column:gwa;not null;default:0" json:"gwa"`
	CreatedAt   time.Time `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null;autoUpdateTime" json:"updated_at"`

	Grades []GradeModel `gorm:"foreignKey:StudentCode;references:StudentCode" json:"grades,omitempty"`
}

func (StudentModel) TableName() string { return "students" }
