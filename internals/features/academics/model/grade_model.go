package model

import "time"

// One row per (student_code, subject_code); repeat submissions update in
// place via ON CONFLICT, they never insert a second row.
type GradeModel struct {
	ID          uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	StudentCode string    `gorm:"column:student_code;type:varchar(20);not null;uniqueIndex:uq_student_subject" json:"student_code"`
	SubjectCode string    `gorm:"column:subject_code;type:varchar(20);not null;uniqueIndex:uq_student_subject" json:"subject_code"`
	SubjectName string    `gorm:"column:subject_name;type:varchar(200);not null" json:"subject_name"`
	Grade       float64   `gorm:"column:grade;not null" json:"grade"`
	CreatedAt   time.Time `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null;autoUpdateTime" json:"updated_at"`
}

func (GradeModel) TableName() string { return "grades" }
