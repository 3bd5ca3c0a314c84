package model

import "time"

type CourseSubjectModel struct {
	ID          uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CourseCode  string    `gorm:"column:course_code;type:varchar(20);not null;uniqueIndex:uq_course_subject" json:"course_code"`
	SubjectCode string    `gorm:"column:subject_code;type:varchar(20);not null;uniqueIndex:uq_course_subject" json:"subject_code"`
	SubjectName string    `gorm:"column:subject_name;type:varchar(200);not null" json:"subject_name"`
	CreatedAt   time.Time `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
}

func (CourseSubjectModel) TableName() string { return "course_subjects" }
