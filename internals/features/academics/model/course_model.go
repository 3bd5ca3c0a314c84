package model

import "time"

type CourseModel struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Code      string    `gorm:"column:code;type:varchar(20);not null;uniqueIndex:uq_courses_code" json:"code"`
	Name      string    `gorm:"column:name;type:varchar(200);not null" json:"name"`
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`

	// Owned rows. Deleting a course deletes these (handled inside the delete
	// transaction, not via DB-level ON DELETE).
	Subjects []CourseSubjectModel `gorm:"foreignKey:CourseCode;references:Code" json:"subjects,omitempty"`
}

func (CourseModel) TableName() string { return "courses" }
