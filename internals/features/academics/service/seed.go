package service

import (
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"educore_backend/internals/features/academics/model"
)

type seedSubject struct {
	Code string
	Name string
}

type seedCourse struct {
	Code     string
	Name     string
	Subjects []seedSubject
}

// The predefined curriculum the system ships with.
var seedCatalog = []seedCourse{
	{
		Code: "BSIT", Name: "Bachelor of Science in Information Technology",
		Subjects: []seedSubject{
			{"CS 131", "Computer Programming 1"},
			{"GEd 109", "Purposive Communication"},
			{"MATH 111", "Mathematics in the Modern World"},
			{"PE 101", "Physical Education 1"},
			{"NSTP 101", "National Service Training Program 1"},
			{"CS 132", "Computer Programming 2"},
			{"GEd 106", "Understanding the Self"},
		},
	},
	{
		Code: "BSCS", Name: "Bachelor of Science in Computer Science",
		Subjects: []seedSubject{
			{"CS 101", "Introduction to Computing"},
			{"CS 102", "Fundamentals of Programming"},
			{"MATH 101", "Calculus 1"},
			{"PHYS 101", "Physics for Computer Science"},
			{"ENG 101", "Communication Skills"},
			{"CS 201", "Data Structures and Algorithms"},
			{"CS 202", "Object-Oriented Programming"},
		},
	},
	{
		Code: "BSBA", Name: "Bachelor of Science in Business Administration",
		Subjects: []seedSubject{
			{"ACCT 101", "Fundamentals of Accounting"},
			{"ECON 101", "Microeconomics"},
			{"MGT 101", "Principles of Management"},
			{"MKT 101", "Principles of Marketing"},
			{"FIN 101", "Business Finance"},
		},
	},
}

// SeedCatalog upserts the predefined courses and subjects on their natural
// keys. Re-running it against a populated catalog is a no-op, so it is safe to
// call on every process start.
func SeedCatalog(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, c := range seedCatalog {
			course := model.CourseModel{Code: c.Code, Name: c.Name}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "code"}},
				DoNothing: true,
			}).Create(&course).Error; err != nil {
				return translateDBError(err)
			}

			for _, sub := range c.Subjects {
				row := model.CourseSubjectModel{
					CourseCode:  c.Code,
					SubjectCode: sub.Code,
					SubjectName: sub.Name,
				}
				if err := tx.Clauses(clause.OnConflict{
					Columns:   []clause.Column{{Name: "course_code"}, {Name: "subject_code"}},
					DoNothing: true,
				}).Create(&row).Error; err != nil {
					return translateDBError(err)
				}
			}
		}
		log.Println("✅ Catalog seed complete.")
		return nil
	})
}
