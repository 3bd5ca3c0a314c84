package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"educore_backend/internals/features/academics/model"
)

func TestCreateCourseDuplicate(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	_, err := svc.CreateCourse("BSCS", "Bachelor of Science in Computer Science")
	require.NoError(t, err)

	_, err = svc.CreateCourse("BSCS", "Another name")
	require.ErrorIs(t, err, ErrDuplicateKey)
}

func TestCreateSubjectAndUniqueness(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	mustCreateCourse(t, db, "BSCS", "Computer Science")

	_, err := svc.CreateSubject("BSCS", "CS 101", "Introduction to Computing")
	require.NoError(t, err)

	// (course_code, subject_code) must be unique
	_, err = svc.CreateSubject("BSCS", "CS 101", "Renamed")
	require.ErrorIs(t, err, ErrDuplicateKey)

	// same subject code under a different course is a separate row
	mustCreateCourse(t, db, "BSIT", "Information Technology")
	_, err = svc.CreateSubject("BSIT", "CS 101", "Introduction to Computing")
	require.NoError(t, err)
}

func TestCreateSubjectUnknownCourse(t *testing.T) {
	db := newTestDB(t)

	_, err := NewCatalogService(db).CreateSubject("NOPE", "CS 101", "Intro")
	require.ErrorIs(t, err, ErrInvalidReference)
}

func TestListCoursesWithSubjects(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	mustCreateCourse(t, db, "BSIT", "Information Technology")
	mustCreateCourse(t, db, "BSCS", "Computer Science")
	_, err := svc.CreateSubject("BSCS", "CS 102", "Fundamentals of Programming")
	require.NoError(t, err)
	_, err = svc.CreateSubject("BSCS", "CS 101", "Introduction to Computing")
	require.NoError(t, err)

	courses, err := svc.ListCourses()
	require.NoError(t, err)
	require.Len(t, courses, 2)
	require.Equal(t, "BSCS", courses[0].Code)
	require.Equal(t, "BSIT", courses[1].Code)

	require.Len(t, courses[0].Subjects, 2)
	require.Equal(t, "CS 101", courses[0].Subjects[0].SubjectCode)
	require.Equal(t, "CS 102", courses[0].Subjects[1].SubjectCode)
}

func TestListSubjectsUnknownCourse(t *testing.T) {
	db := newTestDB(t)

	_, err := NewCatalogService(db).ListSubjects("NOPE")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteCourseCascadesToSubjectsOnly(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	mustCreateCourse(t, db, "BSBA", "Business Administration")
	_, err := svc.CreateSubject("BSBA", "ACCT 101", "Fundamentals of Accounting")
	require.NoError(t, err)
	_, err = svc.CreateSubject("BSBA", "ECON 101", "Microeconomics")
	require.NoError(t, err)

	// a student referencing the course must survive the delete untouched
	mustCreateStudent(t, db, "24-010", "Dana Cruz", "BSBA")

	require.NoError(t, svc.DeleteCourse("BSBA"))

	var subjects int64
	require.NoError(t, db.Model(&model.CourseSubjectModel{}).
		Where("course_code = ?", "BSBA").
		Count(&subjects).Error)
	require.Zero(t, subjects)

	student, err := NewStudentService(db).GetStudent("24-010")
	require.NoError(t, err)
	require.Equal(t, "BSBA", student.CourseCode) // dangling by design
}

func TestDeleteCourseNotFound(t *testing.T) {
	db := newTestDB(t)

	err := NewCatalogService(db).DeleteCourse("NOPE")
	require.ErrorIs(t, err, ErrNotFound)
}
