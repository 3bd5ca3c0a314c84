package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateStudent(t *testing.T) {
	db := newTestDB(t)
	svc := NewStudentService(db)

	mustCreateCourse(t, db, "BSCS", "Computer Science")

	m, err := svc.CreateStudent("24-001", "Ana Reyes", "BSCS")
	require.NoError(t, err)
	require.Equal(t, "24-001", m.StudentCode)
	require.Equal(t, 0.0, m.GWA)

	_, err = svc.CreateStudent("24-001", "Someone Else", "BSCS")
	require.ErrorIs(t, err, ErrDuplicateKey)

	_, err = svc.CreateStudent("24-002", "Ben Santos", "NOPE")
	require.ErrorIs(t, err, ErrInvalidReference)
}

func TestUpdateStudentCourse(t *testing.T) {
	db := newTestDB(t)
	svc := NewStudentService(db)

	mustCreateCourse(t, db, "BSCS", "Computer Science")
	mustCreateCourse(t, db, "BSIT", "Information Technology")
	mustCreateStudent(t, db, "24-001", "Ana Reyes", "BSCS")
	mustSubmitGrade(t, db, "24-001", "CS 101", 1.5)

	m, err := svc.UpdateStudentCourse("24-001", "BSIT")
	require.NoError(t, err)
	require.Equal(t, "BSIT", m.CourseCode)
	// grades and GWA stay as they were
	require.InDelta(t, 1.5, studentGWA(t, db, "24-001"), 1e-9)
	grades, err := NewGradeService(db).GetGrades("24-001")
	require.NoError(t, err)
	require.Len(t, grades, 1)

	_, err = svc.UpdateStudentCourse("24-001", "NOPE")
	require.ErrorIs(t, err, ErrInvalidReference)

	_, err = svc.UpdateStudentCourse("99-999", "BSCS")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteStudentCascadesToGrades(t *testing.T) {
	db := newTestDB(t)
	svc := NewStudentService(db)
	grades := NewGradeService(db)

	mustCreateCourse(t, db, "BSCS", "Computer Science")
	mustCreateStudent(t, db, "24-001", "Ana Reyes", "BSCS")
	mustSubmitGrade(t, db, "24-001", "CS 101", 1.25)
	mustSubmitGrade(t, db, "24-001", "CS 102", 1.75)

	require.NoError(t, svc.Delete("24-001"))

	_, err := svc.GetStudent("24-001")
	require.ErrorIs(t, err, ErrNotFound)

	// direct row count, independent of GetGrades
	var cnt int64
	require.NoError(t, db.Table("grades").
		Where("student_code = ?", "24-001").
		Count(&cnt).Error)
	require.Zero(t, cnt)

	_, err = grades.GetGrades("24-001")
	require.ErrorIs(t, err, ErrNotFound)

	require.ErrorIs(t, svc.Delete("24-001"), ErrNotFound)
}

func TestListStudentsSorting(t *testing.T) {
	db := newTestDB(t)
	svc := NewStudentService(db)

	mustCreateCourse(t, db, "BSCS", "Computer Science")
	mustCreateStudent(t, db, "24-003", "Ana Reyes", "BSCS")
	mustCreateStudent(t, db, "24-001", "Carlo Dizon", "BSCS")
	mustCreateStudent(t, db, "24-002", "Ana Reyes", "BSCS")
	mustSubmitGrade(t, db, "24-001", "CS 101", 1.5)
	mustSubmitGrade(t, db, "24-003", "CS 101", 1.5)
	mustSubmitGrade(t, db, "24-002", "CS 101", 2.0)

	byCode, err := svc.ListStudents(SortByStudentCode)
	require.NoError(t, err)
	require.Equal(t, []string{"24-001", "24-002", "24-003"}, codesOf(byCode))

	// ties on name fall back to student_code
	byName, err := svc.ListStudents(SortByName)
	require.NoError(t, err)
	require.Equal(t, []string{"24-002", "24-003", "24-001"}, codesOf(byName))

	// ties on gwa fall back to student_code
	byGWA, err := svc.ListStudents(SortByGWA)
	require.NoError(t, err)
	require.Equal(t, []string{"24-001", "24-003", "24-002"}, codesOf(byGWA))

	// unknown sort key falls back to student_code
	fallback, err := svc.ListStudents("bogus")
	require.NoError(t, err)
	require.Equal(t, []string{"24-001", "24-002", "24-003"}, codesOf(fallback))
}
