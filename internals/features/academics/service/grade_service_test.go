package service

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"educore_backend/internals/features/academics/model"
)

func TestSubmitGradeBounds(t *testing.T) {
	db := newTestDB(t)
	svc := NewGradeService(db)

	mustCreateCourse(t, db, "BSCS", "Computer Science")
	mustCreateStudent(t, db, "24-001", "Ana Reyes", "BSCS")

	_, err := svc.SubmitGrade("24-001", "CS 101", "Intro", 0.5)
	require.ErrorIs(t, err, ErrOutOfRange)

	_, err = svc.SubmitGrade("24-001", "CS 101", "Intro", 5.5)
	require.ErrorIs(t, err, ErrOutOfRange)

	// the bounds themselves are valid grades
	_, err = svc.SubmitGrade("24-001", "CS 101", "Intro", 1.0)
	require.NoError(t, err)
	_, err = svc.SubmitGrade("24-001", "CS 102", "Fundamentals", 5.0)
	require.NoError(t, err)
}

func TestSubmitGradeUnknownStudent(t *testing.T) {
	db := newTestDB(t)

	_, err := NewGradeService(db).SubmitGrade("99-999", "CS 101", "Intro", 1.5)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSubmitGradeRoundsToTwoDecimals(t *testing.T) {
	db := newTestDB(t)
	svc := NewGradeService(db)

	mustCreateCourse(t, db, "BSCS", "Computer Science")
	mustCreateStudent(t, db, "24-001", "Ana Reyes", "BSCS")

	m, err := svc.SubmitGrade("24-001", "CS 101", "Intro", 1.257)
	require.NoError(t, err)
	require.InDelta(t, 1.26, m.Grade, 1e-9)
}

func TestGWATracksGradeMutations(t *testing.T) {
	db := newTestDB(t)
	svc := NewGradeService(db)

	mustCreateCourse(t, db, "BSCS", "Computer Science")
	mustCreateStudent(t, db, "24-001", "Ana Reyes", "BSCS")

	// zero grades → sentinel 0.0
	require.InDelta(t, 0.0, studentGWA(t, db, "24-001"), 1e-9)

	grades := []struct {
		subject string
		grade   float64
	}{
		{"CS 101", 1.25},
		{"CS 102", 1.75},
		{"MATH 101", 2.5},
	}
	sum := 0.0
	for i, g := range grades {
		_, err := svc.SubmitGrade("24-001", g.subject, g.subject, g.grade)
		require.NoError(t, err)
		sum += g.grade
		require.InDelta(t, sum/float64(i+1), studentGWA(t, db, "24-001"), 1e-9)
	}
}

func TestSubmitGradeUpsertsInPlace(t *testing.T) {
	db := newTestDB(t)
	svc := NewGradeService(db)

	mustCreateCourse(t, db, "BSCS", "Computer Science")
	mustCreateStudent(t, db, "24-001", "Ana Reyes", "BSCS")

	_, err := svc.SubmitGrade("24-001", "CS 101", "Intro", 2.0)
	require.NoError(t, err)
	_, err = svc.SubmitGrade("24-001", "CS 102", "Fundamentals", 3.0)
	require.NoError(t, err)

	// resubmitting the same (student, subject) updates, never duplicates
	m, err := svc.SubmitGrade("24-001", "CS 101", "Introduction to Computing", 1.0)
	require.NoError(t, err)
	require.InDelta(t, 1.0, m.Grade, 1e-9)
	require.Equal(t, "Introduction to Computing", m.SubjectName)

	var cnt int64
	require.NoError(t, db.Model(&model.GradeModel{}).
		Where("student_code = ?", "24-001").
		Count(&cnt).Error)
	require.EqualValues(t, 2, cnt)
	require.InDelta(t, 2.0, studentGWA(t, db, "24-001"), 1e-9)
}

func TestSubmitGradeIdempotentResubmission(t *testing.T) {
	db := newTestDB(t)
	svc := NewGradeService(db)

	mustCreateCourse(t, db, "BSCS", "Computer Science")
	mustCreateStudent(t, db, "24-001", "Ana Reyes", "BSCS")

	_, err := svc.SubmitGrade("24-001", "CS 101", "Intro", 1.75)
	require.NoError(t, err)
	once := studentGWA(t, db, "24-001")

	_, err = svc.SubmitGrade("24-001", "CS 101", "Intro", 1.75)
	require.NoError(t, err)
	require.InDelta(t, once, studentGWA(t, db, "24-001"), 1e-9)
}

func TestGetGradesUnknownStudent(t *testing.T) {
	db := newTestDB(t)

	_, err := NewGradeService(db).GetGrades("99-999")
	require.ErrorIs(t, err, ErrNotFound)
}

// The end-to-end walkthrough from registration to deletion.
func TestStudentLifecycle(t *testing.T) {
	db := newTestDB(t)
	catalog := NewCatalogService(db)
	students := NewStudentService(db)
	grades := NewGradeService(db)

	_, err := catalog.CreateCourse("BSCS", "Bachelor of Science in Computer Science")
	require.NoError(t, err)

	_, err = students.CreateStudent("24-001", "Ana Reyes", "BSCS")
	require.NoError(t, err)

	_, err = grades.SubmitGrade("24-001", "CS101", "Introduction to Computing", 1.25)
	require.NoError(t, err)
	_, err = grades.SubmitGrade("24-001", "CS102", "Fundamentals of Programming", 1.75)
	require.NoError(t, err)
	require.InDelta(t, 1.50, studentGWA(t, db, "24-001"), 1e-9)

	// update CS101 in place
	_, err = grades.SubmitGrade("24-001", "CS101", "Introduction to Computing", 1.0)
	require.NoError(t, err)
	require.InDelta(t, 1.375, studentGWA(t, db, "24-001"), 1e-9)

	require.NoError(t, students.Delete("24-001"))

	_, err = grades.GetGrades("24-001")
	require.ErrorIs(t, err, ErrNotFound)
	_, err = students.GetStudent("24-001")
	require.ErrorIs(t, err, ErrNotFound)
}

// Two concurrent submissions for the same student on different subjects must
// both land, and the final GWA must reflect both grades.
func TestConcurrentSubmitsNoLostUpdate(t *testing.T) {
	db := newTestDB(t)
	svc := NewGradeService(db)

	mustCreateCourse(t, db, "BSCS", "Computer Science")
	mustCreateStudent(t, db, "24-001", "Ana Reyes", "BSCS")

	var wg sync.WaitGroup
	errs := make([]error, 2)
	submit := func(i int, subject string, grade float64) {
		defer wg.Done()
		_, errs[i] = svc.SubmitGrade("24-001", subject, subject, grade)
	}

	wg.Add(2)
	go submit(0, "CS 101", 1.0)
	go submit(1, "CS 102", 2.0)
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])

	var cnt int64
	require.NoError(t, db.Model(&model.GradeModel{}).
		Where("student_code = ?", "24-001").
		Count(&cnt).Error)
	require.EqualValues(t, 2, cnt)
	require.InDelta(t, 1.5, studentGWA(t, db, "24-001"), 1e-9)
}
