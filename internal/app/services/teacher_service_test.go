package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/openlms/backend/internal/app/models"
	"github.com/openlms/backend/internal/app/models/dto"
	"github.com/openlms/backend/internal/pkg/apperrors"
)

func newTeacherService(teachers *fakeTeacherStore, courses *fakeCourseStore) TeacherService {
	return NewTeacherService(teachers, courses, newFakeEnrolmentStore(), newFakeStudentStore())
}

func TestCreateTeacher(t *testing.T) {
	t.Parallel()

	svc := newTeacherService(newFakeTeacherStore(), newFakeCourseStore())
	resp, err := svc.CreateTeacher(context.Background(), dto.CreateTeacherRequest{
		FirstName:  strPtr("Teacher"),
		LastName:   strPtr("1"),
		Department: strPtr("Science"),
	})
	if err != nil {
		t.Fatalf("CreateTeacher returned error: %v", err)
	}
	if resp.Department != "Science" {
		t.Errorf("department = %q, want Science", resp.Department)
	}
	if len(resp.Courses) != 0 {
		t.Errorf("new teacher has %d courses, want 0", len(resp.Courses))
	}
}

func TestCreateTeacherRejectsUnknownDepartment(t *testing.T) {
	t.Parallel()

	svc := newTeacherService(newFakeTeacherStore(), newFakeCourseStore())

	for _, department := range []string{"Arts", "science", ""} {
		_, err := svc.CreateTeacher(context.Background(), dto.CreateTeacherRequest{
			FirstName:  strPtr("Teacher"),
			LastName:   strPtr("1"),
			Department: &department,
		})
		if !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Fatalf("department %q: got %v, want validation failure", department, err)
		}

		var customErr *apperrors.CustomError
		if !errors.As(err, &customErr) {
			t.Fatalf("department %q: got %T, want *CustomError", department, err)
		}
		if customErr.Field != "department" {
			t.Errorf("field = %q, want department", customErr.Field)
		}
		if customErr.Message != "Only valid departments are: Science, Management, and Engineering." {
			t.Errorf("message = %q", customErr.Message)
		}
	}
}

func TestGetTeacherByIDResolvesCourses(t *testing.T) {
	t.Parallel()

	teachers := newFakeTeacherStore()
	courses := newFakeCourseStore()
	teacherID := teachers.add(models.Teacher{FirstName: strPtr("Teacher"), LastName: strPtr("1"), Department: strPtr("Science")})
	courses.add(models.Course{Name: strPtr("Physics"), Duration: floatPtr(3), TeacherID: &teacherID})
	courses.add(models.Course{Name: strPtr("Chemistry"), Duration: floatPtr(3), TeacherID: &teacherID})
	otherID := teachers.add(models.Teacher{FirstName: strPtr("Teacher"), LastName: strPtr("2"), Department: strPtr("Management")})
	courses.add(models.Course{Name: strPtr("Accounting"), Duration: floatPtr(3), TeacherID: &otherID})

	svc := newTeacherService(teachers, courses)
	resp, err := svc.GetTeacherByID(context.Background(), teacherID)
	if err != nil {
		t.Fatalf("GetTeacherByID returned error: %v", err)
	}
	if len(resp.Courses) != 2 {
		t.Fatalf("got %d courses, want 2", len(resp.Courses))
	}
	if resp.Courses[0].Name != "Physics" || resp.Courses[1].Name != "Chemistry" {
		t.Errorf("courses = %v", resp.Courses)
	}
}

func TestGetAllTeachersDepartmentFilter(t *testing.T) {
	t.Parallel()

	teachers := newFakeTeacherStore()
	teachers.add(models.Teacher{FirstName: strPtr("Teacher"), LastName: strPtr("1"), Department: strPtr("Science")})
	teachers.add(models.Teacher{FirstName: strPtr("Teacher"), LastName: strPtr("2"), Department: strPtr("Management")})

	svc := newTeacherService(teachers, newFakeCourseStore())

	all, err := svc.GetAllTeachers(context.Background(), nil)
	if err != nil {
		t.Fatalf("GetAllTeachers returned error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("unfiltered: got %d teachers, want 2", len(all))
	}

	science, err := svc.GetAllTeachers(context.Background(), strPtr("Science"))
	if err != nil {
		t.Fatalf("GetAllTeachers(Science) returned error: %v", err)
	}
	if len(science) != 1 || science[0].Department != "Science" {
		t.Errorf("filtered = %v", science)
	}

	// An unknown department matches nothing rather than failing
	none, err := svc.GetAllTeachers(context.Background(), strPtr("Arts"))
	if err != nil {
		t.Fatalf("GetAllTeachers(Arts) returned error: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("unknown department matched %d teachers", len(none))
	}
}

func TestUpdateTeacherMissingRecordReportedBeforeValidation(t *testing.T) {
	t.Parallel()

	svc := newTeacherService(newFakeTeacherStore(), newFakeCourseStore())

	// A missing teacher is a not-found even when the payload is also invalid
	_, err := svc.UpdateTeacher(context.Background(), 42, dto.UpdateTeacherRequest{Department: strPtr("Arts")})
	if !errors.Is(err, apperrors.ErrTeacherNotFound) {
		t.Fatalf("got %v, want ErrTeacherNotFound", err)
	}
}

func TestUpdateTeacherRejectsUnknownDepartment(t *testing.T) {
	t.Parallel()

	teachers := newFakeTeacherStore()
	teacherID := teachers.add(models.Teacher{FirstName: strPtr("Teacher"), LastName: strPtr("1"), Department: strPtr("Science")})

	svc := newTeacherService(teachers, newFakeCourseStore())
	_, err := svc.UpdateTeacher(context.Background(), teacherID, dto.UpdateTeacherRequest{Department: strPtr("Arts")})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("got %v, want validation failure", err)
	}

	stored, err := svc.GetTeacherByID(context.Background(), teacherID)
	if err != nil {
		t.Fatalf("GetTeacherByID returned error: %v", err)
	}
	if stored.Department != "Science" {
		t.Errorf("department = %q, want Science untouched", stored.Department)
	}
}

func TestUpdateTeacherMergesFields(t *testing.T) {
	t.Parallel()

	teachers := newFakeTeacherStore()
	teacherID := teachers.add(models.Teacher{
		FirstName:  strPtr("Teacher"),
		LastName:   strPtr("1"),
		Department: strPtr("Science"),
		Email:      strPtr("teacher1@email.com"),
	})

	svc := newTeacherService(teachers, newFakeCourseStore())
	resp, err := svc.UpdateTeacher(context.Background(), teacherID, dto.UpdateTeacherRequest{
		Department: strPtr("Engineering"),
	})
	if err != nil {
		t.Fatalf("UpdateTeacher returned error: %v", err)
	}
	if resp.Department != "Engineering" {
		t.Errorf("department = %q, want Engineering", resp.Department)
	}
	if resp.Email == nil || *resp.Email != "teacher1@email.com" {
		t.Errorf("absent field changed: %v", resp.Email)
	}
}

func TestDeleteTeacherReturnsRemovedRecord(t *testing.T) {
	t.Parallel()

	teachers := newFakeTeacherStore()
	teacherID := teachers.add(models.Teacher{FirstName: strPtr("Teacher"), LastName: strPtr("2"), Department: strPtr("Management")})

	svc := newTeacherService(teachers, newFakeCourseStore())
	removed, err := svc.DeleteTeacher(context.Background(), teacherID)
	if err != nil {
		t.Fatalf("DeleteTeacher returned error: %v", err)
	}
	if removed.LastName == nil || *removed.LastName != "2" {
		t.Errorf("removed record = %+v", removed)
	}

	if _, err := svc.GetTeacherByID(context.Background(), teacherID); !errors.Is(err, apperrors.ErrTeacherNotFound) {
		t.Errorf("teacher still present after delete: %v", err)
	}
}

func TestGetTeacherByIDResolvesCourseEnrolments(t *testing.T) {
	t.Parallel()

	teachers := newFakeTeacherStore()
	courses := newFakeCourseStore()
	enrolments := newFakeEnrolmentStore()
	students := newFakeStudentStore()

	teacherID := teachers.add(models.Teacher{FirstName: strPtr("Teacher"), LastName: strPtr("1"), Department: strPtr("Science")})
	courseID := courses.add(models.Course{Name: strPtr("Physics"), Duration: floatPtr(3), TeacherID: &teacherID})
	studentID := students.add(models.Student{FirstName: strPtr("Alice"), LastName: strPtr("Son"), Email: strPtr("alice@email.com")})
	enrolments.add(models.Enrolment{
		EnrolmentDate: time.Date(2025, time.September, 29, 0, 0, 0, 0, time.UTC),
		StudentID:     &studentID,
		CourseID:      &courseID,
	})

	svc := NewTeacherService(teachers, courses, enrolments, students)
	resp, err := svc.GetTeacherByID(context.Background(), teacherID)
	if err != nil {
		t.Fatalf("GetTeacherByID returned error: %v", err)
	}
	if len(resp.Courses) != 1 {
		t.Fatalf("got %d courses, want 1", len(resp.Courses))
	}
	course := resp.Courses[0]
	if len(course.Enrolments) != 1 {
		t.Fatalf("nested course has %d enrolments, want 1", len(course.Enrolments))
	}
	enrolment := course.Enrolments[0]
	if enrolment.EnrolmentDate != "2025-09-29" {
		t.Errorf("enrolment date = %q, want 2025-09-29", enrolment.EnrolmentDate)
	}
	if enrolment.Student.FirstName != "Alice" || enrolment.Student.StudentID != studentID {
		t.Errorf("nested student = %+v", enrolment.Student)
	}
}

func TestDeleteTeacherClearsCourseAssignment(t *testing.T) {
	t.Parallel()

	teachers := newFakeTeacherStore()
	courses := newFakeCourseStore()
	teachers.courses = courses

	teacherID := teachers.add(models.Teacher{FirstName: strPtr("Teacher"), LastName: strPtr("1"), Department: strPtr("Science")})
	courseID := courses.add(models.Course{Name: strPtr("Physics"), Duration: floatPtr(3), TeacherID: &teacherID})

	svc := newTeacherService(teachers, courses)
	if _, err := svc.DeleteTeacher(context.Background(), teacherID); err != nil {
		t.Fatalf("DeleteTeacher returned error: %v", err)
	}

	// The course survives the teacher, unassigned
	courseSvc := NewCourseService(courses, teachers, newFakeStudentStore(), newFakeEnrolmentStore())
	resp, err := courseSvc.GetCourseByID(context.Background(), courseID)
	if err != nil {
		t.Fatalf("course gone after teacher delete: %v", err)
	}
	if resp.TeacherID != nil || resp.Teacher != nil {
		t.Errorf("teacher reference not cleared: id=%v teacher=%v", resp.TeacherID, resp.Teacher)
	}
}
