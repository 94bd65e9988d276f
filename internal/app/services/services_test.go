package services

import (
	"context"
	"sort"

	"github.com/openlms/backend/internal/app/models"
	"github.com/openlms/backend/internal/app/repositories"
	"github.com/openlms/backend/internal/pkg/apperrors"
)

// In-memory store fakes. Each fake assigns sequential ids on create and
// returns the matching not-found sentinel for missing records. Setting err
// forces every method to fail with it. When a fake is wired to a dependent
// store, Delete mirrors the repository semantics: student and course
// deletion removes dependent enrolments, teacher deletion clears the
// teacher reference on courses.

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
func int64Ptr(i int64) *int64     { return &i }

type fakeStudentStore struct {
	seq        int64
	students   map[int64]models.Student
	enrolments *fakeEnrolmentStore
	err        error
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{students: make(map[int64]models.Student)}
}

func (f *fakeStudentStore) add(s models.Student) int64 {
	f.seq++
	s.ID = f.seq
	f.students[s.ID] = s
	return s.ID
}

func (f *fakeStudentStore) Create(_ context.Context, student *models.Student) error {
	if f.err != nil {
		return f.err
	}
	student.ID = f.add(*student)
	return nil
}

func (f *fakeStudentStore) GetByID(_ context.Context, id int64) (*models.Student, error) {
	if f.err != nil {
		return nil, f.err
	}
	s, ok := f.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return &s, nil
}

func (f *fakeStudentStore) GetAll(_ context.Context) ([]*models.Student, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*models.Student, 0, len(f.students))
	for id := range f.students {
		s := f.students[id]
		out = append(out, &s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStudentStore) GetByIDs(_ context.Context, ids []int64) (map[int64]models.Student, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make(map[int64]models.Student, len(ids))
	for _, id := range ids {
		if s, ok := f.students[id]; ok {
			out[id] = s
		}
	}
	return out, nil
}

func (f *fakeStudentStore) Update(_ context.Context, student *models.Student) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.students[student.ID]; !ok {
		return apperrors.ErrStudentNotFound
	}
	f.students[student.ID] = *student
	return nil
}

func (f *fakeStudentStore) Delete(_ context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.students[id]; !ok {
		return apperrors.ErrStudentNotFound
	}
	if f.enrolments != nil {
		for enrolmentID, e := range f.enrolments.enrolments {
			if e.StudentID != nil && *e.StudentID == id {
				delete(f.enrolments.enrolments, enrolmentID)
			}
		}
	}
	delete(f.students, id)
	return nil
}

type fakeTeacherStore struct {
	seq      int64
	teachers map[int64]models.Teacher
	courses  *fakeCourseStore
	err      error
}

func newFakeTeacherStore() *fakeTeacherStore {
	return &fakeTeacherStore{teachers: make(map[int64]models.Teacher)}
}

func (f *fakeTeacherStore) add(t models.Teacher) int64 {
	f.seq++
	t.ID = f.seq
	f.teachers[t.ID] = t
	return t.ID
}

func (f *fakeTeacherStore) Create(_ context.Context, teacher *models.Teacher) error {
	if f.err != nil {
		return f.err
	}
	teacher.ID = f.add(*teacher)
	return nil
}

func (f *fakeTeacherStore) GetByID(_ context.Context, id int64) (*models.Teacher, error) {
	if f.err != nil {
		return nil, f.err
	}
	t, ok := f.teachers[id]
	if !ok {
		return nil, apperrors.ErrTeacherNotFound
	}
	return &t, nil
}

func (f *fakeTeacherStore) GetAll(_ context.Context, department *string) ([]*models.Teacher, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*models.Teacher, 0, len(f.teachers))
	for id := range f.teachers {
		t := f.teachers[id]
		if department != nil && (t.Department == nil || *t.Department != *department) {
			continue
		}
		out = append(out, &t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeTeacherStore) Update(_ context.Context, teacher *models.Teacher) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.teachers[teacher.ID]; !ok {
		return apperrors.ErrTeacherNotFound
	}
	f.teachers[teacher.ID] = *teacher
	return nil
}

func (f *fakeTeacherStore) Delete(_ context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.teachers[id]; !ok {
		return apperrors.ErrTeacherNotFound
	}
	if f.courses != nil {
		for courseID, c := range f.courses.courses {
			if c.TeacherID != nil && *c.TeacherID == id {
				c.TeacherID = nil
				f.courses.courses[courseID] = c
			}
		}
	}
	delete(f.teachers, id)
	return nil
}

type fakeCourseStore struct {
	seq        int64
	courses    map[int64]models.Course
	enrolments *fakeEnrolmentStore
	err        error
}

func newFakeCourseStore() *fakeCourseStore {
	return &fakeCourseStore{courses: make(map[int64]models.Course)}
}

func (f *fakeCourseStore) add(c models.Course) int64 {
	f.seq++
	c.ID = f.seq
	f.courses[c.ID] = c
	return c.ID
}

func (f *fakeCourseStore) Create(_ context.Context, course *models.Course) error {
	if f.err != nil {
		return f.err
	}
	course.ID = f.add(*course)
	return nil
}

func (f *fakeCourseStore) GetByID(_ context.Context, id int64) (*models.Course, error) {
	if f.err != nil {
		return nil, f.err
	}
	c, ok := f.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return &c, nil
}

func (f *fakeCourseStore) GetAll(_ context.Context) ([]*models.Course, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*models.Course, 0, len(f.courses))
	for id := range f.courses {
		c := f.courses[id]
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeCourseStore) GetByTeacherID(_ context.Context, teacherID int64) ([]*models.Course, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*models.Course, 0)
	for id := range f.courses {
		c := f.courses[id]
		if c.TeacherID != nil && *c.TeacherID == teacherID {
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeCourseStore) GetByIDs(_ context.Context, ids []int64) (map[int64]models.Course, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make(map[int64]models.Course, len(ids))
	for _, id := range ids {
		if c, ok := f.courses[id]; ok {
			out[id] = c
		}
	}
	return out, nil
}

func (f *fakeCourseStore) Update(_ context.Context, course *models.Course) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.courses[course.ID]; !ok {
		return apperrors.ErrCourseNotFound
	}
	f.courses[course.ID] = *course
	return nil
}

func (f *fakeCourseStore) Delete(_ context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	if f.enrolments != nil {
		for enrolmentID, e := range f.enrolments.enrolments {
			if e.CourseID != nil && *e.CourseID == id {
				delete(f.enrolments.enrolments, enrolmentID)
			}
		}
	}
	delete(f.courses, id)
	return nil
}

type fakeEnrolmentStore struct {
	seq        int64
	enrolments map[int64]models.Enrolment
	err        error
}

func newFakeEnrolmentStore() *fakeEnrolmentStore {
	return &fakeEnrolmentStore{enrolments: make(map[int64]models.Enrolment)}
}

func (f *fakeEnrolmentStore) add(e models.Enrolment) int64 {
	f.seq++
	e.ID = f.seq
	f.enrolments[e.ID] = e
	return e.ID
}

func (f *fakeEnrolmentStore) Create(_ context.Context, enrolment *models.Enrolment) error {
	if f.err != nil {
		return f.err
	}
	enrolment.ID = f.add(*enrolment)
	return nil
}

func (f *fakeEnrolmentStore) GetByID(_ context.Context, id int64) (*models.Enrolment, error) {
	if f.err != nil {
		return nil, f.err
	}
	e, ok := f.enrolments[id]
	if !ok {
		return nil, apperrors.ErrEnrolmentNotFound
	}
	return &e, nil
}

func (f *fakeEnrolmentStore) List(_ context.Context, filter repositories.EnrolmentFilter) ([]*models.Enrolment, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*models.Enrolment, 0)
	for id := range f.enrolments {
		e := f.enrolments[id]
		if filter.EnrolmentID != nil && e.ID != *filter.EnrolmentID {
			continue
		}
		if filter.StudentID != nil && (e.StudentID == nil || *e.StudentID != *filter.StudentID) {
			continue
		}
		if filter.CourseID != nil && (e.CourseID == nil || *e.CourseID != *filter.CourseID) {
			continue
		}
		out = append(out, &e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeEnrolmentStore) GetByStudentID(ctx context.Context, studentID int64) ([]*models.Enrolment, error) {
	return f.List(ctx, repositories.EnrolmentFilter{StudentID: &studentID})
}

func (f *fakeEnrolmentStore) GetByCourseID(ctx context.Context, courseID int64) ([]*models.Enrolment, error) {
	return f.List(ctx, repositories.EnrolmentFilter{CourseID: &courseID})
}

func (f *fakeEnrolmentStore) Delete(_ context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.enrolments[id]; !ok {
		return apperrors.ErrEnrolmentNotFound
	}
	delete(f.enrolments, id)
	return nil
}
