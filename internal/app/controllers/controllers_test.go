package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/openlms/backend/internal/app/controllers"
	"github.com/openlms/backend/internal/app/models"
	"github.com/openlms/backend/internal/app/models/dto"
	"github.com/openlms/backend/internal/app/repositories"
	"github.com/openlms/backend/internal/app/routes"
)

// Function-field service stubs. Tests set only the methods a handler calls;
// anything else panics with a nil dereference, which is the point.

type stubStudentService struct {
	create func(context.Context, dto.CreateStudentRequest) (*dto.StudentResponse, error)
	getOne func(context.Context, int64) (*dto.StudentResponse, error)
	getAll func(context.Context) ([]dto.StudentResponse, error)
	update func(context.Context, int64, dto.UpdateStudentRequest) (*dto.StudentResponse, error)
	delete func(context.Context, int64) (*models.Student, error)
}

func (s *stubStudentService) CreateStudent(ctx context.Context, req dto.CreateStudentRequest) (*dto.StudentResponse, error) {
	return s.create(ctx, req)
}
func (s *stubStudentService) GetStudentByID(ctx context.Context, id int64) (*dto.StudentResponse, error) {
	return s.getOne(ctx, id)
}
func (s *stubStudentService) GetAllStudents(ctx context.Context) ([]dto.StudentResponse, error) {
	return s.getAll(ctx)
}
func (s *stubStudentService) UpdateStudent(ctx context.Context, id int64, req dto.UpdateStudentRequest) (*dto.StudentResponse, error) {
	return s.update(ctx, id, req)
}
func (s *stubStudentService) DeleteStudent(ctx context.Context, id int64) (*models.Student, error) {
	return s.delete(ctx, id)
}

type stubTeacherService struct {
	create func(context.Context, dto.CreateTeacherRequest) (*dto.TeacherResponse, error)
	getOne func(context.Context, int64) (*dto.TeacherResponse, error)
	getAll func(context.Context, *string) ([]dto.TeacherResponse, error)
	update func(context.Context, int64, dto.UpdateTeacherRequest) (*dto.TeacherResponse, error)
	delete func(context.Context, int64) (*models.Teacher, error)
}

func (s *stubTeacherService) CreateTeacher(ctx context.Context, req dto.CreateTeacherRequest) (*dto.TeacherResponse, error) {
	return s.create(ctx, req)
}
func (s *stubTeacherService) GetTeacherByID(ctx context.Context, id int64) (*dto.TeacherResponse, error) {
	return s.getOne(ctx, id)
}
func (s *stubTeacherService) GetAllTeachers(ctx context.Context, department *string) ([]dto.TeacherResponse, error) {
	return s.getAll(ctx, department)
}
func (s *stubTeacherService) UpdateTeacher(ctx context.Context, id int64, req dto.UpdateTeacherRequest) (*dto.TeacherResponse, error) {
	return s.update(ctx, id, req)
}
func (s *stubTeacherService) DeleteTeacher(ctx context.Context, id int64) (*models.Teacher, error) {
	return s.delete(ctx, id)
}

type stubCourseService struct {
	create func(context.Context, dto.CreateCourseRequest) (*dto.CourseResponse, error)
	getOne func(context.Context, int64) (*dto.CourseResponse, error)
	getAll func(context.Context) ([]dto.CourseResponse, error)
	update func(context.Context, int64, dto.UpdateCourseRequest) (*dto.CourseResponse, error)
	delete func(context.Context, int64) (*models.Course, error)
}

func (s *stubCourseService) CreateCourse(ctx context.Context, req dto.CreateCourseRequest) (*dto.CourseResponse, error) {
	return s.create(ctx, req)
}
func (s *stubCourseService) GetCourseByID(ctx context.Context, id int64) (*dto.CourseResponse, error) {
	return s.getOne(ctx, id)
}
func (s *stubCourseService) GetAllCourses(ctx context.Context) ([]dto.CourseResponse, error) {
	return s.getAll(ctx)
}
func (s *stubCourseService) UpdateCourse(ctx context.Context, id int64, req dto.UpdateCourseRequest) (*dto.CourseResponse, error) {
	return s.update(ctx, id, req)
}
func (s *stubCourseService) DeleteCourse(ctx context.Context, id int64) (*models.Course, error) {
	return s.delete(ctx, id)
}

type stubEnrolmentService struct {
	create func(context.Context, dto.CreateEnrolmentRequest) (*dto.EnrolmentResponse, error)
	getOne func(context.Context, int64) (*dto.EnrolmentResponse, error)
	list   func(context.Context, repositories.EnrolmentFilter) ([]dto.EnrolmentResponse, error)
	delete func(context.Context, int64) error
}

func (s *stubEnrolmentService) CreateEnrolment(ctx context.Context, req dto.CreateEnrolmentRequest) (*dto.EnrolmentResponse, error) {
	return s.create(ctx, req)
}
func (s *stubEnrolmentService) GetEnrolmentByID(ctx context.Context, id int64) (*dto.EnrolmentResponse, error) {
	return s.getOne(ctx, id)
}
func (s *stubEnrolmentService) ListEnrolments(ctx context.Context, filter repositories.EnrolmentFilter) ([]dto.EnrolmentResponse, error) {
	return s.list(ctx, filter)
}
func (s *stubEnrolmentService) DeleteEnrolment(ctx context.Context, id int64) error {
	return s.delete(ctx, id)
}

type testServices struct {
	students   *stubStudentService
	teachers   *stubTeacherService
	courses    *stubCourseService
	enrolments *stubEnrolmentService
}

func newTestRouter(svcs testServices) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	if svcs.students == nil {
		svcs.students = &stubStudentService{}
	}
	if svcs.teachers == nil {
		svcs.teachers = &stubTeacherService{}
	}
	if svcs.courses == nil {
		svcs.courses = &stubCourseService{}
	}
	if svcs.enrolments == nil {
		svcs.enrolments = &stubEnrolmentService{}
	}
	routes.SetupRouter(router,
		controllers.NewStudentController(svcs.students),
		controllers.NewTeacherController(svcs.teachers),
		controllers.NewCourseController(svcs.courses),
		controllers.NewEnrolmentController(svcs.enrolments),
	)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response body %q: %v", rec.Body.String(), err)
	}
	return body
}

func strPtr(s string) *string { return &s }
