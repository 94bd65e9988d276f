package controllers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/openlms/backend/internal/app/models/dto"
	"github.com/openlms/backend/internal/app/repositories"
	"github.com/openlms/backend/internal/pkg/apperrors"
	"github.com/openlms/backend/internal/pkg/dberrors"
)

func TestCreateEnrolmentReturns201(t *testing.T) {
	t.Parallel()

	enrolments := &stubEnrolmentService{
		create: func(_ context.Context, req dto.CreateEnrolmentRequest) (*dto.EnrolmentResponse, error) {
			return &dto.EnrolmentResponse{
				ID:            1,
				EnrolmentDate: "2025-09-29",
				Student:       dto.EnrolledStudent{StudentID: *req.StudentID, FirstName: "Alice", LastName: "Son"},
				Course:        dto.EnrolledCourse{CourseID: *req.CourseID, Name: "Physics", Duration: 3},
			}, nil
		},
	}
	router := newTestRouter(testServices{enrolments: enrolments})

	rec := doRequest(t, router, http.MethodPost, "/api/v1/enrolments", map[string]interface{}{
		"enrolment_date": "2025-09-29",
		"student_id":     1,
		"course_id":      1,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}

	data := decodeBody(t, rec)["data"].(map[string]interface{})
	if data["enrolment_date"] != "2025-09-29" {
		t.Errorf("data.enrolment_date = %v", data["enrolment_date"])
	}
}

func TestCreateEnrolmentMalformedDateReturns400(t *testing.T) {
	t.Parallel()

	// The datetime binding tag rejects the value before the service runs
	router := newTestRouter(testServices{})
	rec := doRequest(t, router, http.MethodPost, "/api/v1/enrolments", map[string]interface{}{
		"enrolment_date": "29/09/2025",
		"student_id":     1,
		"course_id":      1,
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", rec.Code, rec.Body.String())
	}
}

func TestCreateEnrolmentDuplicateReturns409(t *testing.T) {
	t.Parallel()

	enrolments := &stubEnrolmentService{
		create: func(context.Context, dto.CreateEnrolmentRequest) (*dto.EnrolmentResponse, error) {
			return nil, &dberrors.IntegrityError{
				Err:        dberrors.ErrUniqueViolation,
				Constraint: "enrolments_unique_student_course",
				Detail:     "Key (student_id, course_id)=(1, 1) already exists.",
			}
		},
	}
	router := newTestRouter(testServices{enrolments: enrolments})

	rec := doRequest(t, router, http.MethodPost, "/api/v1/enrolments", map[string]interface{}{
		"student_id": 1,
		"course_id":  1,
	})
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409: %s", rec.Code, rec.Body.String())
	}
}

func TestListEnrolmentsBindsFilters(t *testing.T) {
	t.Parallel()

	var gotFilter repositories.EnrolmentFilter
	enrolments := &stubEnrolmentService{
		list: func(_ context.Context, filter repositories.EnrolmentFilter) ([]dto.EnrolmentResponse, error) {
			gotFilter = filter
			return []dto.EnrolmentResponse{{ID: 3, EnrolmentDate: "2025-09-29"}}, nil
		},
	}
	router := newTestRouter(testServices{enrolments: enrolments})

	rec := doRequest(t, router, http.MethodGet, "/api/v1/enrolments?student_id=1&course_id=2", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if gotFilter.StudentID == nil || *gotFilter.StudentID != 1 {
		t.Errorf("filter.StudentID = %v, want 1", gotFilter.StudentID)
	}
	if gotFilter.CourseID == nil || *gotFilter.CourseID != 2 {
		t.Errorf("filter.CourseID = %v, want 2", gotFilter.CourseID)
	}
	if gotFilter.EnrolmentID != nil {
		t.Errorf("filter.EnrolmentID = %v, want nil", gotFilter.EnrolmentID)
	}
}

func TestListEnrolmentsNegativeFilterReturns400(t *testing.T) {
	t.Parallel()

	router := newTestRouter(testServices{})
	rec := doRequest(t, router, http.MethodGet, "/api/v1/enrolments?student_id=-1", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", rec.Code, rec.Body.String())
	}
}

func TestListEnrolmentsEmptyTable(t *testing.T) {
	t.Parallel()

	enrolments := &stubEnrolmentService{
		list: func(context.Context, repositories.EnrolmentFilter) ([]dto.EnrolmentResponse, error) {
			return nil, nil
		},
	}
	router := newTestRouter(testServices{enrolments: enrolments})

	rec := doRequest(t, router, http.MethodGet, "/api/v1/enrolments", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if body := decodeBody(t, rec); body["message"] != dto.EmptyTableMessage {
		t.Errorf("message = %v", body["message"])
	}
}

func TestDeleteEnrolmentAcknowledgement(t *testing.T) {
	t.Parallel()

	enrolments := &stubEnrolmentService{
		delete: func(context.Context, int64) error { return nil },
	}
	router := newTestRouter(testServices{enrolments: enrolments})

	rec := doRequest(t, router, http.MethodDelete, "/api/v1/enrolments/5", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if body := decodeBody(t, rec); body["message"] != "Enrolment 5 deleted successfully." {
		t.Errorf("message = %v", body["message"])
	}
}

func TestDeleteEnrolmentNotFoundReturns404(t *testing.T) {
	t.Parallel()

	enrolments := &stubEnrolmentService{
		delete: func(context.Context, int64) error { return apperrors.ErrEnrolmentNotFound },
	}
	router := newTestRouter(testServices{enrolments: enrolments})

	rec := doRequest(t, router, http.MethodDelete, "/api/v1/enrolments/42", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404: %s", rec.Code, rec.Body.String())
	}
}

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()

	router := newTestRouter(testServices{})
	rec := doRequest(t, router, http.MethodGet, "/api/v1/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
}
