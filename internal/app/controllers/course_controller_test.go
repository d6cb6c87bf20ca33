package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/ekaraca/blackboard/internal/app/models"
	"github.com/ekaraca/blackboard/internal/app/models/dto"
	"github.com/ekaraca/blackboard/internal/pkg/apperrors"
)

type stubCourseService struct {
	createFn      func(ctx context.Context, course *models.Course) (int64, error)
	byProfessorFn func(ctx context.Context, professorID string) ([]*models.Course, error)
	allFn         func(ctx context.Context) ([]*models.Course, error)
	byStudentFn   func(ctx context.Context, studentID string) ([]*models.Course, error)
	enrollFn      func(ctx context.Context, courseID, studentID string) error
	withdrawFn    func(ctx context.Context, courseID, studentID string) error
}

func (s *stubCourseService) Create(ctx context.Context, course *models.Course) (int64, error) {
	return s.createFn(ctx, course)
}

func (s *stubCourseService) GetByProfessor(ctx context.Context, professorID string) ([]*models.Course, error) {
	return s.byProfessorFn(ctx, professorID)
}

func (s *stubCourseService) GetAll(ctx context.Context) ([]*models.Course, error) {
	return s.allFn(ctx)
}

func (s *stubCourseService) GetByStudent(ctx context.Context, studentID string) ([]*models.Course, error) {
	return s.byStudentFn(ctx, studentID)
}

func (s *stubCourseService) Enroll(ctx context.Context, courseID, studentID string) error {
	return s.enrollFn(ctx, courseID, studentID)
}

func (s *stubCourseService) Withdraw(ctx context.Context, courseID, studentID string) error {
	return s.withdrawFn(ctx, courseID, studentID)
}

func newCourseRouter(svc *stubCourseService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewCourseController(svc)
	router.POST("/add_course", controller.AddCourse)
	router.POST("/get_courses", controller.GetCoursesByProfessor)
	router.POST("/get_all_courses", controller.GetAllCourses)
	router.POST("/enroll", controller.Enroll)
	router.POST("/get_enrolled_courses", controller.GetEnrolledCourses)
	router.POST("/remove_student", controller.RemoveStudent)
	return router
}

func TestAddCourseReturnsSurrogateID(t *testing.T) {
	svc := &stubCourseService{
		createFn: func(_ context.Context, course *models.Course) (int64, error) {
			if course.CourseID != "cs101" || course.ProfessorID != "turing" {
				t.Fatalf("unexpected course: %+v", course)
			}
			return 7, nil
		},
	}

	rec := postJSON(t, newCourseRouter(svc), "/add_course",
		`{"professor_id":"turing","course_id":"cs101","course_name":"Computation","enrolled_ids":[]}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", rec.Code, rec.Body.String())
	}
	var envelope struct {
		Error   *dto.ErrorPayload `json:"error"`
		Payload int64             `json:"payload"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("invalid envelope: %v", err)
	}
	if envelope.Payload != 7 {
		t.Fatalf("payload = %d, want 7", envelope.Payload)
	}
}

func TestAddCourseDuplicateMapsToConflict(t *testing.T) {
	svc := &stubCourseService{
		createFn: func(context.Context, *models.Course) (int64, error) {
			return 0, apperrors.ErrCourseAlreadyExists
		},
	}

	rec := postJSON(t, newCourseRouter(svc), "/add_course",
		`{"professor_id":"turing","course_id":"cs101","course_name":"Computation"}`)

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
	envelope := decodeEnvelope(t, rec)
	if envelope.Error == nil || envelope.Error.Code != dto.ErrorCodeResourceAlreadyExists {
		t.Fatalf("unexpected error payload: %+v", envelope.Error)
	}
}

func TestEnrollMissingCourseMapsToNotFound(t *testing.T) {
	svc := &stubCourseService{
		enrollFn: func(context.Context, string, string) error {
			return apperrors.ErrCourseNotFound
		},
	}

	rec := postJSON(t, newCourseRouter(svc), "/enroll",
		`{"course_id":"ghost","student_id":"bob"}`)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	envelope := decodeEnvelope(t, rec)
	if envelope.Error == nil || envelope.Error.Code != dto.ErrorCodeResourceNotFound {
		t.Fatalf("unexpected error payload: %+v", envelope.Error)
	}
}

func TestGetEnrolledCoursesPayload(t *testing.T) {
	svc := &stubCourseService{
		byStudentFn: func(_ context.Context, studentID string) ([]*models.Course, error) {
			if studentID != "bob" {
				t.Fatalf("studentID = %q, want bob", studentID)
			}
			return []*models.Course{
				{ID: 1, CourseID: "cs101", ProfessorID: "turing", CourseName: "Computation", EnrolledIDs: []string{"bob"}},
			}, nil
		},
	}

	rec := postJSON(t, newCourseRouter(svc), "/get_enrolled_courses", `{"student_id":"bob"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", rec.Code, rec.Body.String())
	}
	var envelope struct {
		Error   *dto.ErrorPayload `json:"error"`
		Payload []models.Course   `json:"payload"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("invalid envelope: %v", err)
	}
	if len(envelope.Payload) != 1 || envelope.Payload[0].CourseID != "cs101" {
		t.Fatalf("unexpected payload: %+v", envelope.Payload)
	}
}

func TestRemoveStudentSuccess(t *testing.T) {
	called := false
	svc := &stubCourseService{
		withdrawFn: func(_ context.Context, courseID, studentID string) error {
			called = true
			if courseID != "cs101" || studentID != "bob" {
				t.Fatalf("unexpected args: %s/%s", courseID, studentID)
			}
			return nil
		},
	}

	rec := postJSON(t, newCourseRouter(svc), "/remove_student",
		`{"course_id":"cs101","student_id":"bob"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !called {
		t.Fatal("withdraw was not invoked")
	}
}
