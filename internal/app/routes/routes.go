package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/openlms/backend/internal/app/controllers"
	"github.com/openlms/backend/internal/app/models/dto"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	teacherController *controllers.TeacherController,
	courseController *controllers.CourseController,
	enrolmentController *controllers.EnrolmentController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Student routes
	students := v1.Group("/students")
	{
		students.POST("", studentController.CreateStudent)
		students.GET("", studentController.GetAllStudents)
		students.GET("/:id", studentController.GetStudentByID)
		students.PUT("/:id", studentController.UpdateStudent)
		students.PATCH("/:id", studentController.UpdateStudent)
		students.DELETE("/:id", studentController.DeleteStudent)
	}

	// Teacher routes
	teachers := v1.Group("/teachers")
	{
		teachers.POST("", teacherController.CreateTeacher)
		teachers.GET("", teacherController.GetAllTeachers)
		teachers.GET("/:id", teacherController.GetTeacherByID)
		teachers.PUT("/:id", teacherController.UpdateTeacher)
		teachers.PATCH("/:id", teacherController.UpdateTeacher)
		teachers.DELETE("/:id", teacherController.DeleteTeacher)
	}

	// Course routes
	courses := v1.Group("/courses")
	{
		courses.POST("", courseController.CreateCourse)
		courses.GET("", courseController.GetAllCourses)
		courses.GET("/:id", courseController.GetCourseByID)
		courses.PUT("/:id", courseController.UpdateCourse)
		courses.PATCH("/:id", courseController.UpdateCourse)
		courses.DELETE("/:id", courseController.DeleteCourse)
	}

	// Enrolment routes
	enrolments := v1.Group("/enrolments")
	{
		enrolments.POST("", enrolmentController.CreateEnrolment)
		enrolments.GET("", enrolmentController.ListEnrolments)
		enrolments.GET("/:id", enrolmentController.GetEnrolmentByID)
		enrolments.DELETE("/:id", enrolmentController.DeleteEnrolment)
	}

	// Health check endpoint
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data:      gin.H{"status": "ok"},
			Timestamp: time.Now(),
		})
	})
}
