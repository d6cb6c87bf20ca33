package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ekaraca/blackboard/internal/app/controllers"
	"github.com/ekaraca/blackboard/internal/app/models/dto"
)

// SetupRouter configures all application routes. The route set is the
// RPC-style POST contract the frontend speaks.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	courseController *controllers.CourseController,
	lectureController *controllers.LectureController,
) {
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Root")
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"status": "ok"}))
	})

	router.POST("/signup", authController.SignUp)
	router.POST("/signin", authController.SignIn)

	router.POST("/add_course", courseController.AddCourse)
	router.POST("/get_courses", courseController.GetCoursesByProfessor)
	router.POST("/get_all_courses", courseController.GetAllCourses)
	router.POST("/enroll", courseController.Enroll)
	router.POST("/get_enrolled_courses", courseController.GetEnrolledCourses)
	router.POST("/remove_student", courseController.RemoveStudent)

	router.POST("/add_lecture", lectureController.AddLecture)
	router.POST("/get_lectures", lectureController.GetLecturesByCourse)
	router.POST("/get_all_enrolled_lectures", lectureController.GetAllEnrolledLectures)
}
