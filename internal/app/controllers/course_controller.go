package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ekaraca/blackboard/internal/app/models"
	"github.com/ekaraca/blackboard/internal/app/models/dto"
	"github.com/ekaraca/blackboard/internal/app/services"
	"github.com/ekaraca/blackboard/internal/middleware"
)

// CourseController handles course creation, listing and enrollment.
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// AddCourse creates a course and returns its surrogate id.
// @Summary Create a new course
// @Tags courses
// @Accept json
// @Produce json
// @Param request body dto.AddCourseRequest true "Course information"
// @Success 200 {object} dto.APIResponse
// @Router /add_course [post]
func (c *CourseController) AddCourse(ctx *gin.Context) {
	var req dto.AddCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "Invalid course data", err.Error()))
		return
	}

	id, err := c.courseService.Create(ctx, &models.Course{
		CourseID:    req.CourseID,
		ProfessorID: req.ProfessorID,
		CourseName:  req.CourseName,
		EnrolledIDs: req.EnrolledIDs,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(id))
}

// GetCoursesByProfessor lists the courses owned by a professor.
// @Summary List a professor's courses
// @Tags courses
// @Accept json
// @Produce json
// @Param request body dto.GetCoursesRequest true "Professor username"
// @Success 200 {object} dto.APIResponse
// @Router /get_courses [post]
func (c *CourseController) GetCoursesByProfessor(ctx *gin.Context) {
	var req dto.GetCoursesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "Invalid request data", err.Error()))
		return
	}

	courses, err := c.courseService.GetByProfessor(ctx, req.ProfessorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(courses))
}

// GetAllCourses lists every course.
// @Summary List all courses
// @Tags courses
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /get_all_courses [post]
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	courses, err := c.courseService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(courses))
}

// Enroll appends a student to a course's membership array.
// @Summary Enroll a student in a course
// @Tags courses
// @Accept json
// @Produce json
// @Param request body dto.EnrollRequest true "Enrollment"
// @Success 200 {object} dto.APIResponse
// @Router /enroll [post]
func (c *CourseController) Enroll(ctx *gin.Context) {
	var req dto.EnrollRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "Invalid enrollment data", err.Error()))
		return
	}

	if err := c.courseService.Enroll(ctx, req.CourseID, req.StudentID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{}))
}

// GetEnrolledCourses lists the courses a student is enrolled in.
// @Summary List a student's enrolled courses
// @Tags courses
// @Accept json
// @Produce json
// @Param request body dto.GetStudentCoursesRequest true "Student username"
// @Success 200 {object} dto.APIResponse
// @Router /get_enrolled_courses [post]
func (c *CourseController) GetEnrolledCourses(ctx *gin.Context) {
	var req dto.GetStudentCoursesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "Invalid request data", err.Error()))
		return
	}

	courses, err := c.courseService.GetByStudent(ctx, req.StudentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(courses))
}

// RemoveStudent withdraws a student from a course.
// @Summary Remove a student from a course
// @Tags courses
// @Accept json
// @Produce json
// @Param request body dto.RemoveStudentRequest true "Withdrawal"
// @Success 200 {object} dto.APIResponse
// @Router /remove_student [post]
func (c *CourseController) RemoveStudent(ctx *gin.Context) {
	var req dto.RemoveStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "Invalid withdrawal data", err.Error()))
		return
	}

	if err := c.courseService.Withdraw(ctx, req.CourseID, req.StudentID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{}))
}
