package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ekaraca/blackboard/internal/app/models"
	"github.com/ekaraca/blackboard/internal/app/models/dto"
	"github.com/ekaraca/blackboard/internal/app/services"
	"github.com/ekaraca/blackboard/internal/middleware"
)

// LectureController handles lecture creation and reads.
type LectureController struct {
	lectureService services.LectureService
}

// NewLectureController creates a new LectureController
func NewLectureController(lectureService services.LectureService) *LectureController {
	return &LectureController{
		lectureService: lectureService,
	}
}

// AddLecture creates a lecture and returns the assigned lecture_id.
// @Summary Post a lecture to a course
// @Tags lectures
// @Accept json
// @Produce json
// @Param request body dto.AddLectureRequest true "Lecture"
// @Success 200 {object} dto.APIResponse
// @Router /add_lecture [post]
func (c *LectureController) AddLecture(ctx *gin.Context) {
	var req dto.AddLectureRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "Invalid lecture data", err.Error()))
		return
	}

	lectureID, err := c.lectureService.Create(ctx, &models.Lecture{
		LectureID:   req.LectureID,
		CourseID:    req.CourseID,
		ProfessorID: req.ProfessorID,
		Content:     req.Content,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(lectureID))
}

// GetLecturesByCourse lists the lectures of one course.
// @Summary List a course's lectures
// @Tags lectures
// @Accept json
// @Produce json
// @Param request body dto.GetLecturesRequest true "Course id"
// @Success 200 {object} dto.APIResponse
// @Router /get_lectures [post]
func (c *LectureController) GetLecturesByCourse(ctx *gin.Context) {
	var req dto.GetLecturesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "Invalid request data", err.Error()))
		return
	}

	lectures, err := c.lectureService.GetByCourse(ctx, req.CourseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewLectureResponses(lectures)))
}

// GetAllEnrolledLectures lists every lecture visible to a student,
// most recent first.
// @Summary List lectures across a student's enrolled courses
// @Tags lectures
// @Accept json
// @Produce json
// @Param request body dto.GetEnrolledLecturesRequest true "Student username"
// @Success 200 {object} dto.APIResponse
// @Router /get_all_enrolled_lectures [post]
func (c *LectureController) GetAllEnrolledLectures(ctx *gin.Context) {
	var req dto.GetEnrolledLecturesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "Invalid request data", err.Error()))
		return
	}

	lectures, err := c.lectureService.GetByEnrolledCourses(ctx, req.StudentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewLectureResponses(lectures)))
}
