package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ekaraca/blackboard/internal/app/models/dto"
	"github.com/ekaraca/blackboard/internal/app/services"
	"github.com/ekaraca/blackboard/internal/middleware"
)

// AuthController handles signup and signin.
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// SignUp registers a user and returns the assigned username.
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.SignUpRequest true "User information"
// @Success 200 {object} dto.APIResponse
// @Router /signup [post]
func (c *AuthController) SignUp(ctx *gin.Context) {
	var req dto.SignUpRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "Invalid signup data", err.Error()))
		return
	}

	username, err := c.authService.SignUp(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(username))
}

// SignIn verifies credentials and returns the stored identity.
// @Summary Sign in with username and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.SignInRequest true "Credentials"
// @Success 200 {object} dto.APIResponse
// @Router /signin [post]
func (c *AuthController) SignIn(ctx *gin.Context) {
	var req dto.SignInRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "Invalid signin data", err.Error()))
		return
	}

	user, err := c.authService.SignIn(ctx, req.UserName, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(user))
}
