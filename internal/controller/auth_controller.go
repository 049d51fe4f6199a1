package controller

import (
	"errors"
	"net/http"

	"github.com/adislens/medpgprep/internal/dto"
	"github.com/adislens/medpgprep/internal/middleware"
	"github.com/adislens/medpgprep/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type AuthController struct {
	authService    service.AuthService
	accountService service.AccountService
}

func NewAuthController(authService service.AuthService, accountService service.AccountService) *AuthController {
	return &AuthController{authService: authService, accountService: accountService}
}

// Register godoc
// @Summary Create a new account
// @Tags Auth
// @Accept json
// @Produce json
// @Param registration body dto.RegisterRequestDTO true "Account details"
// @Success 201 {object} dto.AuthResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.authService.Register(req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: err.Error()})
			return
		}
		log.Error().Err(err).Msg("Register: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to create account"})
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// Login godoc
// @Summary Sign in with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequestDTO true "Credentials"
// @Success 200 {object} dto.AuthResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.authService.Login(req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: err.Error()})
			return
		}
		log.Error().Err(err).Msg("Login: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to sign in"})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Me godoc
// @Summary Get the authenticated user
// @Tags Auth
// @Produce json
// @Success 200 {object} dto.UserDTO
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Security BearerAuth
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	user, err := c.authService.CurrentUser(middleware.UserID(ctx))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "User not found"})
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// DeleteAccount godoc
// @Summary Delete the authenticated account and everything it owns
// @Description Best-effort cascade over votes, replies, posts, points, results and profile. Partial failures are surfaced, completed steps are not rolled back.
// @Tags Auth
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Failure 500 {object} dto.ErrorResponse "Cascade failed part-way"
// @Security BearerAuth
// @Router /account [delete]
func (c *AuthController) DeleteAccount(ctx *gin.Context) {
	if err := c.accountService.DeleteAccount(middleware.UserID(ctx)); err != nil {
		log.Error().Err(err).Uint("userID", middleware.UserID(ctx)).Msg("DeleteAccount: cascade failed")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Account deletion failed", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Account deleted"})
}
