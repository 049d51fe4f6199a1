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

type ProfileController struct {
	profileService   service.ProfileService
	analyticsService service.AnalyticsService
}

func NewProfileController(profileService service.ProfileService, analyticsService service.AnalyticsService) *ProfileController {
	return &ProfileController{profileService: profileService, analyticsService: analyticsService}
}

// GetProfile godoc
// @Summary Get the authenticated user's profile
// @Tags Profile
// @Produce json
// @Success 200 {object} dto.ProfileResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Security BearerAuth
// @Router /profile [get]
func (c *ProfileController) GetProfile(ctx *gin.Context) {
	profile, err := c.profileService.Get(middleware.UserID(ctx))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Profile not found"})
		return
	}
	ctx.JSON(http.StatusOK, profile)
}

// UpdateProfile godoc
// @Summary Update college, year and status
// @Tags Profile
// @Accept json
// @Produce json
// @Param profile body dto.ProfileUpdateDTO true "Profile fields"
// @Success 200 {object} dto.ProfileResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Security BearerAuth
// @Router /profile [put]
func (c *ProfileController) UpdateProfile(ctx *gin.Context) {
	var req dto.ProfileUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	profile, err := c.profileService.Update(middleware.UserID(ctx), req)
	if err != nil {
		log.Error().Err(err).Msg("UpdateProfile: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to update profile"})
		return
	}
	ctx.JSON(http.StatusOK, profile)
}

// UpdateDisplayName godoc
// @Summary Change the display name
// @Description Allowed at most once every 60 days.
// @Tags Profile
// @Accept json
// @Produce json
// @Param name body dto.DisplayNameUpdateDTO true "New display name"
// @Success 200 {object} dto.ProfileResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 429 {object} dto.ErrorResponse "Renamed too recently"
// @Security BearerAuth
// @Router /profile/display-name [put]
func (c *ProfileController) UpdateDisplayName(ctx *gin.Context) {
	var req dto.DisplayNameUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	profile, err := c.profileService.UpdateDisplayName(middleware.UserID(ctx), req.DisplayName)
	if err != nil {
		if errors.Is(err, service.ErrNameChangeTooSoon) {
			ctx.JSON(http.StatusTooManyRequests, dto.ErrorResponse{Message: err.Error()})
			return
		}
		log.Error().Err(err).Msg("UpdateDisplayName: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to update display name"})
		return
	}
	ctx.JSON(http.StatusOK, profile)
}

// SubjectStats godoc
// @Summary Per-subject aggregate statistics for the authenticated user
// @Tags Analytics
// @Produce json
// @Success 200 {array} dto.SubjectStatsDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /analytics/subjects [get]
func (c *ProfileController) SubjectStats(ctx *gin.Context) {
	stats, err := c.analyticsService.SubjectStats(middleware.UserID(ctx))
	if err != nil {
		log.Error().Err(err).Msg("SubjectStats: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to compute statistics"})
		return
	}
	ctx.JSON(http.StatusOK, stats)
}

// OverallStats godoc
// @Summary Cross-subject summary for the authenticated user
// @Tags Analytics
// @Produce json
// @Success 200 {object} dto.OverallStatsDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /analytics/summary [get]
func (c *ProfileController) OverallStats(ctx *gin.Context) {
	stats, err := c.analyticsService.OverallStats(middleware.UserID(ctx))
	if err != nil {
		log.Error().Err(err).Msg("OverallStats: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to compute statistics"})
		return
	}
	ctx.JSON(http.StatusOK, stats)
}
