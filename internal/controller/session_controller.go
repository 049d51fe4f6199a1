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

type SessionController struct {
	sessionService service.SessionService
	resultService  service.ResultService
}

func NewSessionController(sessionService service.SessionService, resultService service.ResultService) *SessionController {
	return &SessionController{sessionService: sessionService, resultService: resultService}
}

// StartSession godoc
// @Summary Start a timed test for a subject
// @Description Draws up to 20 shuffled questions matching the subject (case-insensitive) and starts the countdown.
// @Tags Sessions
// @Accept json
// @Produce json
// @Param session body dto.SessionStartDTO true "Subject to test"
// @Success 201 {object} dto.SessionStateDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "No questions for this subject"
// @Security BearerAuth
// @Router /sessions [post]
func (c *SessionController) StartSession(ctx *gin.Context) {
	var req dto.SessionStartDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	state, err := c.sessionService.Start(middleware.UserID(ctx), req.Subject)
	if err != nil {
		if errors.Is(err, service.ErrNoQuestions) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
			return
		}
		log.Error().Err(err).Str("subject", req.Subject).Msg("StartSession: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to start session"})
		return
	}
	ctx.JSON(http.StatusCreated, state)
}

// GetSession godoc
// @Summary Get the live state of a session
// @Tags Sessions
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.SessionStateDTO
// @Failure 403 {object} dto.ErrorResponse "Session owned by another user"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Security BearerAuth
// @Router /sessions/{session_id} [get]
func (c *SessionController) GetSession(ctx *gin.Context) {
	state, err := c.sessionService.Snapshot(ctx.Param("session_id"), middleware.UserID(ctx))
	if err != nil {
		respondSessionError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, state)
}

// SelectAnswer godoc
// @Summary Record an answer for a question in the session
// @Description Overwrites any prior selection for the question. The option must be one of the question's own options.
// @Tags Sessions
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param answer body dto.AnswerSelectDTO true "Question and selected option"
// @Success 200 {object} dto.SessionStateDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid body, unknown question, or foreign option"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Security BearerAuth
// @Router /sessions/{session_id}/answers [post]
func (c *SessionController) SelectAnswer(ctx *gin.Context) {
	var req dto.AnswerSelectDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	state, err := c.sessionService.SelectAnswer(ctx.Param("session_id"), middleware.UserID(ctx), req)
	if err != nil {
		respondSessionError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, state)
}

// NextQuestion godoc
// @Summary Move to the next question
// @Description Bounded: a no-op on the last question. Elapsed time is attributed to the question being left.
// @Tags Sessions
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.SessionStateDTO
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Security BearerAuth
// @Router /sessions/{session_id}/next [post]
func (c *SessionController) NextQuestion(ctx *gin.Context) {
	state, err := c.sessionService.Next(ctx.Param("session_id"), middleware.UserID(ctx))
	if err != nil {
		respondSessionError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, state)
}

// PreviousQuestion godoc
// @Summary Move to the previous question
// @Tags Sessions
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.SessionStateDTO
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Security BearerAuth
// @Router /sessions/{session_id}/previous [post]
func (c *SessionController) PreviousQuestion(ctx *gin.Context) {
	state, err := c.sessionService.Previous(ctx.Param("session_id"), middleware.UserID(ctx))
	if err != nil {
		respondSessionError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, state)
}

// JumpToQuestion godoc
// @Summary Jump directly to a question by index
// @Tags Sessions
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param jump body dto.JumpDTO true "Zero-based question index"
// @Success 200 {object} dto.SessionStateDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Security BearerAuth
// @Router /sessions/{session_id}/jump [post]
func (c *SessionController) JumpToQuestion(ctx *gin.Context) {
	var req dto.JumpDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	state, err := c.sessionService.Jump(ctx.Param("session_id"), middleware.UserID(ctx), req.Index)
	if err != nil {
		respondSessionError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, state)
}

// SubmitSession godoc
// @Summary Submit the attempt and get the scored review bundle
// @Description Stops the countdown, scores the attempt and persists the result. The review is served from local scoring even when persistence fails.
// @Tags Sessions
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} dto.TestReviewDTO
// @Failure 404 {object} dto.ErrorResponse "Session not found or already submitted"
// @Security BearerAuth
// @Router /sessions/{session_id}/submit [post]
func (c *SessionController) SubmitSession(ctx *gin.Context) {
	review, err := c.sessionService.Submit(ctx.Param("session_id"), middleware.UserID(ctx))
	if err != nil {
		respondSessionError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, review)
}

// ResultHistory godoc
// @Summary List the authenticated user's past results
// @Tags Sessions
// @Produce json
// @Success 200 {array} dto.TestResultDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /results [get]
func (c *SessionController) ResultHistory(ctx *gin.Context) {
	results, err := c.resultService.History(middleware.UserID(ctx))
	if err != nil {
		log.Error().Err(err).Msg("ResultHistory: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to fetch results"})
		return
	}
	ctx.JSON(http.StatusOK, results)
}

func respondSessionError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrSessionForbidden):
		ctx.JSON(http.StatusForbidden, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrQuestionNotInSession), errors.Is(err, service.ErrInvalidOption):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
	default:
		log.Error().Err(err).Msg("Session operation failed")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Session operation failed"})
	}
}
