package admin

import (
	"net/http"

	"github.com/adislens/medpgprep/internal/dto"
	"github.com/adislens/medpgprep/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type AdminQuestionController struct {
	questionService service.AdminQuestionService
}

func NewAdminQuestionController(questionService service.AdminQuestionService) *AdminQuestionController {
	return &AdminQuestionController{questionService: questionService}
}

// CreateQuestion godoc
// @Summary (Admin) Add a question to the bank
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Param question body dto.QuestionCreateDTO true "Question with options and correct answer"
// @Success 201 {object} dto.QuestionResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid question (duplicate options, answer not among options)"
// @Router /admin/questions [post]
func (c *AdminQuestionController) CreateQuestion(ctx *gin.Context) {
	var req dto.QuestionCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	question, err := c.questionService.CreateQuestion(req)
	if err != nil {
		log.Warn().Err(err).Msg("CreateQuestion: rejected")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, question)
}

// ImportQuestions godoc
// @Summary (Admin) Import a batch of questions
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Param questions body dto.QuestionBatchCreateDTO true "Questions to import"
// @Success 201 {array} dto.QuestionResponseDTO
// @Failure 400 {object} dto.ErrorResponse "A question in the batch failed validation"
// @Router /admin/questions/import [post]
func (c *AdminQuestionController) ImportQuestions(ctx *gin.Context) {
	var req dto.QuestionBatchCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	questions, err := c.questionService.ImportQuestions(req)
	if err != nil {
		log.Warn().Err(err).Msg("ImportQuestions: rejected")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, questions)
}

// ListSubjects godoc
// @Summary List distinct subjects available in the question bank
// @Tags Admin - Questions
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/questions/subjects [get]
func (c *AdminQuestionController) ListSubjects(ctx *gin.Context) {
	subjects, err := c.questionService.ListSubjects()
	if err != nil {
		log.Error().Err(err).Msg("ListSubjects: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to list subjects"})
		return
	}
	ctx.JSON(http.StatusOK, subjects)
}
