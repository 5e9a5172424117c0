package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/saqh5037/quizApp-sub002/internal/dto"
	"github.com/saqh5037/quizApp-sub002/internal/service"
)

type AdminQuizController struct {
	adminQuizService service.AdminQuizService
	generatorService service.QuestionGeneratorService
}

func NewAdminQuizController(adminQuizService service.AdminQuizService, generatorService service.QuestionGeneratorService) *AdminQuizController {
	return &AdminQuizController{adminQuizService: adminQuizService, generatorService: generatorService}
}

// CreateQuiz godoc
// @Summary (Admin) Create a new quiz with its questions
// @Tags Admin - Quizzes
// @Accept json
// @Produce json
// @Param quiz_data body dto.QuizCreateDTO true "Quiz with at least one question"
// @Success 201 {object} dto.QuizResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/quizzes [post]
func (c *AdminQuizController) CreateQuiz(ctx *gin.Context) {
	var req dto.QuizCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateQuiz: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.adminQuizService.CreateQuiz(req)
	if err != nil {
		log.Error().Err(err).Msg("Admin CreateQuiz: Service error")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to create quiz", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// UpdateQuiz godoc
// @Summary (Admin) Update quiz metadata
// @Tags Admin - Quizzes
// @Accept json
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Param quiz_data body dto.QuizUpdateDTO true "Fields to update"
// @Success 200 {object} dto.QuizResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /admin/quizzes/{quiz_id} [put]
func (c *AdminQuizController) UpdateQuiz(ctx *gin.Context) {
	quizID, ok := parseIDParam(ctx, "quiz_id")
	if !ok {
		return
	}
	var req dto.QuizUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.adminQuizService.UpdateQuiz(quizID, req)
	if err != nil {
		respondServiceError(ctx, err, "Failed to update quiz")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// DeleteQuiz godoc
// @Summary (Admin) Delete a quiz and its questions
// @Tags Admin - Quizzes
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Success 204 "Quiz deleted"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /admin/quizzes/{quiz_id} [delete]
func (c *AdminQuizController) DeleteQuiz(ctx *gin.Context) {
	quizID, ok := parseIDParam(ctx, "quiz_id")
	if !ok {
		return
	}
	if err := c.adminQuizService.DeleteQuiz(quizID); err != nil {
		respondServiceError(ctx, err, "Failed to delete quiz")
		return
	}
	ctx.Status(http.StatusNoContent)
}

// AddQuestion godoc
// @Summary (Admin) Add a question to an existing quiz
// @Tags Admin - Quizzes
// @Accept json
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Param question_data body dto.QuestionCreateDTO true "Question to add"
// @Success 201 {object} dto.QuestionResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /admin/quizzes/{quiz_id}/questions [post]
func (c *AdminQuizController) AddQuestion(ctx *gin.Context) {
	quizID, ok := parseIDParam(ctx, "quiz_id")
	if !ok {
		return
	}
	var req dto.QuestionCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.adminQuizService.AddQuestion(quizID, req)
	if err != nil {
		respondServiceError(ctx, err, "Failed to add question")
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// UpdateQuestion godoc
// @Summary (Admin) Replace a question's content
// @Tags Admin - Quizzes
// @Accept json
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Param question_id path int true "Question ID"
// @Param question_data body dto.QuestionCreateDTO true "Full question payload"
// @Success 200 {object} dto.QuestionResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Quiz or question not found"
// @Router /admin/quizzes/{quiz_id}/questions/{question_id} [put]
func (c *AdminQuizController) UpdateQuestion(ctx *gin.Context) {
	quizID, ok := parseIDParam(ctx, "quiz_id")
	if !ok {
		return
	}
	questionID, ok := parseIDParam(ctx, "question_id")
	if !ok {
		return
	}
	var req dto.QuestionCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.adminQuizService.UpdateQuestion(quizID, questionID, req)
	if err != nil {
		respondServiceError(ctx, err, "Failed to update question")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// DeleteQuestion godoc
// @Summary (Admin) Remove a question from a quiz
// @Tags Admin - Quizzes
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Param question_id path int true "Question ID"
// @Success 204 "Question deleted"
// @Failure 404 {object} dto.ErrorResponse "Quiz or question not found"
// @Router /admin/quizzes/{quiz_id}/questions/{question_id} [delete]
func (c *AdminQuizController) DeleteQuestion(ctx *gin.Context) {
	quizID, ok := parseIDParam(ctx, "quiz_id")
	if !ok {
		return
	}
	questionID, ok := parseIDParam(ctx, "question_id")
	if !ok {
		return
	}
	if err := c.adminQuizService.DeleteQuestion(quizID, questionID); err != nil {
		respondServiceError(ctx, err, "Failed to delete question")
		return
	}
	ctx.Status(http.StatusNoContent)
}

// GenerateQuestions godoc
// @Summary (Admin) Draft quiz questions with AI
// @Description Asks the AI generator for question drafts on a topic. Drafts are returned for review, nothing is stored.
// @Tags Admin - Quizzes
// @Accept json
// @Produce json
// @Param generation_request body dto.GenerateQuestionsDTO true "Topic, count and question type"
// @Success 200 {array} dto.QuestionCreateDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 502 {object} dto.ErrorResponse "AI generation failed"
// @Router /admin/quizzes/generate [post]
func (c *AdminQuizController) GenerateQuestions(ctx *gin.Context) {
	var req dto.GenerateQuestionsDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	drafts, err := c.generatorService.GenerateQuestions(ctx.Request.Context(), req)
	if err != nil {
		log.Error().Err(err).Str("topic", req.Topic).Msg("Admin GenerateQuestions: generation failed")
		ctx.JSON(http.StatusBadGateway, dto.ErrorResponse{Message: "Question generation failed", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, drafts)
}

func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	val, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(val), true
}

func respondServiceError(ctx *gin.Context, err error, message string) {
	status := http.StatusInternalServerError
	switch err {
	case service.ErrQuizNotFound, service.ErrSessionNotFound, service.ErrParticipantNotFound, service.ErrQuestionNotInQuiz:
		status = http.StatusNotFound
	case service.ErrInvalidTransition, service.ErrSessionNotJoinable, service.ErrSessionClosed, service.ErrSessionNotCompleted:
		status = http.StatusUnprocessableEntity
	case service.ErrNicknameTaken, service.ErrDuplicateAnswer:
		status = http.StatusConflict
	}
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Msg(message)
	}
	ctx.JSON(status, dto.ErrorResponse{Message: message, Details: []string{err.Error()}})
}
