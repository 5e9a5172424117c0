package user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/saqh5037/quizApp-sub002/internal/dto"
	"github.com/saqh5037/quizApp-sub002/internal/service"
)

type UserQuizController struct {
	userQuizService service.UserQuizService
}

func NewUserQuizController(userQuizService service.UserQuizService) *UserQuizController {
	return &UserQuizController{userQuizService: userQuizService}
}

// GetAllQuizzes godoc
// @Summary Browse available quizzes
// @Tags User - Quizzes
// @Produce json
// @Success 200 {array} dto.QuizSummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quizzes [get]
func (c *UserQuizController) GetAllQuizzes(ctx *gin.Context) {
	quizzes, err := c.userQuizService.GetAllQuizzes()
	if err != nil {
		log.Error().Err(err).Msg("User GetAllQuizzes: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve quizzes"})
		return
	}
	ctx.JSON(http.StatusOK, quizzes)
}

// GetQuizDetails godoc
// @Summary Get a quiz with its questions
// @Description Questions are returned without their correct answers.
// @Tags User - Quizzes
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Success 200 {object} dto.QuizDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid quiz ID"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /quizzes/{quiz_id} [get]
func (c *UserQuizController) GetQuizDetails(ctx *gin.Context) {
	quizID, err := strconv.ParseUint(ctx.Param("quiz_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid quiz_id format"})
		return
	}

	quiz, err := c.userQuizService.GetQuizDetails(uint(quizID))
	if err != nil {
		if errors.Is(err, service.ErrQuizNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Quiz not found"})
			return
		}
		log.Error().Err(err).Uint64("quizID", quizID).Msg("User GetQuizDetails: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve quiz"})
		return
	}
	ctx.JSON(http.StatusOK, quiz)
}
