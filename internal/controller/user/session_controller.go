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

// UserSessionController exposes the participant-side of a live session:
// joining, answering, polling state and fetching results.
type UserSessionController struct {
	sessionService     service.SessionService
	submissionService  service.SubmissionService
	resultsService     service.ResultsService
	certificateService service.CertificateService
}

func NewUserSessionController(
	sessionService service.SessionService,
	submissionService service.SubmissionService,
	resultsService service.ResultsService,
	certificateService service.CertificateService,
) *UserSessionController {
	return &UserSessionController{
		sessionService:     sessionService,
		submissionService:  submissionService,
		resultsService:     resultsService,
		certificateService: certificateService,
	}
}

// JoinSession godoc
// @Summary Join a session by code
// @Description Registers a nickname in a session. Allowed while the session is waiting, or active if the host enabled late join.
// @Tags User - Sessions
// @Accept json
// @Produce json
// @Param code path string true "Session code"
// @Param join_data body dto.JoinSessionDTO true "Nickname and optional user ID"
// @Success 201 {object} dto.ParticipantResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 409 {object} dto.ErrorResponse "Nickname already taken"
// @Failure 422 {object} dto.ErrorResponse "Session not accepting joins"
// @Router /sessions/{code}/join [post]
func (c *UserSessionController) JoinSession(ctx *gin.Context) {
	var req dto.JoinSessionDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	participant, err := c.sessionService.Join(ctx.Request.Context(), ctx.Param("code"), req)
	if err != nil {
		c.respondError(ctx, err, "Failed to join session")
		return
	}
	ctx.JSON(http.StatusCreated, participant)
}

// SubmitAnswer godoc
// @Summary Submit an answer to the current question
// @Description Grades the answer, applies the speed bonus and updates the participant score. One answer per participant per question.
// @Tags User - Sessions
// @Accept json
// @Produce json
// @Param code path string true "Session code"
// @Param answer_data body dto.SubmitAnswerDTO true "Answer payload"
// @Success 200 {object} dto.AnswerResultDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Session, participant or question not found"
// @Failure 409 {object} dto.ErrorResponse "Answer already submitted"
// @Failure 422 {object} dto.ErrorResponse "Session is not accepting answers"
// @Router /sessions/{code}/answers [post]
func (c *UserSessionController) SubmitAnswer(ctx *gin.Context) {
	var req dto.SubmitAnswerDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	result, err := c.submissionService.SubmitAnswer(ctx.Request.Context(), ctx.Param("code"), req)
	if err != nil {
		c.respondError(ctx, err, "Failed to submit answer")
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// GetSessionState godoc
// @Summary Poll the live session state
// @Description Returns status, current question (without correct answers) and the leaderboard. Served from the live snapshot when available.
// @Tags User - Sessions
// @Produce json
// @Param code path string true "Session code"
// @Success 200 {object} dto.SessionStateDTO
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{code}/state [get]
func (c *UserSessionController) GetSessionState(ctx *gin.Context) {
	state, err := c.sessionService.GetState(ctx.Request.Context(), ctx.Param("code"))
	if err != nil {
		c.respondError(ctx, err, "Failed to fetch session state")
		return
	}
	ctx.JSON(http.StatusOK, state)
}

// GetSessionResults godoc
// @Summary Get aggregated session results
// @Description Per-question correct/incorrect/skipped counts plus session-wide score statistics and the final standings.
// @Tags User - Sessions
// @Produce json
// @Param code path string true "Session code"
// @Success 200 {object} dto.SessionResultsDTO
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{code}/results [get]
func (c *UserSessionController) GetSessionResults(ctx *gin.Context) {
	results, err := c.resultsService.GetSessionResults(ctx.Param("code"))
	if err != nil {
		c.respondError(ctx, err, "Failed to fetch session results")
		return
	}
	ctx.JSON(http.StatusOK, results)
}

// DownloadCertificate godoc
// @Summary Download a completion certificate
// @Description Renders a PDF certificate for a participant once the session is completed.
// @Tags User - Sessions
// @Produce application/pdf
// @Param code path string true "Session code"
// @Param participant_id path int true "Participant ID"
// @Success 200 {file} binary "PDF certificate"
// @Failure 404 {object} dto.ErrorResponse "Session or participant not found"
// @Failure 422 {object} dto.ErrorResponse "Session is not completed yet"
// @Router /sessions/{code}/participants/{participant_id}/certificate [get]
func (c *UserSessionController) DownloadCertificate(ctx *gin.Context) {
	participantID, err := strconv.ParseUint(ctx.Param("participant_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid participant_id format"})
		return
	}

	data, filename, err := c.certificateService.Generate(ctx.Param("code"), uint(participantID))
	if err != nil {
		c.respondError(ctx, err, "Failed to generate certificate")
		return
	}
	ctx.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	ctx.Data(http.StatusOK, "application/pdf", data)
}

func (c *UserSessionController) respondError(ctx *gin.Context, err error, message string) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrSessionNotFound),
		errors.Is(err, service.ErrParticipantNotFound),
		errors.Is(err, service.ErrQuestionNotInQuiz):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrNicknameTaken),
		errors.Is(err, service.ErrDuplicateAnswer):
		status = http.StatusConflict
	case errors.Is(err, service.ErrSessionNotJoinable),
		errors.Is(err, service.ErrSessionClosed),
		errors.Is(err, service.ErrSessionNotCompleted):
		status = http.StatusUnprocessableEntity
	}
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("code", ctx.Param("code")).Msg(message)
	}
	ctx.JSON(status, dto.ErrorResponse{Message: message, Details: []string{err.Error()}})
}
