package admin

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/saqh5037/quizApp-sub002/internal/dto"
	"github.com/saqh5037/quizApp-sub002/internal/service"
)

// AdminSessionController exposes the host-side session controls.
type AdminSessionController struct {
	sessionService service.SessionService
}

func NewAdminSessionController(sessionService service.SessionService) *AdminSessionController {
	return &AdminSessionController{sessionService: sessionService}
}

// CreateSession godoc
// @Summary (Host) Open a new live session for a quiz
// @Tags Admin - Sessions
// @Accept json
// @Produce json
// @Param session_data body dto.SessionCreateDTO true "Quiz to host and session options"
// @Success 201 {object} dto.SessionResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /admin/sessions [post]
func (c *AdminSessionController) CreateSession(ctx *gin.Context) {
	var req dto.SessionCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Host CreateSession: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.sessionService.CreateSession(ctx.Request.Context(), req)
	if err != nil {
		respondServiceError(ctx, err, "Failed to create session")
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// StartSession godoc
// @Summary (Host) Start a waiting session
// @Tags Admin - Sessions
// @Produce json
// @Param code path string true "Session code"
// @Success 200 {object} dto.SessionResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 422 {object} dto.ErrorResponse "Illegal status transition"
// @Router /admin/sessions/{code}/start [post]
func (c *AdminSessionController) StartSession(ctx *gin.Context) {
	c.runTransition(ctx, c.sessionService.Start, "Failed to start session")
}

// PauseSession godoc
// @Summary (Host) Pause an active session
// @Tags Admin - Sessions
// @Produce json
// @Param code path string true "Session code"
// @Success 200 {object} dto.SessionResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 422 {object} dto.ErrorResponse "Illegal status transition"
// @Router /admin/sessions/{code}/pause [post]
func (c *AdminSessionController) PauseSession(ctx *gin.Context) {
	c.runTransition(ctx, c.sessionService.Pause, "Failed to pause session")
}

// ResumeSession godoc
// @Summary (Host) Resume a paused session
// @Tags Admin - Sessions
// @Produce json
// @Param code path string true "Session code"
// @Success 200 {object} dto.SessionResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 422 {object} dto.ErrorResponse "Illegal status transition"
// @Router /admin/sessions/{code}/resume [post]
func (c *AdminSessionController) ResumeSession(ctx *gin.Context) {
	c.runTransition(ctx, c.sessionService.Resume, "Failed to resume session")
}

// NextQuestion godoc
// @Summary (Host) Advance to the next question
// @Description Past the last question the session is completed instead.
// @Tags Admin - Sessions
// @Produce json
// @Param code path string true "Session code"
// @Success 200 {object} dto.SessionResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 422 {object} dto.ErrorResponse "Session is not active"
// @Router /admin/sessions/{code}/next [post]
func (c *AdminSessionController) NextQuestion(ctx *gin.Context) {
	c.runTransition(ctx, c.sessionService.NextQuestion, "Failed to advance session")
}

// CompleteSession godoc
// @Summary (Host) Complete a session
// @Tags Admin - Sessions
// @Produce json
// @Param code path string true "Session code"
// @Success 200 {object} dto.SessionResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 422 {object} dto.ErrorResponse "Illegal status transition"
// @Router /admin/sessions/{code}/complete [post]
func (c *AdminSessionController) CompleteSession(ctx *gin.Context) {
	c.runTransition(ctx, c.sessionService.Complete, "Failed to complete session")
}

func (c *AdminSessionController) runTransition(
	ctx *gin.Context,
	op func(ctx context.Context, code string) (*dto.SessionResponseDTO, error),
	message string,
) {
	code := ctx.Param("code")
	resp, err := op(ctx.Request.Context(), code)
	if err != nil {
		respondServiceError(ctx, err, message)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
