package api

import (
	"context"
	"errors"
	"net/http"

	reqdto "tarumbeta-server/internal/handler/dto/request"
	resdto "tarumbeta-server/internal/handler/dto/response"
	"tarumbeta-server/internal/handler/httperr"
	"tarumbeta-server/internal/handler/middleware"
	"tarumbeta-server/internal/pkg/errs"
	"tarumbeta-server/internal/usecase/commands"
	"tarumbeta-server/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LessonHandler struct {
	cmds commands.LessonCommands
	q    queries.LessonQueries
}

func NewLessonHandler(cmds commands.LessonCommands, q queries.LessonQueries) *LessonHandler {
	return &LessonHandler{cmds: cmds, q: q}
}

// @Summary Book lesson
// @Description Book a lesson with a verified instructor
// @Tags lessons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateLessonRequest true "Create lesson request"
// @Success 201 {object} resdto.CreateLessonResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /lessons [post]
func (h *LessonHandler) Create(c *gin.Context) {
	learnerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}
	var req reqdto.CreateLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.CreateLesson(c.Request.Context(), commands.CreateLessonRequest{
		InstructorProfileID: req.InstructorProfileID,
		RentalID:            req.RentalID,
		Instrument:          req.Instrument,
		SkillLevel:          req.SkillLevel,
		SessionType:         req.SessionType,
		ScheduledAt:         req.ScheduledAt,
		DurationMinutes:     req.DurationMinutes,
	}, learnerID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInstructorNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Instructor not found", nil)
		case errors.Is(err, commands.ErrInstructorNotVerified),
			errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid lesson request", nil)
		case errors.Is(err, errs.ErrBookingConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "Instructor is already booked at this time", nil)
		default:
			abortServerError(c, err, "Book lesson failed")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateLessonResponse{
		LessonID:   result.LessonID,
		PriceCents: result.PriceCents,
	})
}

// @Summary Get lesson
// @Description Get a lesson by ID (parties and admins only)
// @Tags lessons
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lesson ID"
// @Success 200 {object} resdto.LessonResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /lessons/{id} [get]
func (h *LessonHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	requesterID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}
	role, _ := middleware.GetUserRole(c)

	view, err := h.q.GetLesson(c.Request.Context(), id, requesterID, role)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrLessonNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Lesson not found", nil)
		case errors.Is(err, errs.ErrActorNotAllowed):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
		default:
			abortServerError(c, err, "Failed to load lesson")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromLessonView(view))
}

// @Summary My lessons
// @Description List lessons booked by the authenticated learner
// @Tags lessons
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.LessonResponse
// @Failure 401 {object} map[string]string
// @Router /lessons [get]
func (h *LessonHandler) ListMine(c *gin.Context) {
	learnerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}

	views, err := h.q.ListByLearner(c.Request.Context(), learnerID)
	if err != nil {
		abortServerError(c, err, "Failed to list lessons")
		return
	}

	c.JSON(http.StatusOK, resdto.FromLessonViews(views))
}

// @Summary Lessons I teach
// @Description List lessons where the authenticated user is the instructor
// @Tags lessons
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.LessonResponse
// @Failure 401 {object} map[string]string
// @Router /lessons/teaching [get]
func (h *LessonHandler) ListTeaching(c *gin.Context) {
	instructorUserID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}

	views, err := h.q.ListByInstructor(c.Request.Context(), instructorUserID)
	if err != nil {
		abortServerError(c, err, "Failed to list lessons")
		return
	}

	c.JSON(http.StatusOK, resdto.FromLessonViews(views))
}

// @Summary Instructor earnings
// @Description Total earnings from the authenticated instructor's completed lessons
// @Tags lessons
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.InstructorEarningsResponse
// @Failure 401 {object} map[string]string
// @Router /lessons/earnings [get]
func (h *LessonHandler) Earnings(c *gin.Context) {
	instructorUserID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}

	total, err := h.q.InstructorEarnings(c.Request.Context(), instructorUserID)
	if err != nil {
		abortServerError(c, err, "Failed to load earnings")
		return
	}

	c.JSON(http.StatusOK, resdto.InstructorEarningsResponse{TotalEarningsCents: total})
}

// @Summary Approve lesson
// @Description Instructor approves a scheduled lesson request
// @Tags lessons
// @Security BearerAuth
// @Param id path string true "Lesson ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /lessons/{id}/approve [post]
func (h *LessonHandler) Approve(c *gin.Context) {
	h.transition(c, h.cmds.ApproveLesson)
}

// @Summary Reject lesson
// @Description Instructor declines a scheduled lesson request
// @Tags lessons
// @Security BearerAuth
// @Param id path string true "Lesson ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /lessons/{id}/reject [post]
func (h *LessonHandler) Reject(c *gin.Context) {
	h.transition(c, h.cmds.RejectLesson)
}

// @Summary Complete lesson
// @Description Instructor marks an approved lesson as completed
// @Tags lessons
// @Security BearerAuth
// @Param id path string true "Lesson ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /lessons/{id}/complete [post]
func (h *LessonHandler) Complete(c *gin.Context) {
	h.transition(c, h.cmds.CompleteLesson)
}

// @Summary Cancel lesson
// @Description Either party cancels a scheduled or approved lesson
// @Tags lessons
// @Security BearerAuth
// @Param id path string true "Lesson ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /lessons/{id}/cancel [post]
func (h *LessonHandler) Cancel(c *gin.Context) {
	h.transition(c, h.cmds.CancelLesson)
}

func (h *LessonHandler) transition(c *gin.Context, op func(ctx context.Context, lessonID, actorID uuid.UUID) error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}

	if err := op(c.Request.Context(), id, actorID); err != nil {
		abortLifecycleError(c, err, errs.ErrLessonNotFound, "Lesson")
		return
	}
	c.Status(http.StatusNoContent)
}
