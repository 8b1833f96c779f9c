package api

import (
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

type InstructorHandler struct {
	cmds commands.ModerationCommands
	q    queries.InstructorQueries
}

func NewInstructorHandler(cmds commands.ModerationCommands, q queries.InstructorQueries) *InstructorHandler {
	return &InstructorHandler{cmds: cmds, q: q}
}

// @Summary Browse instructors
// @Description List verified instructors, optionally by instrument
// @Tags instructors
// @Produce json
// @Param instrument query string false "Filter by instrument"
// @Success 200 {array} resdto.InstructorProfileResponse
// @Router /instructors [get]
func (h *InstructorHandler) List(c *gin.Context) {
	views, err := h.q.ListVerified(c.Request.Context(), c.Query("instrument"))
	if err != nil {
		abortServerError(c, err, "Failed to list instructors")
		return
	}

	c.JSON(http.StatusOK, resdto.FromProfileViews(views))
}

// @Summary Get instructor
// @Description Get a verified instructor profile by ID
// @Tags instructors
// @Produce json
// @Param id path string true "Instructor profile ID"
// @Success 200 {object} resdto.InstructorProfileResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /instructors/{id} [get]
func (h *InstructorHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.q.GetProfile(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrInstructorNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Instructor not found", nil)
			return
		}
		abortServerError(c, err, "Failed to load instructor")
		return
	}

	c.JSON(http.StatusOK, resdto.FromProfileView(view))
}

// @Summary Apply to become an instructor
// @Description Submit an instructor application for admin review
// @Tags instructors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SubmitApplicationRequest true "Instructor application"
// @Success 201 {object} resdto.SubmitApplicationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /instructors/apply [post]
func (h *InstructorHandler) Apply(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}
	var req reqdto.SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.SubmitInstructorApplication(c.Request.Context(), commands.SubmitApplicationRequest{
		Instrument:      req.Instrument,
		Bio:             req.Bio,
		ExperienceYears: req.ExperienceYears,
		HourlyRateCents: req.HourlyRateCents,
		Genres:          req.Genres,
		Certifications:  req.Certifications,
	}, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDuplicateApplication),
			errors.Is(err, commands.ErrAlreadyInstructor):
			httperr.AbortWithError(c, http.StatusConflict, err, "Application not allowed", nil)
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid application data", nil)
		default:
			abortServerError(c, err, "Submit application failed")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.SubmitApplicationResponse{ApplicationID: result.ApplicationID})
}
