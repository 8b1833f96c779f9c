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

type MatchingHandler struct {
	cmds commands.MatchingCommands
	q    queries.MatchingQueries
}

func NewMatchingHandler(cmds commands.MatchingCommands, q queries.MatchingQueries) *MatchingHandler {
	return &MatchingHandler{cmds: cmds, q: q}
}

// @Summary Find matching instructors
// @Description Score and rank verified instructors against the learner's preferences
// @Tags matching
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.FindMatchesRequest true "Learner preferences"
// @Success 200 {array} resdto.MatchResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /matches/find [post]
func (h *MatchingHandler) Find(c *gin.Context) {
	learnerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}
	var req reqdto.FindMatchesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	matches, err := h.cmds.FindMatches(c.Request.Context(), learnerID, req.ToDomain())
	if err != nil {
		if errors.Is(err, errs.ErrDomainValidation) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid preferences", nil)
			return
		}
		abortServerError(c, err, "Matching failed")
		return
	}

	c.JSON(http.StatusOK, resdto.FromMatches(matches))
}

// @Summary Match history
// @Description List the authenticated learner's persisted match suggestions
// @Tags matching
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.MatchRecordResponse
// @Failure 401 {object} map[string]string
// @Router /matches/history [get]
func (h *MatchingHandler) History(c *gin.Context) {
	learnerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}

	views, err := h.q.History(c.Request.Context(), learnerID)
	if err != nil {
		abortServerError(c, err, "Failed to load match history")
		return
	}

	c.JSON(http.StatusOK, resdto.FromMatchRecordViews(views))
}

// @Summary Accept match
// @Description Mark a suggested match as accepted
// @Tags matching
// @Security BearerAuth
// @Param id path string true "Match ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /matches/{id}/accept [post]
func (h *MatchingHandler) Accept(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	learnerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}

	if err := h.cmds.AcceptMatch(c.Request.Context(), learnerID, id); err != nil {
		if errors.Is(err, errs.ErrMatchNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Match not found", nil)
			return
		}
		abortServerError(c, err, "Accept match failed")
		return
	}
	c.Status(http.StatusNoContent)
}
