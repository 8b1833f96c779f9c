package api

import (
	"context"
	"errors"
	"net/http"

	resdto "tarumbeta-server/internal/handler/dto/response"
	"tarumbeta-server/internal/handler/httperr"
	"tarumbeta-server/internal/handler/middleware"
	"tarumbeta-server/internal/pkg/errs"
	"tarumbeta-server/internal/usecase/commands"
	"tarumbeta-server/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	cmds commands.ModerationCommands
	q    queries.AdminQueries
}

func NewAdminHandler(cmds commands.ModerationCommands, q queries.AdminQueries) *AdminHandler {
	return &AdminHandler{cmds: cmds, q: q}
}

// @Summary Pending instructor applications
// @Description List instructor applications awaiting review
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ApplicationResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/applications [get]
func (h *AdminHandler) ListApplications(c *gin.Context) {
	views, err := h.q.ListPendingApplications(c.Request.Context())
	if err != nil {
		abortServerError(c, err, "Failed to list applications")
		return
	}

	c.JSON(http.StatusOK, resdto.FromApplicationViews(views))
}

// @Summary Approve instructor application
// @Description Approve an application: the applicant becomes a verified instructor
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/applications/{id}/approve [post]
func (h *AdminHandler) ApproveApplication(c *gin.Context) {
	h.reviewApplication(c, h.cmds.ApproveInstructorApplication)
}

// @Summary Reject instructor application
// @Description Reject a pending instructor application
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/applications/{id}/reject [post]
func (h *AdminHandler) RejectApplication(c *gin.Context) {
	h.reviewApplication(c, h.cmds.RejectInstructorApplication)
}

func (h *AdminHandler) reviewApplication(c *gin.Context, op func(ctx context.Context, applicationID, adminID uuid.UUID) error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}

	if err := op(c.Request.Context(), id, adminID); err != nil {
		switch {
		case errors.Is(err, errs.ErrApplicationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Application not found", nil)
		case errors.Is(err, errs.ErrInvalidStateTransition):
			httperr.AbortWithError(c, http.StatusConflict, err, "Application already reviewed", nil)
		case errors.Is(err, errs.ErrConsistency):
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Application state inconsistent", nil)
		default:
			abortServerError(c, err, "Review failed")
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Pending listings
// @Description List instrument listings awaiting moderation
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ListingResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/listings/pending [get]
func (h *AdminHandler) ListPendingListings(c *gin.Context) {
	views, err := h.q.ListPendingListings(c.Request.Context())
	if err != nil {
		abortServerError(c, err, "Failed to list pending listings")
		return
	}

	c.JSON(http.StatusOK, resdto.FromListingViews(views))
}

// @Summary Approve listing
// @Description Approve a listing into the public catalogue
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/listings/{id}/approve [post]
func (h *AdminHandler) ApproveListing(c *gin.Context) {
	h.moderateListing(c, h.cmds.ApproveInstrumentListing)
}

// @Summary Reject listing
// @Description Reject and remove a listing
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/listings/{id}/reject [post]
func (h *AdminHandler) RejectListing(c *gin.Context) {
	h.moderateListing(c, h.cmds.RejectInstrumentListing)
}

func (h *AdminHandler) moderateListing(c *gin.Context, op func(ctx context.Context, listingID uuid.UUID) error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	if err := op(c.Request.Context(), id); err != nil {
		if errors.Is(err, errs.ErrListingNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Listing not found", nil)
			return
		}
		abortServerError(c, err, "Moderation failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Platform stats
// @Description Aggregate counters for the admin dashboard
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.AdminStatsResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/stats [get]
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.q.Stats(c.Request.Context())
	if err != nil {
		abortServerError(c, err, "Failed to load stats")
		return
	}

	c.JSON(http.StatusOK, resdto.FromAdminStatsView(stats))
}
