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

type RentalHandler struct {
	cmds commands.RentalCommands
	q    queries.RentalQueries
}

func NewRentalHandler(cmds commands.RentalCommands, q queries.RentalQueries) *RentalHandler {
	return &RentalHandler{cmds: cmds, q: q}
}

// @Summary Create rental request
// @Description Request an instrument rental for a date range
// @Tags rentals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRentalRequest true "Create rental request"
// @Success 201 {object} resdto.CreateRentalResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /rentals [post]
func (h *RentalHandler) Create(c *gin.Context) {
	renterID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}
	var req reqdto.CreateRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.CreateRental(c.Request.Context(), commands.CreateRentalRequest{
		InstrumentID: req.InstrumentID,
		Period:       req.Period,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
	}, renterID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrListingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Listing not found", nil)
		case errors.Is(err, commands.ErrListingUnavailable),
			errors.Is(err, commands.ErrOwnListingRental),
			errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid rental request", nil)
		case errors.Is(err, errs.ErrBookingConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "Instrument already booked for these dates", nil)
		default:
			abortServerError(c, err, "Create rental failed")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateRentalResponse{
		RentalID:        result.RentalID,
		TotalPriceCents: result.TotalPriceCents,
	})
}

// @Summary Get rental
// @Description Get a rental by ID (parties and admins only)
// @Tags rentals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rental ID"
// @Success 200 {object} resdto.RentalResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rentals/{id} [get]
func (h *RentalHandler) Get(c *gin.Context) {
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

	view, err := h.q.GetRental(c.Request.Context(), id, requesterID, role)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrRentalNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Rental not found", nil)
		case errors.Is(err, errs.ErrActorNotAllowed):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
		default:
			abortServerError(c, err, "Failed to load rental")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRentalView(view))
}

// @Summary My rentals
// @Description List rentals where the authenticated user is the renter
// @Tags rentals
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.RentalResponse
// @Failure 401 {object} map[string]string
// @Router /rentals [get]
func (h *RentalHandler) ListMine(c *gin.Context) {
	renterID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}

	views, err := h.q.ListByRenter(c.Request.Context(), renterID)
	if err != nil {
		abortServerError(c, err, "Failed to list rentals")
		return
	}

	c.JSON(http.StatusOK, resdto.FromRentalViews(views))
}

// @Summary Rentals of my instruments
// @Description List rentals of the authenticated owner's instruments, optionally by status
// @Tags rentals
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by rental status"
// @Success 200 {array} resdto.RentalResponse
// @Failure 401 {object} map[string]string
// @Router /rentals/owner [get]
func (h *RentalHandler) ListOwned(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}

	var status *string
	if v := c.Query("status"); v != "" {
		status = &v
	}

	views, err := h.q.ListByOwner(c.Request.Context(), ownerID, status)
	if err != nil {
		abortServerError(c, err, "Failed to list rentals")
		return
	}

	c.JSON(http.StatusOK, resdto.FromRentalViews(views))
}

// @Summary Owner earnings
// @Description Total earnings from the authenticated owner's completed rentals
// @Tags rentals
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.OwnerEarningsResponse
// @Failure 401 {object} map[string]string
// @Router /rentals/earnings [get]
func (h *RentalHandler) Earnings(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}

	total, err := h.q.OwnerEarnings(c.Request.Context(), ownerID)
	if err != nil {
		abortServerError(c, err, "Failed to load earnings")
		return
	}

	c.JSON(http.StatusOK, resdto.OwnerEarningsResponse{TotalEarningsCents: total})
}

// @Summary Approve rental
// @Description Owner approves a pending rental request
// @Tags rentals
// @Security BearerAuth
// @Param id path string true "Rental ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /rentals/{id}/approve [post]
func (h *RentalHandler) Approve(c *gin.Context) {
	h.transition(c, h.cmds.ApproveRental)
}

// @Summary Reject rental
// @Description Owner rejects a pending rental request with a reason
// @Tags rentals
// @Accept json
// @Security BearerAuth
// @Param id path string true "Rental ID"
// @Param request body reqdto.RejectRentalRequest true "Rejection reason"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /rentals/{id}/reject [post]
func (h *RentalHandler) Reject(c *gin.Context) {
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
	var req reqdto.RejectRentalRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	if err := h.cmds.RejectRental(c.Request.Context(), id, actorID, req.Reason); err != nil {
		abortLifecycleError(c, err, errs.ErrRentalNotFound, "Rental")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Mark picked up
// @Description Owner confirms the renter picked up the instrument
// @Tags rentals
// @Security BearerAuth
// @Param id path string true "Rental ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /rentals/{id}/pickup [post]
func (h *RentalHandler) MarkPickedUp(c *gin.Context) {
	h.transition(c, h.cmds.MarkPickedUp)
}

// @Summary Mark returned
// @Description Renter reports returning the instrument
// @Tags rentals
// @Security BearerAuth
// @Param id path string true "Rental ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /rentals/{id}/return [post]
func (h *RentalHandler) MarkReturned(c *gin.Context) {
	h.transition(c, h.cmds.MarkReturned)
}

// @Summary Confirm return
// @Description Owner confirms receipt of the returned instrument
// @Tags rentals
// @Security BearerAuth
// @Param id path string true "Rental ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /rentals/{id}/confirm-return [post]
func (h *RentalHandler) ConfirmReturn(c *gin.Context) {
	h.transition(c, h.cmds.ConfirmReturn)
}

// @Summary Cancel rental
// @Description Renter cancels a pending or confirmed rental
// @Tags rentals
// @Security BearerAuth
// @Param id path string true "Rental ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /rentals/{id}/cancel [post]
func (h *RentalHandler) Cancel(c *gin.Context) {
	h.transition(c, h.cmds.CancelRental)
}

func (h *RentalHandler) transition(c *gin.Context, op func(ctx context.Context, rentalID, actorID uuid.UUID) error) {
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
		abortLifecycleError(c, err, errs.ErrRentalNotFound, "Rental")
		return
	}
	c.Status(http.StatusNoContent)
}

// abortLifecycleError maps the shared lifecycle error taxonomy onto
// HTTP statuses for rental and lesson transition endpoints.
func abortLifecycleError(c *gin.Context, err, notFound error, subject string) {
	switch {
	case errors.Is(err, notFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, subject+" not found", nil)
	case errors.Is(err, errs.ErrActorNotAllowed):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
	case errors.Is(err, errs.ErrInvalidStateTransition):
		httperr.AbortWithError(c, http.StatusConflict, err, subject+" cannot change state", nil)
	case errors.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
	default:
		abortServerError(c, err, "Internal error")
	}
}

// abortServerError answers 503 when the failure is a sick dependency
// rather than the request, 500 for everything else.
func abortServerError(c *gin.Context, err error, msg string) {
	if errors.Is(err, errs.ErrUpstreamUnavailable) {
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Service temporarily unavailable", nil)
		return
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, msg, nil)
}
