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

type InstrumentHandler struct {
	cmds commands.ListingCommands
	q    queries.ListingQueries
}

func NewInstrumentHandler(cmds commands.ListingCommands, q queries.ListingQueries) *InstrumentHandler {
	return &InstrumentHandler{cmds: cmds, q: q}
}

// @Summary Create instrument listing
// @Description List an instrument for rent; it stays hidden until moderation approves it
// @Tags listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateListingRequest true "Create listing request"
// @Success 201 {object} resdto.CreateListingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /listings [post]
func (h *InstrumentHandler) Create(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}
	var req reqdto.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.CreateListing(c.Request.Context(), commands.CreateListingRequest{
		Name:              req.Name,
		InstrumentType:    req.InstrumentType,
		Category:          req.Category,
		Condition:         req.Condition,
		Description:       req.Description,
		Location:          req.Location,
		DailyPriceCents:   req.DailyPriceCents,
		WeeklyPriceCents:  req.WeeklyPriceCents,
		MonthlyPriceCents: req.MonthlyPriceCents,
	}, ownerID)
	if err != nil {
		if errors.Is(err, errs.ErrDomainValidation) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid listing data", nil)
			return
		}
		abortServerError(c, err, "Create listing failed")
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateListingResponse{ListingID: result.ListingID})
}

// @Summary Browse listings
// @Description List approved, available instrument listings
// @Tags listings
// @Produce json
// @Param instrument_type query string false "Filter by instrument type"
// @Param category query string false "Filter by category"
// @Param location query string false "Filter by location"
// @Success 200 {array} resdto.ListingResponse
// @Router /listings [get]
func (h *InstrumentHandler) List(c *gin.Context) {
	filter := queries.ListingFilter{
		InstrumentType: c.Query("instrument_type"),
		Category:       c.Query("category"),
		Location:       c.Query("location"),
	}

	views, err := h.q.ListAvailable(c.Request.Context(), filter)
	if err != nil {
		abortServerError(c, err, "Failed to list instruments")
		return
	}

	c.JSON(http.StatusOK, resdto.FromListingViews(views))
}

// @Summary Get listing
// @Description Get an instrument listing by ID
// @Tags listings
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} resdto.ListingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /listings/{id} [get]
func (h *InstrumentHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.q.GetListing(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrListingNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Listing not found", nil)
			return
		}
		abortServerError(c, err, "Failed to load listing")
		return
	}

	c.JSON(http.StatusOK, resdto.FromListingView(view))
}

// @Summary My listings
// @Description List the authenticated owner's instrument listings
// @Tags listings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ListingResponse
// @Failure 401 {object} map[string]string
// @Router /listings/mine [get]
func (h *InstrumentHandler) ListMine(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}

	views, err := h.q.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		abortServerError(c, err, "Failed to list instruments")
		return
	}

	c.JSON(http.StatusOK, resdto.FromListingViews(views))
}
