package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/expense_settlement_app/internal/core/ports/services"
	"github.com/SscSPs/expense_settlement_app/internal/dto"
	"github.com/SscSPs/expense_settlement_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type shareHandler struct {
	shareService portssvc.ShareSvcFacade
}

// registerSharedRoutes registers the unauthenticated share-link routes.
func registerSharedRoutes(rg *gin.RouterGroup, ss portssvc.ShareSvcFacade) {
	h := &shareHandler{shareService: ss}
	rg.GET("/events/:eventID/calculations/:calculationID", h.fetchShared)
}

// fetchShared godoc
// @Summary View a shared calculation
// @Description Returns a calculation and its event to the holder of a valid, unexpired share token
// @Tags shared
// @Produce  json
// @Param   eventID path string true "Event ID"
// @Param   calculationID path string true "Calculation ID"
// @Param   token query string true "Share token"
// @Success 200 {object} dto.SharedCalculationResponse
// @Failure 404 {object} map[string]string "Not found"
// @Failure 410 {object} map[string]string "Share link has expired"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} map[string]string "Failed to load shared calculation"
// @Router /shared/events/{eventID}/calculations/{calculationID} [get]
func (h *shareHandler) fetchShared(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("eventID")
	calculationID := c.Param("calculationID")

	logger = logger.With(slog.String("event_id", eventID), slog.String("calculation_id", calculationID))

	shared, err := h.shareService.FetchShared(c.Request.Context(), eventID, calculationID, c.Query("token"))
	if err != nil {
		respondWithError(c, logger, err, "Failed to load shared calculation")
		return
	}

	c.JSON(http.StatusOK, dto.ToSharedCalculationResponse(shared))
}
