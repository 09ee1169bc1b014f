package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/expense_settlement_app/internal/core/ports/services"
	"github.com/SscSPs/expense_settlement_app/internal/dto"
	"github.com/SscSPs/expense_settlement_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// calculationHandler handles HTTP requests related to settlement calculations.
type calculationHandler struct {
	calculationService  portssvc.CalculationSvcFacade
	shareService        portssvc.ShareSvcFacade
	exchangeRateService portssvc.ExchangeRateSvcFacade
}

func newCalculationHandler(cs portssvc.CalculationSvcFacade, ss portssvc.ShareSvcFacade, ers portssvc.ExchangeRateSvcFacade) *calculationHandler {
	return &calculationHandler{
		calculationService:  cs,
		shareService:        ss,
		exchangeRateService: ers,
	}
}

// registerCalculationRoutes registers the authenticated calculation routes.
func registerCalculationRoutes(rg *gin.RouterGroup, cs portssvc.CalculationSvcFacade, ss portssvc.ShareSvcFacade, ers portssvc.ExchangeRateSvcFacade) {
	h := newCalculationHandler(cs, ss, ers)

	rg.GET("/calculations/master-data", h.getMasterData)

	calculations := rg.Group("/events/:eventID/calculations")
	{
		calculations.POST("", h.createCalculation)
		calculations.GET("", h.listCalculations)
		calculations.GET("/:calculationID", h.getCalculation)
		calculations.DELETE("/:calculationID", h.deactivateCalculation)
		calculations.POST("/:calculationID/share", h.extendShare)
	}
}

// getMasterData godoc
// @Summary Get calculation master data
// @Description Lists the active currencies, each with its latest system rate table
// @Tags calculations
// @Produce  json
// @Success 200 {object} dto.MasterDataResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to load master data"
// @Security BearerAuth
// @Router /calculations/master-data [get]
func (h *calculationHandler) getMasterData(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currencies, err := h.exchangeRateService.GetMasterData(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to load master data")
		return
	}

	c.JSON(http.StatusOK, dto.ToMasterDataResponse(currencies))
}

// createCalculation godoc
// @Summary Run a settlement calculation
// @Description Normalizes the submitted expenses into the base currency, builds the direct and simplified debt ledgers, stores the result and marks the expenses calculated
// @Tags calculations
// @Accept  json
// @Produce  json
// @Param   eventID path string true "Event ID"
// @Param   calculation body dto.CreateCalculationRequest true "Calculation request"
// @Success 201 {object} dto.CalculationResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not the event owner"
// @Failure 404 {object} map[string]string "Event, expense or participant not found"
// @Failure 422 {object} map[string]string "Exchange rate unavailable"
// @Failure 500 {object} map[string]string "Failed to create calculation"
// @Security BearerAuth
// @Router /events/{eventID}/calculations [post]
func (h *calculationHandler) createCalculation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("eventID")

	var req dto.CreateCalculationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCalculation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("event_id", eventID))
	logger.Info("Received request to create calculation",
		slog.String("base_currency", req.BaseCurrency),
		slog.Int("expense_count", len(req.ExpensesInvolved)),
	)

	calc, err := h.calculationService.CreateCalculation(c.Request.Context(), eventID, req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create calculation")
		return
	}

	logger.Info("Calculation created successfully", slog.String("calculation_id", calc.CalculationID))
	c.JSON(http.StatusCreated, dto.ToCalculationResponse(calc, h.shareService.ShareStatus(calc)))
}

// listCalculations godoc
// @Summary List calculations of an event
// @Description Lists the active calculations of an event, newest first
// @Tags calculations
// @Produce  json
// @Param   eventID path string true "Event ID"
// @Success 200 {object} dto.ListCalculationsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not the event owner"
// @Failure 404 {object} map[string]string "Event not found"
// @Failure 500 {object} map[string]string "Failed to list calculations"
// @Security BearerAuth
// @Router /events/{eventID}/calculations [get]
func (h *calculationHandler) listCalculations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("eventID")

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	calcs, err := h.calculationService.ListCalculations(c.Request.Context(), eventID, userID)
	if err != nil {
		respondWithError(c, logger.With(slog.String("event_id", eventID)), err, "Failed to list calculations")
		return
	}

	resp := dto.ListCalculationsResponse{Calculations: make([]dto.CalculationResponse, 0, len(calcs))}
	for i := range calcs {
		resp.Calculations = append(resp.Calculations, dto.ToCalculationResponse(&calcs[i], h.shareService.ShareStatus(&calcs[i])))
	}
	c.JSON(http.StatusOK, resp)
}

// getCalculation godoc
// @Summary Get a calculation
// @Tags calculations
// @Produce  json
// @Param   eventID path string true "Event ID"
// @Param   calculationID path string true "Calculation ID"
// @Success 200 {object} dto.CalculationResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not the event owner"
// @Failure 404 {object} map[string]string "Calculation not found"
// @Failure 500 {object} map[string]string "Failed to get calculation"
// @Security BearerAuth
// @Router /events/{eventID}/calculations/{calculationID} [get]
func (h *calculationHandler) getCalculation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("eventID")
	calculationID := c.Param("calculationID")

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	calc, err := h.calculationService.GetCalculation(c.Request.Context(), eventID, calculationID, userID)
	if err != nil {
		respondWithError(c, logger.With(slog.String("calculation_id", calculationID)), err, "Failed to get calculation")
		return
	}

	c.JSON(http.StatusOK, dto.ToCalculationResponse(calc, h.shareService.ShareStatus(calc)))
}

// deactivateCalculation godoc
// @Summary Deactivate a calculation
// @Description Hides a calculation from listings and share links. The expenses stay marked as calculated.
// @Tags calculations
// @Param   eventID path string true "Event ID"
// @Param   calculationID path string true "Calculation ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not the event owner"
// @Failure 404 {object} map[string]string "Calculation not found"
// @Failure 500 {object} map[string]string "Failed to deactivate calculation"
// @Security BearerAuth
// @Router /events/{eventID}/calculations/{calculationID} [delete]
func (h *calculationHandler) deactivateCalculation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("eventID")
	calculationID := c.Param("calculationID")

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("calculation_id", calculationID))
	if err := h.calculationService.DeactivateCalculation(c.Request.Context(), eventID, calculationID, userID); err != nil {
		respondWithError(c, logger, err, "Failed to deactivate calculation")
		return
	}

	logger.Info("Calculation deactivated")
	c.Status(http.StatusNoContent)
}

// extendShare godoc
// @Summary Extend the share link of a calculation
// @Description Pushes the share token expiry forward, minting a token if the calculation has none. The token value is kept otherwise.
// @Tags calculations
// @Produce  json
// @Param   eventID path string true "Event ID"
// @Param   calculationID path string true "Calculation ID"
// @Success 200 {object} dto.ShareResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not the event owner"
// @Failure 404 {object} map[string]string "Calculation not found"
// @Failure 500 {object} map[string]string "Failed to extend share link"
// @Security BearerAuth
// @Router /events/{eventID}/calculations/{calculationID}/share [post]
func (h *calculationHandler) extendShare(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("eventID")
	calculationID := c.Param("calculationID")

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	logger = logger.With(slog.String("calculation_id", calculationID))
	calc, err := h.shareService.ExtendShare(c.Request.Context(), eventID, calculationID, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to extend share link")
		return
	}

	logger.Info("Share link extended", slog.Time("expiry", *calc.ShareTokenExpiry))
	c.JSON(http.StatusOK, dto.ToShareResponse(calc))
}
