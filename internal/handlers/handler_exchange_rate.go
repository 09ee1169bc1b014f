package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	portssvc "github.com/SscSPs/expense_settlement_app/internal/core/ports/services"
	"github.com/SscSPs/expense_settlement_app/internal/dto"
	"github.com/SscSPs/expense_settlement_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// exchangeRateHandler handles HTTP requests related to exchange rates.
type exchangeRateHandler struct {
	exchangeRateService portssvc.ExchangeRateSvcFacade
}

// newExchangeRateHandler creates a new exchangeRateHandler.
func newExchangeRateHandler(ers portssvc.ExchangeRateSvcFacade) *exchangeRateHandler {
	return &exchangeRateHandler{
		exchangeRateService: ers,
	}
}

// registerExchangeRateRoutes registers routes related to exchange rates.
func registerExchangeRateRoutes(rg *gin.RouterGroup, exchangeRateService portssvc.ExchangeRateSvcFacade) {
	h := newExchangeRateHandler(exchangeRateService)

	exchangeRates := rg.Group("/exchange-rates")
	{
		exchangeRates.POST("", h.createExchangeRate)
		exchangeRates.GET("/:base", h.getRateTable)
	}
}

// createExchangeRate godoc
// @Summary Create a new exchange rate
// @Description Adds an exchange rate between two currencies for a specific date, replacing the rate already effective on that date
// @Tags exchange rates
// @Accept  json
// @Produce  json
// @Param   rate body dto.CreateExchangeRateRequest true "Exchange Rate details"
// @Success 201 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create exchange rate"
// @Security BearerAuth
// @Router /exchange-rates [post]
func (h *exchangeRateHandler) createExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateExchangeRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	logger.Info("Received request to create exchange rate",
		slog.String("from", req.FromCurrencyCode),
		slog.String("to", req.ToCurrencyCode),
		slog.String("rate", req.Rate.String()),
		slog.Time("date_effective", req.DateEffective),
	)

	createdRate, err := h.exchangeRateService.CreateExchangeRate(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create exchange rate")
		return
	}

	logger.Info("Exchange rate created successfully", slog.String("rate_id", createdRate.ExchangeRateID))
	c.JSON(http.StatusCreated, dto.ToExchangeRateResponse(createdRate))
}

// getRateTable godoc
// @Summary Get the rate table of a base currency
// @Description Returns the latest rate of every currency quoted against the base
// @Tags exchange rates
// @Produce  json
// @Param   base path string true "Base Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Success 200 {object} dto.RateTableResponse
// @Failure 400 {object} map[string]string "Invalid currency code format"
// @Failure 500 {object} map[string]string "Failed to retrieve rate table"
// @Security BearerAuth
// @Router /exchange-rates/{base} [get]
func (h *exchangeRateHandler) getRateTable(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	base := strings.ToUpper(c.Param("base"))

	if len(base) != 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Currency codes must be 3 letters"})
		return
	}

	table, err := h.exchangeRateService.GetRateTable(c.Request.Context(), base)
	if err != nil {
		respondWithError(c, logger.With(slog.String("base", base)), err, "Failed to retrieve rate table")
		return
	}

	c.JSON(http.StatusOK, dto.RateTableResponse{BaseCurrency: base, Rates: table})
}
