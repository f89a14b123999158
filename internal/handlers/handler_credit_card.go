package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/fintracker/personal_finance_app/internal/core/ports/services"
	"github.com/fintracker/personal_finance_app/internal/dto"
	"github.com/fintracker/personal_finance_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// creditCardHandler handles HTTP requests related to credit cards, including
// the ledger operations that move card balances.
type creditCardHandler struct {
	creditCardService portssvc.CreditCardSvcFacade
	ledgerService     portssvc.LedgerSvc
}

// registerCreditCardRoutes registers routes related to credit cards.
func registerCreditCardRoutes(rg *gin.RouterGroup, cardSvc portssvc.CreditCardSvcFacade, ledgerSvc portssvc.LedgerSvc) {
	h := &creditCardHandler{creditCardService: cardSvc, ledgerService: ledgerSvc}

	cards := rg.Group("/credit-cards")
	{
		cards.POST("", h.createCreditCard)
		cards.GET("", h.listCreditCards)
		cards.GET("/:id", h.getCreditCard)
		cards.POST("/:id/spends", h.recordSpend)
		cards.POST("/:id/payments", h.payCard)
		cards.POST("/:id/emi-conversions", h.convertToEMI)
	}
}

func (h *creditCardHandler) createCreditCard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCreditCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createCreditCard", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	card, err := h.creditCardService.CreateCreditCard(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create credit card")
		return
	}

	c.JSON(http.StatusCreated, dto.ToCreditCardResponse(card))
}

func (h *creditCardHandler) getCreditCard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	card, err := h.creditCardService.GetCreditCardByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve credit card")
		return
	}

	c.JSON(http.StatusOK, dto.ToCreditCardResponse(card))
}

func (h *creditCardHandler) listCreditCards(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	cards, err := h.creditCardService.ListCreditCards(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list credit cards")
		return
	}

	c.JSON(http.StatusOK, dto.ToCreditCardResponses(cards))
}

func (h *creditCardHandler) recordSpend(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RecordCardSpendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for recordSpend", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, card, err := h.ledgerService.RecordCardSpend(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record card spend")
		return
	}

	c.JSON(http.StatusCreated, dto.CardSpendResponse{
		Transaction: dto.ToTransactionResponse(txn),
		CreditCard:  dto.ToCreditCardResponse(card),
	})
}

func (h *creditCardHandler) payCard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.PayCreditCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for payCard", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, card, err := h.ledgerService.PayCreditCard(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record card payment")
		return
	}

	c.JSON(http.StatusCreated, dto.CardPaymentResponse{
		Transaction: dto.ToTransactionResponse(txn),
		CreditCard:  dto.ToCreditCardResponse(card),
	})
}

func (h *creditCardHandler) convertToEMI(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ConvertToEMIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for convertToEMI", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, card, loan, err := h.ledgerService.ConvertCreditCardToEMI(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to convert card due to EMI")
		return
	}

	c.JSON(http.StatusCreated, dto.EMIConversionResponse{
		Transaction: dto.ToTransactionResponse(txn),
		CreditCard:  dto.ToCreditCardResponse(card),
		Loan:        dto.ToLoanResponse(loan),
	})
}
