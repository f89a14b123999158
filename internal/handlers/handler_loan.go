package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/fintracker/personal_finance_app/internal/core/ports/services"
	"github.com/fintracker/personal_finance_app/internal/dto"
	"github.com/fintracker/personal_finance_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// loanHandler handles HTTP requests related to loans and EMI payments.
type loanHandler struct {
	loanService   portssvc.LoanSvcFacade
	ledgerService portssvc.LedgerSvc
}

// registerLoanRoutes registers routes related to loans.
func registerLoanRoutes(rg *gin.RouterGroup, loanSvc portssvc.LoanSvcFacade, ledgerSvc portssvc.LedgerSvc) {
	h := &loanHandler{loanService: loanSvc, ledgerService: ledgerSvc}

	loans := rg.Group("/loans")
	{
		loans.POST("", h.createLoan)
		loans.GET("", h.listLoans)
		loans.GET("/:id", h.getLoan)
		loans.POST("/:id/emi-payments", h.payEMI)
	}
}

func (h *loanHandler) createLoan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createLoan", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	loan, err := h.loanService.CreateLoan(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create loan")
		return
	}

	c.JSON(http.StatusCreated, dto.ToLoanResponse(loan))
}

func (h *loanHandler) getLoan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	loan, err := h.loanService.GetLoanByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve loan")
		return
	}

	c.JSON(http.StatusOK, dto.ToLoanResponse(loan))
}

func (h *loanHandler) listLoans(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	activeOnly := c.Query("active") == "true"

	loans, err := h.loanService.ListLoans(c.Request.Context(), activeOnly)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list loans")
		return
	}

	c.JSON(http.StatusOK, dto.ToLoanResponses(loans))
}

func (h *loanHandler) payEMI(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.PayLoanEMIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for payEMI", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, loan, err := h.ledgerService.PayLoanEMI(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record EMI payment")
		return
	}

	c.JSON(http.StatusCreated, dto.EMIPaymentResponse{
		Transaction: dto.ToTransactionResponse(txn),
		Loan:        dto.ToLoanResponse(loan),
	})
}
