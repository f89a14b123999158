package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/fintracker/personal_finance_app/internal/core/ports/services"
	"github.com/fintracker/personal_finance_app/internal/dto"
	"github.com/fintracker/personal_finance_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// bankAccountHandler handles HTTP requests related to bank accounts.
type bankAccountHandler struct {
	bankAccountService portssvc.BankAccountSvcFacade
}

// registerBankAccountRoutes registers routes related to bank accounts.
func registerBankAccountRoutes(rg *gin.RouterGroup, svc portssvc.BankAccountSvcFacade) {
	h := &bankAccountHandler{bankAccountService: svc}

	accounts := rg.Group("/bank-accounts")
	{
		accounts.POST("", h.createBankAccount)
		accounts.GET("", h.listBankAccounts)
		accounts.GET("/:id", h.getBankAccount)
	}
}

func (h *bankAccountHandler) createBankAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateBankAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createBankAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	account, err := h.bankAccountService.CreateBankAccount(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create bank account")
		return
	}

	c.JSON(http.StatusCreated, dto.ToBankAccountResponse(account))
}

func (h *bankAccountHandler) getBankAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	account, err := h.bankAccountService.GetBankAccountByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve bank account")
		return
	}

	c.JSON(http.StatusOK, dto.ToBankAccountResponse(account))
}

func (h *bankAccountHandler) listBankAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accounts, err := h.bankAccountService.ListBankAccounts(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list bank accounts")
		return
	}

	c.JSON(http.StatusOK, dto.ToBankAccountResponses(accounts))
}
