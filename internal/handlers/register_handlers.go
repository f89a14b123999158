package handlers

import (
	portssvc "github.com/fintracker/personal_finance_app/internal/core/ports/services"
	"github.com/fintracker/personal_finance_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1")

	registerBankAccountRoutes(v1, services.BankAccount)
	registerCreditCardRoutes(v1, services.CreditCard, services.Ledger)
	registerLoanRoutes(v1, services.Loan, services.Ledger)
	registerAssetRoutes(v1, services.Asset, services.Ledger)
	registerTransactionRoutes(v1, services.Ledger, services.Transaction)
	registerReportingRoutes(v1, services.Reporting)
}
