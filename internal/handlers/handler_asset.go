package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/fintracker/personal_finance_app/internal/core/ports/services"
	"github.com/fintracker/personal_finance_app/internal/dto"
	"github.com/fintracker/personal_finance_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// assetHandler handles HTTP requests related to assets, including the ledger
// operations that move money in and out and the transaction-less revaluation.
type assetHandler struct {
	assetService  portssvc.AssetSvcFacade
	ledgerService portssvc.LedgerSvc
}

// registerAssetRoutes registers routes related to assets.
func registerAssetRoutes(rg *gin.RouterGroup, assetSvc portssvc.AssetSvcFacade, ledgerSvc portssvc.LedgerSvc) {
	h := &assetHandler{assetService: assetSvc, ledgerService: ledgerSvc}

	assets := rg.Group("/assets")
	{
		assets.POST("", h.createAsset)
		assets.GET("", h.listAssets)
		assets.GET("/:id", h.getAsset)
		assets.POST("/:id/investments", h.invest)
		assets.POST("/:id/withdrawals", h.withdraw)
		assets.PUT("/:id/value", h.revalue)
	}
}

func (h *assetHandler) createAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createAsset", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	asset, err := h.assetService.CreateAsset(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create asset")
		return
	}

	c.JSON(http.StatusCreated, dto.ToAssetResponse(asset))
}

func (h *assetHandler) getAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	asset, err := h.assetService.GetAssetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve asset")
		return
	}

	c.JSON(http.StatusOK, dto.ToAssetResponse(asset))
}

func (h *assetHandler) listAssets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	assets, err := h.assetService.ListAssets(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list assets")
		return
	}

	c.JSON(http.StatusOK, dto.ToAssetResponses(assets))
}

func (h *assetHandler) invest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AssetInvestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for invest", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, asset, err := h.ledgerService.InvestInAsset(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record asset investment")
		return
	}

	c.JSON(http.StatusCreated, dto.AssetInvestmentResponse{
		Transaction: dto.ToTransactionResponse(txn),
		Asset:       dto.ToAssetResponse(asset),
	})
}

func (h *assetHandler) withdraw(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AssetWithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for withdraw", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, asset, err := h.ledgerService.WithdrawFromAsset(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record asset withdrawal")
		return
	}

	c.JSON(http.StatusCreated, dto.AssetWithdrawalResponse{
		Transaction: dto.ToTransactionResponse(txn),
		Asset:       dto.ToAssetResponse(asset),
	})
}

func (h *assetHandler) revalue(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RevalueAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for revalue", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	asset, err := h.assetService.RevalueAsset(c.Request.Context(), c.Param("id"), req.CurrentValue)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to revalue asset")
		return
	}

	c.JSON(http.StatusOK, dto.ToAssetResponse(asset))
}
