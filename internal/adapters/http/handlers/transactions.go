package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/evmscan/explorer-gateway/internal/adapters/http/dto"
	"github.com/evmscan/explorer-gateway/internal/app"
	"github.com/evmscan/explorer-gateway/internal/domain"
)

// TransactionHandler handles transaction-scoped explorer endpoints.
type TransactionHandler struct {
	service *app.ExplorerService
}

// NewTransactionHandler creates a new transaction handler.
func NewTransactionHandler(service *app.ExplorerService) *TransactionHandler {
	return &TransactionHandler{
		service: service,
	}
}

// GetStatus handles GET /api/v1/transactions/:hash/status
// Returns the contract-execution status of a transaction.
//
// @Summary Get the execution status of a transaction
// @Tags transactions
// @Produce json
// @Param hash path string true "Transaction hash"
// @Success 200 {object} domain.ExecutionStatus
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /api/v1/transactions/{hash}/status [get]
func (h *TransactionHandler) GetStatus(c *gin.Context) {
	var req dto.TxHashRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		dto.HandleValidationError(c, err)
		return
	}
	req.Hash = c.Param("hash")

	if err := dto.Validate(&req); err != nil {
		dto.HandleValidationError(c, err)
		return
	}

	status, err := h.service.GetTransactionStatus(c.Request.Context(), req.Chain(), req.Hash)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

// GetReceiptStatus handles GET /api/v1/transactions/:hash/receipt-status
// Returns the receipt status of a post-Byzantium transaction.
//
// @Summary Get the receipt status of a transaction
// @Tags transactions
// @Produce json
// @Param hash path string true "Transaction hash"
// @Success 200 {object} domain.ReceiptStatus
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /api/v1/transactions/{hash}/receipt-status [get]
func (h *TransactionHandler) GetReceiptStatus(c *gin.Context) {
	var req dto.TxHashRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		dto.HandleValidationError(c, err)
		return
	}
	req.Hash = c.Param("hash")

	if err := dto.Validate(&req); err != nil {
		dto.HandleValidationError(c, err)
		return
	}

	status, err := h.service.GetReceiptStatus(c.Request.Context(), req.Chain(), req.Hash)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

// GetInternal handles GET /api/v1/transactions/:hash/internal
// Returns the internal transactions spawned while executing a transaction.
//
// @Summary List the internal transactions of a transaction
// @Tags transactions
// @Produce json
// @Param hash path string true "Transaction hash"
// @Success 200 {object} dto.ListResponse[domain.InternalTransaction]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /api/v1/transactions/{hash}/internal [get]
func (h *TransactionHandler) GetInternal(c *gin.Context) {
	var req dto.InternalTxByHashRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		dto.HandleValidationError(c, err)
		return
	}
	req.Hash = c.Param("hash")

	if err := dto.Validate(&req); err != nil {
		dto.HandleValidationError(c, err)
		return
	}

	txs, err := h.service.GetInternalTransactions(c.Request.Context(), req.Chain(), domain.InternalTxQuery{
		TxHash: req.Hash,
	})
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(txs))
}

// RegisterTransactionRoutes registers transaction routes on the given
// router group.
func (h *TransactionHandler) RegisterTransactionRoutes(rg *gin.RouterGroup) {
	transactions := rg.Group("/transactions")
	transactions.GET("/:hash/status", h.GetStatus)
	transactions.GET("/:hash/receipt-status", h.GetReceiptStatus)
	transactions.GET("/:hash/internal", h.GetInternal)
}
