package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/evmscan/explorer-gateway/internal/adapters/http/dto"
	"github.com/evmscan/explorer-gateway/internal/app"
	"github.com/evmscan/explorer-gateway/internal/domain"
)

// AccountHandler handles account-scoped explorer endpoints.
type AccountHandler struct {
	service *app.ExplorerService
}

// NewAccountHandler creates a new account handler.
func NewAccountHandler(service *app.ExplorerService) *AccountHandler {
	return &AccountHandler{
		service: service,
	}
}

// BalanceResponse is the HTTP response structure for a balance lookup.
type BalanceResponse struct {
	Address string `json:"address"`
	Balance string `json:"balance"`
}

// GetBalance handles GET /api/v1/accounts/:address/balance
// Returns the native-token balance of an address in wei.
//
// @Summary Get the balance of an address
// @Description Fetches the native balance of an address from the block explorer
// @Tags accounts
// @Produce json
// @Param address path string true "Account address"
// @Param chain_id query int false "Chain ID (defaults to 1)"
// @Param tag query string false "Block tag: latest, earliest, pending, or a hex number"
// @Success 200 {object} BalanceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /api/v1/accounts/{address}/balance [get]
func (h *AccountHandler) GetBalance(c *gin.Context) {
	var req dto.BalanceRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		dto.HandleValidationError(c, err)
		return
	}
	req.Address = c.Param("address")

	if err := dto.Validate(&req); err != nil {
		dto.HandleValidationError(c, err)
		return
	}

	balance, err := h.service.GetBalance(c.Request.Context(), req.Chain(), req.Address, req.Tag)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, BalanceResponse{
		Address: req.Address,
		Balance: balance,
	})
}

// GetTransactions handles GET /api/v1/accounts/:address/transactions
// Returns the normal transactions of an address, newest or oldest first.
//
// @Summary List transactions of an address
// @Tags accounts
// @Produce json
// @Param address path string true "Account address"
// @Success 200 {object} dto.ListResponse[domain.Transaction]
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/accounts/{address}/transactions [get]
func (h *AccountHandler) GetTransactions(c *gin.Context) {
	var req dto.TransactionListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		dto.HandleValidationError(c, err)
		return
	}
	req.Address = c.Param("address")

	if err := dto.Validate(&req); err != nil {
		dto.HandleValidationError(c, err)
		return
	}

	txs, err := h.service.GetTransactions(c.Request.Context(), req.Chain(), req.Address, req.ToPageRange())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(txs))
}

// GetInternalTransactions handles GET /api/v1/accounts/:address/internal-transactions
// Returns the internal (message-call) transactions touching an address.
//
// @Summary List internal transactions of an address
// @Tags accounts
// @Produce json
// @Param address path string true "Account address"
// @Success 200 {object} dto.ListResponse[domain.InternalTransaction]
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/accounts/{address}/internal-transactions [get]
func (h *AccountHandler) GetInternalTransactions(c *gin.Context) {
	var req dto.InternalTxByAddressRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		dto.HandleValidationError(c, err)
		return
	}
	req.Address = c.Param("address")

	if err := dto.Validate(&req); err != nil {
		dto.HandleValidationError(c, err)
		return
	}

	txs, err := h.service.GetInternalTransactions(c.Request.Context(), req.Chain(), domain.InternalTxQuery{
		Address:   req.Address,
		PageRange: req.ToPageRange(),
	})
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(txs))
}

// GetTokenTransfers handles GET /api/v1/accounts/:address/token-transfers
// Returns ERC-20 transfer events involving an address, optionally filtered
// by token contract.
//
// @Summary List token transfers of an address
// @Tags accounts
// @Produce json
// @Param address path string true "Account address"
// @Param contract_address query string false "Token contract filter"
// @Success 200 {object} dto.ListResponse[domain.TokenTransfer]
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/accounts/{address}/token-transfers [get]
func (h *AccountHandler) GetTokenTransfers(c *gin.Context) {
	var req dto.TokenTransferRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		dto.HandleValidationError(c, err)
		return
	}
	req.Address = c.Param("address")

	if err := dto.Validate(&req); err != nil {
		dto.HandleValidationError(c, err)
		return
	}

	transfers, err := h.service.GetTokenTransfers(c.Request.Context(), req.Chain(), domain.TokenTransferQuery{
		Address:         req.Address,
		ContractAddress: req.ContractAddress,
		PageRange:       req.ToPageRange(),
	})
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(transfers))
}

// GetMinedBlocks handles GET /api/v1/accounts/:address/mined-blocks
// Returns the blocks (or uncles) validated by an address.
//
// @Summary List blocks mined by an address
// @Tags accounts
// @Produce json
// @Param address path string true "Validator address"
// @Param block_type query string false "blocks or uncles"
// @Success 200 {object} dto.ListResponse[domain.MinedBlock]
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/accounts/{address}/mined-blocks [get]
func (h *AccountHandler) GetMinedBlocks(c *gin.Context) {
	var req dto.MinedBlocksRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		dto.HandleValidationError(c, err)
		return
	}
	req.Address = c.Param("address")

	if err := dto.Validate(&req); err != nil {
		dto.HandleValidationError(c, err)
		return
	}

	blocks, err := h.service.GetMinedBlocks(c.Request.Context(), req.Chain(), req.Address, req.BlockType, req.ToPageRange())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(blocks))
}

// GetOverview handles GET /api/v1/accounts/:address/overview
// Returns the balance and transaction count of an address in one shot.
//
// @Summary Get a combined overview of an address
// @Tags accounts
// @Produce json
// @Param address path string true "Account address"
// @Success 200 {object} app.AddressOverview
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/accounts/{address}/overview [get]
func (h *AccountHandler) GetOverview(c *gin.Context) {
	var req dto.AddressRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		dto.HandleValidationError(c, err)
		return
	}
	req.Address = c.Param("address")

	if err := dto.Validate(&req); err != nil {
		dto.HandleValidationError(c, err)
		return
	}

	overview, err := h.service.GetAddressOverview(c.Request.Context(), req.Chain(), req.Address)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}

// RegisterAccountRoutes registers account routes on the given router group.
func (h *AccountHandler) RegisterAccountRoutes(rg *gin.RouterGroup) {
	accounts := rg.Group("/accounts")
	accounts.GET("/:address/balance", h.GetBalance)
	accounts.GET("/:address/transactions", h.GetTransactions)
	accounts.GET("/:address/internal-transactions", h.GetInternalTransactions)
	accounts.GET("/:address/token-transfers", h.GetTokenTransfers)
	accounts.GET("/:address/mined-blocks", h.GetMinedBlocks)
	accounts.GET("/:address/overview", h.GetOverview)
}
