package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/evmscan/explorer-gateway/internal/adapters/http/dto"
	"github.com/evmscan/explorer-gateway/internal/app"
)

// TokenHandler handles ERC-20 token explorer endpoints.
type TokenHandler struct {
	service *app.ExplorerService
}

// NewTokenHandler creates a new token handler.
func NewTokenHandler(service *app.ExplorerService) *TokenHandler {
	return &TokenHandler{
		service: service,
	}
}

// TokenSupplyResponse is the HTTP response structure for a supply lookup.
type TokenSupplyResponse struct {
	ContractAddress string `json:"contract_address"`
	TotalSupply     string `json:"total_supply"`
}

// GetSupply handles GET /api/v1/tokens/:address/supply
// Returns the total supply of a token in its smallest unit.
//
// @Summary Get the total supply of a token
// @Tags tokens
// @Produce json
// @Param address path string true "Token contract address"
// @Success 200 {object} TokenSupplyResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /api/v1/tokens/{address}/supply [get]
func (h *TokenHandler) GetSupply(c *gin.Context) {
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

	supply, err := h.service.GetTokenSupply(c.Request.Context(), req.Chain(), req.Address)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, TokenSupplyResponse{
		ContractAddress: req.Address,
		TotalSupply:     supply,
	})
}

// GetInfo handles GET /api/v1/tokens/:address/info
// Returns the descriptive metadata of a token project.
//
// @Summary Get token metadata
// @Tags tokens
// @Produce json
// @Param address path string true "Token contract address"
// @Success 200 {object} dto.ListResponse[domain.TokenInfo]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /api/v1/tokens/{address}/info [get]
func (h *TokenHandler) GetInfo(c *gin.Context) {
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

	info, err := h.service.GetTokenInfo(c.Request.Context(), req.Chain(), req.Address)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(info))
}

// RegisterTokenRoutes registers token routes on the given router group.
func (h *TokenHandler) RegisterTokenRoutes(rg *gin.RouterGroup) {
	tokens := rg.Group("/tokens")
	tokens.GET("/:address/supply", h.GetSupply)
	tokens.GET("/:address/info", h.GetInfo)
}
