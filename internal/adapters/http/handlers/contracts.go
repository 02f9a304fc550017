package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/evmscan/explorer-gateway/internal/adapters/http/dto"
	"github.com/evmscan/explorer-gateway/internal/app"
)

// ContractHandler handles verified-contract explorer endpoints.
type ContractHandler struct {
	service *app.ExplorerService
}

// NewContractHandler creates a new contract handler.
func NewContractHandler(service *app.ExplorerService) *ContractHandler {
	return &ContractHandler{
		service: service,
	}
}

// ContractABIResponse is the HTTP response structure for a contract ABI.
type ContractABIResponse struct {
	Address string `json:"address"`
	ABI     string `json:"abi"`
}

// GetSource handles GET /api/v1/contracts/:address/source
// Returns the verified source bundle of a contract.
//
// @Summary Get the verified source of a contract
// @Tags contracts
// @Produce json
// @Param address path string true "Contract address"
// @Success 200 {object} dto.ListResponse[domain.ContractSource]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /api/v1/contracts/{address}/source [get]
func (h *ContractHandler) GetSource(c *gin.Context) {
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

	sources, err := h.service.GetContractSource(c.Request.Context(), req.Chain(), req.Address)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(sources))
}

// GetABI handles GET /api/v1/contracts/:address/abi
// Returns the ABI of a verified contract as a JSON string.
//
// @Summary Get the ABI of a verified contract
// @Tags contracts
// @Produce json
// @Param address path string true "Contract address"
// @Success 200 {object} ContractABIResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /api/v1/contracts/{address}/abi [get]
func (h *ContractHandler) GetABI(c *gin.Context) {
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

	abi, err := h.service.GetContractABI(c.Request.Context(), req.Chain(), req.Address)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ContractABIResponse{
		Address: req.Address,
		ABI:     abi,
	})
}

// RegisterContractRoutes registers contract routes on the given router group.
func (h *ContractHandler) RegisterContractRoutes(rg *gin.RouterGroup) {
	contracts := rg.Group("/contracts")
	contracts.GET("/:address/source", h.GetSource)
	contracts.GET("/:address/abi", h.GetABI)
}
