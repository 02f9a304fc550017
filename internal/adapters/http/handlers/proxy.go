package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/evmscan/explorer-gateway/internal/adapters/http/dto"
	"github.com/evmscan/explorer-gateway/internal/app"
	"github.com/evmscan/explorer-gateway/internal/domain"
)

// ProxyHandler exposes the node JSON-RPC reads and writes that the block
// explorer relays verbatim. Scalar results stay quantity-encoded hex;
// object results pass through untouched.
type ProxyHandler struct {
	service *app.ExplorerService
}

// NewProxyHandler creates a new proxy handler.
func NewProxyHandler(service *app.ExplorerService) *ProxyHandler {
	return &ProxyHandler{
		service: service,
	}
}

// ProxyResultResponse wraps a scalar proxy result.
type ProxyResultResponse struct {
	Result string `json:"result"`
}

// ProxyRawResponse wraps an object proxy result. A transaction or receipt
// that does not exist comes back as a JSON null result.
type ProxyRawResponse struct {
	Result json.RawMessage `json:"result"`
}

// GetBlockNumber handles GET /api/v1/proxy/block-number
//
// @Summary Get the latest block number
// @Tags proxy
// @Produce json
// @Success 200 {object} ProxyResultResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /api/v1/proxy/block-number [get]
func (h *ProxyHandler) GetBlockNumber(c *gin.Context) {
	var req dto.ChainRequest
	if err := dto.BindQueryAndValidate(c, &req); err != nil {
		dto.HandleValidationError(c, err)
		return
	}

	number, err := h.service.BlockNumber(c.Request.Context(), req.Chain())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ProxyResultResponse{Result: number})
}

// GetBlock handles GET /api/v1/proxy/blocks/:tag
// Returns the block identified by a tag or hex number, with transaction
// hashes only unless full=true.
//
// @Summary Get a block by number or tag
// @Tags proxy
// @Produce json
// @Param tag path string true "Block tag or hex number"
// @Param full query bool false "Include full transaction objects"
// @Success 200 {object} ProxyRawResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/proxy/blocks/{tag} [get]
func (h *ProxyHandler) GetBlock(c *gin.Context) {
	var req dto.BlockTagRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		dto.HandleValidationError(c, err)
		return
	}
	req.Tag = c.Param("tag")

	if err := dto.Validate(&req); err != nil {
		dto.HandleValidationError(c, err)
		return
	}

	block, err := h.service.GetBlockByNumber(c.Request.Context(), req.Chain(), req.Tag, req.Full)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ProxyRawResponse{Result: block})
}

// GetTransactionAtIndex handles GET /api/v1/proxy/blocks/:tag/transactions/:index
//
// @Summary Get a transaction by block tag and position
// @Tags proxy
// @Produce json
// @Param tag path string true "Block tag or hex number"
// @Param index path string true "Transaction index, hex-encoded"
// @Success 200 {object} ProxyRawResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/proxy/blocks/{tag}/transactions/{index} [get]
func (h *ProxyHandler) GetTransactionAtIndex(c *gin.Context) {
	var req dto.TransactionAtIndexRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		dto.HandleValidationError(c, err)
		return
	}
	req.Tag = c.Param("tag")
	req.Index = c.Param("index")

	if err := dto.Validate(&req); err != nil {
		dto.HandleValidationError(c, err)
		return
	}

	tx, err := h.service.GetTransactionByBlockNumberAndIndex(c.Request.Context(), req.Chain(), req.Tag, req.Index)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ProxyRawResponse{Result: tx})
}

// GetTransaction handles GET /api/v1/proxy/transactions/:hash
// An unknown hash yields a null result, not an error.
//
// @Summary Get a transaction by hash
// @Tags proxy
// @Produce json
// @Param hash path string true "Transaction hash"
// @Success 200 {object} ProxyRawResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/proxy/transactions/{hash} [get]
func (h *ProxyHandler) GetTransaction(c *gin.Context) {
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

	tx, err := h.service.GetTransactionByHash(c.Request.Context(), req.Chain(), req.Hash)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ProxyRawResponse{Result: tx})
}

// GetTransactionReceipt handles GET /api/v1/proxy/transactions/:hash/receipt
//
// @Summary Get the receipt of a mined transaction
// @Tags proxy
// @Produce json
// @Param hash path string true "Transaction hash"
// @Success 200 {object} ProxyRawResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/proxy/transactions/{hash}/receipt [get]
func (h *ProxyHandler) GetTransactionReceipt(c *gin.Context) {
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

	receipt, err := h.service.GetTransactionReceipt(c.Request.Context(), req.Chain(), req.Hash)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ProxyRawResponse{Result: receipt})
}

// GetTransactionCount handles GET /api/v1/proxy/addresses/:address/transaction-count
// Returns the nonce of an address at the given block tag.
//
// @Summary Get the transaction count of an address
// @Tags proxy
// @Produce json
// @Param address path string true "Account address"
// @Param tag query string false "Block tag"
// @Success 200 {object} ProxyResultResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/proxy/addresses/{address}/transaction-count [get]
func (h *ProxyHandler) GetTransactionCount(c *gin.Context) {
	var req dto.TaggedAddressRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		dto.HandleValidationError(c, err)
		return
	}
	req.Address = c.Param("address")

	if err := dto.Validate(&req); err != nil {
		dto.HandleValidationError(c, err)
		return
	}

	count, err := h.service.GetTransactionCount(c.Request.Context(), req.Chain(), req.Address, req.Tag)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ProxyResultResponse{Result: count})
}

// GetCode handles GET /api/v1/proxy/addresses/:address/code
//
// @Summary Get the bytecode at an address
// @Tags proxy
// @Produce json
// @Param address path string true "Contract address"
// @Param tag query string false "Block tag"
// @Success 200 {object} ProxyResultResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/proxy/addresses/{address}/code [get]
func (h *ProxyHandler) GetCode(c *gin.Context) {
	var req dto.TaggedAddressRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		dto.HandleValidationError(c, err)
		return
	}
	req.Address = c.Param("address")

	if err := dto.Validate(&req); err != nil {
		dto.HandleValidationError(c, err)
		return
	}

	code, err := h.service.GetCode(c.Request.Context(), req.Chain(), req.Address, req.Tag)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ProxyResultResponse{Result: code})
}

// GetStorage handles GET /api/v1/proxy/addresses/:address/storage/:position
//
// @Summary Get the value of a contract storage slot
// @Tags proxy
// @Produce json
// @Param address path string true "Contract address"
// @Param position path string true "Storage slot, hex-encoded"
// @Success 200 {object} ProxyResultResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/proxy/addresses/{address}/storage/{position} [get]
func (h *ProxyHandler) GetStorage(c *gin.Context) {
	var req dto.StorageRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		dto.HandleValidationError(c, err)
		return
	}
	req.Address = c.Param("address")
	req.Position = c.Param("position")

	if err := dto.Validate(&req); err != nil {
		dto.HandleValidationError(c, err)
		return
	}

	value, err := h.service.GetStorageAt(c.Request.Context(), req.Chain(), req.Address, req.Position, req.Tag)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ProxyResultResponse{Result: value})
}

// GetGasPrice handles GET /api/v1/proxy/gas-price
//
// @Summary Get the current gas price
// @Tags proxy
// @Produce json
// @Success 200 {object} ProxyResultResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /api/v1/proxy/gas-price [get]
func (h *ProxyHandler) GetGasPrice(c *gin.Context) {
	var req dto.ChainRequest
	if err := dto.BindQueryAndValidate(c, &req); err != nil {
		dto.HandleValidationError(c, err)
		return
	}

	price, err := h.service.GasPrice(c.Request.Context(), req.Chain())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ProxyResultResponse{Result: price})
}

// Broadcast handles POST /api/v1/proxy/transactions
// Submits a signed raw transaction and reports whether it became visible
// upstream.
//
// @Summary Broadcast a signed raw transaction
// @Tags proxy
// @Accept json
// @Produce json
// @Param request body dto.BroadcastRequest true "Signed transaction"
// @Success 200 {object} app.BroadcastResult
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /api/v1/proxy/transactions [post]
func (h *ProxyHandler) Broadcast(c *gin.Context) {
	var req dto.BroadcastRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleValidationError(c, err)
		return
	}

	result, err := h.service.BroadcastTransaction(c.Request.Context(), app.BroadcastInput{
		ChainID:   req.Chain(),
		SignedHex: req.SignedHex,
	})
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Call handles POST /api/v1/proxy/call
// Executes a read-only message call against the given block tag.
//
// @Summary Execute a read-only call
// @Tags proxy
// @Accept json
// @Produce json
// @Param request body dto.CallRequest true "Call message"
// @Success 200 {object} ProxyResultResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /api/v1/proxy/call [post]
func (h *ProxyHandler) Call(c *gin.Context) {
	var req dto.CallRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleValidationError(c, err)
		return
	}

	result, err := h.service.Call(c.Request.Context(), req.Chain(), domain.CallMsg{
		To:       req.To,
		Data:     req.Data,
		Value:    req.Value,
		Gas:      req.Gas,
		GasPrice: req.GasPrice,
	}, req.Tag)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ProxyResultResponse{Result: result})
}

// EstimateGas handles POST /api/v1/proxy/estimate-gas
//
// @Summary Estimate the gas cost of a message
// @Tags proxy
// @Accept json
// @Produce json
// @Param request body dto.CallRequest true "Call message"
// @Success 200 {object} ProxyResultResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /api/v1/proxy/estimate-gas [post]
func (h *ProxyHandler) EstimateGas(c *gin.Context) {
	var req dto.CallRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleValidationError(c, err)
		return
	}

	result, err := h.service.EstimateGas(c.Request.Context(), req.Chain(), domain.CallMsg{
		To:       req.To,
		Data:     req.Data,
		Value:    req.Value,
		Gas:      req.Gas,
		GasPrice: req.GasPrice,
	})
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ProxyResultResponse{Result: result})
}

// RegisterProxyRoutes registers proxy routes on the given router group.
func (h *ProxyHandler) RegisterProxyRoutes(rg *gin.RouterGroup) {
	proxy := rg.Group("/proxy")
	proxy.GET("/block-number", h.GetBlockNumber)
	proxy.GET("/gas-price", h.GetGasPrice)
	proxy.GET("/blocks/:tag", h.GetBlock)
	proxy.GET("/blocks/:tag/transactions/:index", h.GetTransactionAtIndex)
	proxy.GET("/transactions/:hash", h.GetTransaction)
	proxy.GET("/transactions/:hash/receipt", h.GetTransactionReceipt)
	proxy.POST("/transactions", h.Broadcast)
	proxy.GET("/addresses/:address/transaction-count", h.GetTransactionCount)
	proxy.GET("/addresses/:address/code", h.GetCode)
	proxy.GET("/addresses/:address/storage/:position", h.GetStorage)
	proxy.POST("/call", h.Call)
	proxy.POST("/estimate-gas", h.EstimateGas)
}
