package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/evmscan/explorer-gateway/internal/adapters/http/dto"
	"github.com/evmscan/explorer-gateway/internal/app"
	"github.com/evmscan/explorer-gateway/internal/domain"
)

// LogHandler handles the event-log explorer endpoint.
type LogHandler struct {
	service *app.ExplorerService
}

// NewLogHandler creates a new log handler.
func NewLogHandler(service *app.ExplorerService) *LogHandler {
	return &LogHandler{
		service: service,
	}
}

// GetLogs handles GET /api/v1/logs
// Returns event logs filtered by block window, address, and indexed topics.
//
// @Summary Query event logs
// @Tags logs
// @Produce json
// @Param address query string false "Emitting contract address"
// @Param from_block query string false "Start of the block window"
// @Param to_block query string false "End of the block window"
// @Param topic0 query string false "First indexed topic"
// @Success 200 {object} dto.ListResponse[domain.LogEntry]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /api/v1/logs [get]
func (h *LogHandler) GetLogs(c *gin.Context) {
	var req dto.LogsRequest
	if err := dto.BindQueryAndValidate(c, &req); err != nil {
		dto.HandleValidationError(c, err)
		return
	}

	logs, err := h.service.GetLogs(c.Request.Context(), req.Chain(), domain.LogQuery{
		Address:         req.Address,
		FromBlock:       req.FromBlock,
		ToBlock:         req.ToBlock,
		Topic0:          req.Topic0,
		Topic1:          req.Topic1,
		Topic2:          req.Topic2,
		Topic3:          req.Topic3,
		Topic01Operator: req.Topic01Operator,
		Topic12Operator: req.Topic12Operator,
		Topic23Operator: req.Topic23Operator,
		Page:            req.Page,
		Offset:          req.Offset,
	})
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(logs))
}

// RegisterLogRoutes registers the log route on the given router group.
func (h *LogHandler) RegisterLogRoutes(rg *gin.RouterGroup) {
	rg.GET("/logs", h.GetLogs)
}
