package handler

import (
	"net/http"

	"apitf/internal/service"

	"github.com/gin-gonic/gin"
)

type LogsHandler struct{ svc service.LogService }

func NewLogsHandler(svc service.LogService) *LogsHandler { return &LogsHandler{svc: svc} }

// GetByProduct returns the full stock audit trail of one product, oldest
// entry first.
func (h *LogsHandler) GetByProduct(c *gin.Context) {
	productID, ok := parseUintParam(c, "productId")
	if !ok {
		return
	}
	resp, err := h.svc.GetLogsByProduct(c.Request.Context(), productID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
