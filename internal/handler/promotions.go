package handler

import (
	"net/http"
	"time"

	"apitf/internal/apierror"
	"apitf/internal/dto"
	"apitf/internal/service"

	"github.com/gin-gonic/gin"
)

type PromotionsHandler struct{ svc service.PromotionService }

func NewPromotionsHandler(svc service.PromotionService) *PromotionsHandler {
	return &PromotionsHandler{svc: svc}
}

func (h *PromotionsHandler) Insert(c *gin.Context) {
	var req dto.PromotionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Insert(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *PromotionsHandler) Update(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req dto.PromotionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PromotionsHandler) GetByID(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PromotionsHandler) GetActive(c *gin.Context) {
	productID, ok := parseUintParam(c, "productId")
	if !ok {
		return
	}
	resp, err := h.svc.GetActiveNow(c.Request.Context(), productID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetByProductAndPeriod godoc
// @Summary      Promoções de um produto no período
// @Tags         promotions
// @Produce      json
// @Param        productId path  int    true  "ID do produto"
// @Param        start     query string true  "Data início (YYYY-MM-DD)"
// @Param        end       query string true  "Data fim (YYYY-MM-DD)"
// @Success      200 {array}  dto.PromotionResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/promotions/product/{productId}/period [get]
func (h *PromotionsHandler) GetByProductAndPeriod(c *gin.Context) {
	productID, ok := parseUintParam(c, "productId")
	if !ok {
		return
	}
	start, end, ok := parsePeriod(c)
	if !ok {
		return
	}
	resp, err := h.svc.GetByProductAndPeriod(c.Request.Context(), productID, start, end)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// parsePeriod reads the start/end query parameters as store-local dates.
func parsePeriod(c *gin.Context) (time.Time, time.Time, bool) {
	const layout = "2006-01-02"
	start, err := time.Parse(layout, c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("As datas de início e fim são obrigatórias."))
		return time.Time{}, time.Time{}, false
	}
	end, err := time.Parse(layout, c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("As datas de início e fim são obrigatórias."))
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}
