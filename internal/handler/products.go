package handler

import (
	"net/http"

	"apitf/internal/apierror"
	"apitf/internal/dto"
	"apitf/internal/service"

	"github.com/gin-gonic/gin"
)

type ProductsHandler struct{ svc service.ProductService }

func NewProductsHandler(svc service.ProductService) *ProductsHandler {
	return &ProductsHandler{svc: svc}
}

// Insert godoc
// @Summary      Cadastrar produto
// @Description  Cria um produto; o estoque inicial gera o primeiro registro de auditoria.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body body dto.CreateProductRequest true "Produto"
// @Success      201 {object} dto.ProductResponse
// @Failure      422 {object} apierror.ValidationError
// @Router       /v1/products [post]
func (h *ProductsHandler) Insert(c *gin.Context) {
	var req dto.CreateProductRequest
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

func (h *ProductsHandler) GetByID(c *gin.Context) {
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

func (h *ProductsHandler) GetByBarcode(c *gin.Context) {
	resp, err := h.svc.GetByBarcode(c.Request.Context(), c.Param("barcode"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductsHandler) SearchByDescription(c *gin.Context) {
	description := c.Query("description")
	if description == "" {
		c.JSON(http.StatusBadRequest, apierror.New("O parâmetro 'description' é obrigatório."))
		return
	}
	resp, err := h.svc.SearchByDescription(c.Request.Context(), description)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductsHandler) Update(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateProductRequest
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

// AdjustStock godoc
// @Summary      Ajustar estoque
// @Description  Aplica um delta assinado ao estoque do produto e grava a auditoria na mesma transação.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id   path int                    true "ID do produto"
// @Param        body body dto.AdjustStockRequest true "Delta (positivo ou negativo, nunca zero)"
// @Success      200 {object} dto.ProductResponse
// @Failure      400 {object} apierror.APIError
// @Failure      404 {object} apierror.APIError
// @Router       /v1/products/{id}/stock [patch]
func (h *ProductsHandler) AdjustStock(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req dto.AdjustStockRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AdjustStock(c.Request.Context(), id, req.Qty)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
