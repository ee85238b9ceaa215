package handler

import (
	"net/http"

	"apitf/internal/dto"
	"apitf/internal/infra"
	"apitf/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type SalesHandler struct {
	svc        service.SaleService
	reportPath string
}

func NewSalesHandler(svc service.SaleService, reportPath string) *SalesHandler {
	return &SalesHandler{svc: svc, reportPath: reportPath}
}

// Register godoc
// @Summary      Registrar venda
// @Description  Processa um lote de itens como uma unidade atômica: valida estoque, aplica promoções ativas, decrementa o estoque e grava a auditoria. Qualquer item inválido aborta o lote inteiro.
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body body dto.RegisterSaleRequest true "Itens da venda"
// @Success      201 {object} dto.SaleBatchResponse
// @Failure      400 {object} apierror.APIError
// @Failure      404 {object} apierror.APIError
// @Router       /v1/sales [post]
func (h *SalesHandler) Register(c *gin.Context) {
	var req dto.RegisterSaleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegisterBatch(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *SalesHandler) GetByCode(c *gin.Context) {
	resp, err := h.svc.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Report godoc
// @Summary      Relatório de vendas por período
// @Tags         sales
// @Produce      json
// @Param        start query string true "Data início (YYYY-MM-DD)"
// @Param        end   query string true "Data fim (YYYY-MM-DD, dia inteiro incluso)"
// @Success      200 {array}  dto.SalesReportItem
// @Failure      404 {object} apierror.APIError
// @Router       /v1/sales/report [get]
func (h *SalesHandler) Report(c *gin.Context) {
	start, end, ok := parsePeriod(c)
	if !ok {
		return
	}
	resp, err := h.svc.ReportByPeriod(c.Request.Context(), start, end)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ReportPDF renders the same period report as a PDF file.
func (h *SalesHandler) ReportPDF(c *gin.Context) {
	start, end, ok := parsePeriod(c)
	if !ok {
		return
	}
	items, err := h.svc.ReportByPeriod(c.Request.Context(), start, end)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	path, err := infra.GenerateSalesReportPDF(items, start, end, h.reportPath)
	if err != nil {
		log.Error().Err(err).Msg("sales report pdf generation failed")
		respondServiceError(c, err)
		return
	}
	c.FileAttachment(path, "sales_report.pdf")
}
