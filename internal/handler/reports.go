package handler

import (
	"net/http"

	"lavkapos/internal/apierror"
	"lavkapos/internal/dto"
	"lavkapos/internal/infra"
	"lavkapos/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportsHandler struct{ svc service.ReportService }

func NewReportsHandler(svc service.ReportService) *ReportsHandler {
	return &ReportsHandler{svc: svc}
}

func (h *ReportsHandler) Sales(c *gin.Context) {
	var filter dto.SalesReportFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.Sales(c.Param("profile"), filter)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SalesExport streams the sales report as an .xlsx attachment.
func (h *ReportsHandler) SalesExport(c *gin.Context) {
	var filter dto.SalesReportFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	report, err := h.svc.Sales(c.Param("profile"), filter)
	if err != nil {
		fail(c, err)
		return
	}
	raw, err := infra.ExportSalesReport(report)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to export report"))
		return
	}
	c.Header("Content-Disposition", "attachment; filename=sales_report.xlsx")
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", raw)
}

func (h *ReportsHandler) Daily(c *gin.Context) {
	resp, err := h.svc.Daily(c.Param("profile"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
