package handler

import (
	"net/http"

	"lavkapos/internal/dto"
	"lavkapos/internal/service"

	"github.com/gin-gonic/gin"
)

type StockHandler struct{ svc service.StockService }

func NewStockHandler(svc service.StockService) *StockHandler {
	return &StockHandler{svc: svc}
}

func (h *StockHandler) Warehouse(c *gin.Context) {
	resp, err := h.svc.Warehouse(c.Param("profile"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *StockHandler) Replenish(c *gin.Context) {
	var req dto.ReplenishStockRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Replenish(c.Param("profile"), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *StockHandler) Adjust(c *gin.Context) {
	var req dto.AdjustStockRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Adjust(c.Param("profile"), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *StockHandler) History(c *gin.Context) {
	resp, err := h.svc.History(c.Param("profile"), c.Param("name"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
