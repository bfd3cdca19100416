package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"lavkapos/internal/apierror"
	"lavkapos/internal/dto"
	"lavkapos/internal/service"

	"github.com/gin-gonic/gin"
)

type OrdersHandler struct{ svc service.OrderService }

func NewOrdersHandler(svc service.OrderService) *OrdersHandler {
	return &OrdersHandler{svc: svc}
}

func (h *OrdersHandler) Place(c *gin.Context) {
	var req dto.PlaceOrderRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Place(c.Param("profile"), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *OrdersHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Param("profile"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OrdersHandler) Get(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid order number"))
		return
	}
	resp, err := h.svc.Get(c.Param("profile"), number)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Receipt streams the order receipt as a PDF attachment.
func (h *OrdersHandler) Receipt(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid order number"))
		return
	}
	raw, err := h.svc.Receipt(c.Param("profile"), number)
	if err != nil {
		fail(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=order_%d.pdf", number))
	c.Data(http.StatusOK, "application/pdf", raw)
}
