package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/abdul-09/slooze-restaurant/pkg/resp"
	"github.com/abdul-09/slooze-restaurant/services"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

// GET /orders?limit=
func (h *OrderController) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	orders, err := h.Svc.List(principal(c), limit)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders})
}

// GET /orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	detail, err := h.Svc.Detail(principal(c), paramID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, detail)
}

// POST /orders/:id/status
func (h *OrderController) UpdateStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.Svc.UpdateStatus(principal(c), paramID(c), req.Status)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}

// POST /orders/:id/cancel
func (h *OrderController) Cancel(c *gin.Context) {
	order, err := h.Svc.Cancel(principal(c), paramID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}

// POST /orders/:id/payment-method
func (h *OrderController) UpdatePaymentMethod(c *gin.Context) {
	var req struct {
		PaymentMethod string `json:"paymentMethod" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.Svc.UpdatePaymentMethod(principal(c), paramID(c), req.PaymentMethod)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}

// DELETE /orders/:id
func (h *OrderController) Delete(c *gin.Context) {
	if err := h.Svc.Delete(principal(c), paramID(c)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
