package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/abdul-09/slooze-restaurant/pkg/resp"
	"github.com/abdul-09/slooze-restaurant/services"
)

type PaymentController struct{ Svc *services.CheckoutService }

func NewPaymentController(s *services.CheckoutService) *PaymentController {
	return &PaymentController{Svc: s}
}

// POST /payments/complete
// Gateway completion path: the client paid through the gateway first; the
// reported amount must match the cart before the order is accepted.
func (h *PaymentController) Complete(c *gin.Context) {
	p := principal(c)

	var req struct {
		OrderID string `json:"orderId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.Svc.CompletePayment(c.Request.Context(), p.ID, req.OrderID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, order)
}
