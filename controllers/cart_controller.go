package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/abdul-09/slooze-restaurant/pkg/resp"
	"github.com/abdul-09/slooze-restaurant/services"
)

type CartController struct {
	Svc      *services.CartService
	Checkout *services.CheckoutService
}

func NewCartController(s *services.CartService, co *services.CheckoutService) *CartController {
	return &CartController{Svc: s, Checkout: co}
}

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	p := principal(c)
	cart, err := h.Svc.Get(p.ID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, cart)
}

// POST /cart/items
func (h *CartController) AddItem(c *gin.Context) {
	p := principal(c)
	if err := services.Require(p, services.ActionCartMutate, services.Resource{Kind: "cart", OwnerID: p.ID}); err != nil {
		resp.Error(c, err)
		return
	}

	var req struct {
		MenuItemID          uint   `json:"menuItemId" binding:"required"`
		Quantity            int    `json:"quantity" binding:"required"`
		SpecialInstructions string `json:"specialInstructions"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cart, err := h.Svc.AddItem(p.ID, req.MenuItemID, req.Quantity, req.SpecialInstructions)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, cart)
}

// PATCH /cart/items/quantity
func (h *CartController) UpdateQuantity(c *gin.Context) {
	p := principal(c)
	if err := services.Require(p, services.ActionCartMutate, services.Resource{Kind: "cart", OwnerID: p.ID}); err != nil {
		resp.Error(c, err)
		return
	}

	var req struct {
		ItemID   uint `json:"itemId" binding:"required"`
		Quantity int  `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cart, err := h.Svc.UpdateQuantity(p.ID, req.ItemID, req.Quantity)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, cart)
}

// DELETE /cart/items
func (h *CartController) RemoveItem(c *gin.Context) {
	p := principal(c)
	if err := services.Require(p, services.ActionCartMutate, services.Resource{Kind: "cart", OwnerID: p.ID}); err != nil {
		resp.Error(c, err)
		return
	}

	var req struct {
		ItemID uint `json:"itemId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cart, err := h.Svc.RemoveItem(p.ID, req.ItemID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, cart)
}

// POST /cart/checkout
func (h *CartController) CheckoutCart(c *gin.Context) {
	p := principal(c)
	if err := services.Require(p, services.ActionCheckout, services.Resource{Kind: "cart", OwnerID: p.ID}); err != nil {
		resp.Error(c, err)
		return
	}

	var req struct {
		PaymentMethod       string          `json:"paymentMethod" binding:"required"`
		SpecialInstructions string          `json:"specialInstructions"`
		DiscountPercent     decimal.Decimal `json:"discountPercent"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.Checkout.CheckoutWithDiscount(p.ID, req.PaymentMethod, req.SpecialInstructions, req.DiscountPercent)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, order)
}
