package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/abdul-09/slooze-restaurant/pkg/resp"
	"github.com/abdul-09/slooze-restaurant/services"
)

type RestaurantController struct{ Svc *services.RestaurantService }

func NewRestaurantController(s *services.RestaurantService) *RestaurantController {
	return &RestaurantController{Svc: s}
}

// POST /restaurants
func (h *RestaurantController) Create(c *gin.Context) {
	var req services.RestaurantIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rest, err := h.Svc.Create(principal(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, rest)
}

// GET /restaurants
func (h *RestaurantController) List(c *gin.Context) {
	items, err := h.Svc.List(principal(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /restaurants/:id
func (h *RestaurantController) Get(c *gin.Context) {
	rest, err := h.Svc.Get(principal(c), paramID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, rest)
}

// PATCH /restaurants/:id
func (h *RestaurantController) Update(c *gin.Context) {
	var req services.RestaurantUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rest, err := h.Svc.Update(principal(c), paramID(c), req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, rest)
}

// DELETE /restaurants/:id
func (h *RestaurantController) Delete(c *gin.Context) {
	if err := h.Svc.Delete(principal(c), paramID(c)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
