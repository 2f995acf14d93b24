package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/abdul-09/slooze-restaurant/pkg/resp"
	"github.com/abdul-09/slooze-restaurant/services"
)

type MenuController struct{ Svc *services.MenuService }

func NewMenuController(s *services.MenuService) *MenuController { return &MenuController{Svc: s} }

// POST /menu-items
func (h *MenuController) Create(c *gin.Context) {
	var req services.MenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := h.Svc.Create(principal(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, item)
}

// GET /menu-items?restaurant_id=
func (h *MenuController) List(c *gin.Context) {
	restID, _ := strconv.ParseUint(c.Query("restaurant_id"), 10, 64)
	items, err := h.Svc.List(principal(c), uint(restID))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /menu-items/:id
func (h *MenuController) Get(c *gin.Context) {
	item, err := h.Svc.Get(paramID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, item)
}

// PATCH /menu-items/:id
func (h *MenuController) Update(c *gin.Context) {
	var req services.MenuItemUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := h.Svc.Update(principal(c), paramID(c), req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /menu-items/:id
func (h *MenuController) Delete(c *gin.Context) {
	if err := h.Svc.Delete(principal(c), paramID(c)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
