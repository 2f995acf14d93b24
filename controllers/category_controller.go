package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/abdul-09/slooze-restaurant/pkg/resp"
	"github.com/abdul-09/slooze-restaurant/services"
)

type CategoryController struct{ Svc *services.CategoryService }

func NewCategoryController(s *services.CategoryService) *CategoryController {
	return &CategoryController{Svc: s}
}

type categoryIn struct {
	Name string `json:"name" binding:"required"`
}

// POST /categories
func (h *CategoryController) Create(c *gin.Context) {
	var req categoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cat, err := h.Svc.Create(principal(c), req.Name)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, cat)
}

// GET /categories
func (h *CategoryController) List(c *gin.Context) {
	items, err := h.Svc.List()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// PATCH /categories/:id
func (h *CategoryController) Update(c *gin.Context) {
	var req categoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cat, err := h.Svc.Rename(principal(c), paramID(c), req.Name)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, cat)
}

// DELETE /categories/:id
func (h *CategoryController) Delete(c *gin.Context) {
	if err := h.Svc.Delete(principal(c), paramID(c)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
