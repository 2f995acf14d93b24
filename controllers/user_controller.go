package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/abdul-09/slooze-restaurant/pkg/resp"
	"github.com/abdul-09/slooze-restaurant/services"
)

type UserController struct{ Svc *services.UserService }

func NewUserController(s *services.UserService) *UserController { return &UserController{Svc: s} }

// GET /users
func (h *UserController) List(c *gin.Context) {
	users, err := h.Svc.List(principal(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": users})
}

// GET /users/:id
func (h *UserController) Get(c *gin.Context) {
	user, err := h.Svc.Get(principal(c), paramID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, user)
}

// PATCH /users/:id
func (h *UserController) Update(c *gin.Context) {
	var req services.UserUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := h.Svc.Update(principal(c), paramID(c), req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, user)
}

// DELETE /users/:id
func (h *UserController) Delete(c *gin.Context) {
	if err := h.Svc.Delete(principal(c), paramID(c)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
