package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/abdul-09/slooze-restaurant/pkg/resp"
	"github.com/abdul-09/slooze-restaurant/services"
)

type DashboardController struct{ Svc *services.DashboardService }

func NewDashboardController(s *services.DashboardService) *DashboardController {
	return &DashboardController{Svc: s}
}

// GET /dashboard/admin
func (h *DashboardController) Admin(c *gin.Context) {
	out, err := h.Svc.Admin(principal(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /dashboard/manager
func (h *DashboardController) Manager(c *gin.Context) {
	out, err := h.Svc.Manager(principal(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /dashboard/member
func (h *DashboardController) Member(c *gin.Context) {
	out, err := h.Svc.Member(principal(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}
