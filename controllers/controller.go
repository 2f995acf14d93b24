package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/abdul-09/slooze-restaurant/services"
	"github.com/abdul-09/slooze-restaurant/utils"
)

// principal assembles the caller identity set by the auth middleware;
// nil when the request is unauthenticated.
func principal(c *gin.Context) *services.Principal {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		return nil
	}
	return &services.Principal{
		ID:     uid,
		Role:   utils.CurrentRole(c),
		Region: utils.CurrentRegion(c),
	}
}

func paramID(c *gin.Context) uint {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)
	return uint(id)
}
