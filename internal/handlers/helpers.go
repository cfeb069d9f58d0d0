package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/styleon-app/stylist-scheduler/internal/domain/booking"
	"github.com/styleon-app/stylist-scheduler/internal/middleware"
)

func currentUserID(c *gin.Context) uint {
	return c.MustGet(middleware.ContextUserID).(uint)
}

func currentRole(c *gin.Context) domain.Role {
	role, _ := c.MustGet(middleware.ContextUserRole).(string)
	parsed, err := domain.ParseRole(role)
	if err != nil {
		return ""
	}
	return parsed
}

func paramID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
