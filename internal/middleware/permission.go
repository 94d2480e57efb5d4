package middleware

import (
	"net/http"

	"github.com/PettaPuang/nozzle.website-sub005/internal/core/domain"
	"github.com/PettaPuang/nozzle.website-sub005/internal/dto"
	"github.com/gin-gonic/gin"
)

// CheckPermission aborts the request unless the authenticated actor holds
// one of the allowed roles. It must run after AuthMiddleware.
func CheckPermission(allowedRoles ...domain.Role) gin.HandlerFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		actor, ok := GetActorFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Fail("Unauthorized"))
			return
		}
		if _, ok := allowed[actor.Role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.Fail("Anda tidak memiliki akses untuk operasi ini"))
			return
		}
		c.Next()
	}
}

// CheckPermissionWithGasStation is CheckPermission plus station scoping: the
// actor's station assignment must match the gasStationID path parameter.
// ADMINISTRATOR bypasses the station check.
func CheckPermissionWithGasStation(paramName string, allowedRoles ...domain.Role) gin.HandlerFunc {
	roleCheck := CheckPermission(allowedRoles...)

	return func(c *gin.Context) {
		roleCheck(c)
		if c.IsAborted() {
			return
		}

		actor, _ := GetActorFromContext(c)
		if actor.Role == domain.RoleAdministrator {
			c.Next()
			return
		}

		gasStationID := c.Param(paramName)
		if gasStationID == "" || actor.GasStationID == nil || *actor.GasStationID != gasStationID {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.Fail("Anda tidak ditugaskan pada SPBU ini"))
			return
		}
		c.Next()
	}
}
