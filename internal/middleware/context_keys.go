package middleware

import (
	"github.com/PettaPuang/nozzle.website-sub005/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// contextKey is a private type for context keys to prevent collisions.
type contextKey string

const (
	loggerCtxKey = contextKey("logger")
	actorCtxKey  = contextKey("actor")
)

// GetActorFromContext retrieves the authenticated actor from the Gin
// context. It returns the actor and a boolean indicating if it was found.
func GetActorFromContext(c *gin.Context) (domain.Actor, bool) {
	val, exists := c.Get(string(actorCtxKey))
	if !exists {
		if ctxVal := c.Request.Context().Value(actorCtxKey); ctxVal != nil {
			if actor, ok := ctxVal.(domain.Actor); ok {
				return actor, true
			}
		}
		return domain.Actor{}, false
	}

	actor, ok := val.(domain.Actor)
	if !ok {
		return domain.Actor{}, false
	}
	return actor, true
}
