package http

import (
	"github.com/gin-gonic/gin"

	"concierge-router/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Only the endpoint that calls downstream processors is rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	chat := rg.Group("/chat")
	{
		chat.POST("/route", h.Route)
		chat.POST("/message", mw.RateLimit(), h.Message)
		chat.GET("/modes", h.Modes)
		chat.DELETE("/sessions/:id", h.ResetSession)
	}
}
