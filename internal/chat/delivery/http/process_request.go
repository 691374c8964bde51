package http

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// processRouteReq binds the route request body and normalizes its fields.
func (h *handler) processRouteReq(c *gin.Context) (messageReq, error) {
	var req messageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.normalize()
	return req, nil
}

// processMessageReq binds the message request body. A non-blank message is
// required here since it would otherwise still be sent to a processor.
func (h *handler) processMessageReq(c *gin.Context) (messageReq, error) {
	req, err := h.processRouteReq(c)
	if err != nil {
		return req, err
	}
	if strings.TrimSpace(req.Message) == "" {
		return req, errEmptyMessage
	}
	return req, nil
}
