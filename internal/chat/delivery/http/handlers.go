package http

import (
	"github.com/gin-gonic/gin"

	"concierge-router/pkg/response"
)

// Route godoc
// @Summary     Route a chat message
// @Description Classifies the message and returns the routing decision and the advisory recommendation. No processor is called.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body messageReq true "Message, mode and optional history"
// @Success     200  {object} routeResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/route [POST]
func (h *handler) Route(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRouteReq(c)
	if err != nil {
		h.writeBindError(c, err)
		return
	}

	output, err := h.uc.Route(ctx, req.toRouteInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Route: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newRouteResp(output))
}

// Message godoc
// @Summary     Handle a chat message
// @Description Routes the message and dispatches it to the general agent, the workflow backend, or both.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body messageReq true "Message, mode and optional history"
// @Success     200  {object} messageResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     502  {object} response.Resp "Processor failed"
// @Failure     503  {object} response.Resp "Processor not configured"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/message [POST]
func (h *handler) Message(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processMessageReq(c)
	if err != nil {
		h.writeBindError(c, err)
		return
	}

	output, err := h.uc.Handle(ctx, req.toMessageInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Handle: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newMessageResp(output))
}

// Modes godoc
// @Summary     List operating modes
// @Tags        Chat
// @Produce     json
// @Success     200 {object} modesResp
// @Router      /api/v1/chat/modes [GET]
func (h *handler) Modes(c *gin.Context) {
	response.OK(c, h.newModesResp(h.uc.Modes(c.Request.Context())))
}

// ResetSession godoc
// @Summary     Forget a session's history
// @Tags        Chat
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/chat/sessions/{id} [DELETE]
func (h *handler) ResetSession(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.ResetSession(ctx, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.ResetSession: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *handler) writeError(c *gin.Context, err error) {
	if he := h.mapError(err); he != nil {
		response.Error(c, he)
		return
	}
	response.InternalError(c, err)
}
