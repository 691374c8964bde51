package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"concierge-router/internal/chat"
	"concierge-router/pkg/response"
)

var (
	errMissingSessionID = response.NewHTTPError(http.StatusBadRequest, "session id is required")
	errInvalidRequest   = errors.New("invalid request")
)

// mapError translates use-case errors into HTTP errors. Unknown errors
// return nil and are reported as internal errors by the caller.
func (h *handler) mapError(err error) *response.HTTPError {
	switch {
	case errors.Is(err, chat.ErrMessageTooLong):
		return response.NewHTTPError(http.StatusBadRequest, chat.ErrMessageTooLong.Error())
	case errors.Is(err, chat.ErrEmptySessionID):
		return errMissingSessionID
	case errors.Is(err, chat.ErrAgentUnavailable), errors.Is(err, chat.ErrWorkflowUnavailable):
		return response.NewHTTPError(http.StatusServiceUnavailable, "processor is not configured")
	case errors.Is(err, chat.ErrAgentFailed), errors.Is(err, chat.ErrWorkflowFailed):
		return response.NewHTTPError(http.StatusBadGateway, "processor failed, try again later")
	default:
		return nil
	}
}

// writeBindError answers a request that failed binding. Validation failures
// list the offending fields with the rule they broke.
func (h *handler) writeBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		response.Error(c, err)
		return
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		// Namespace is "messageReq.History[0].Role"; drop the struct name.
		_, field, _ := strings.Cut(fe.Namespace(), ".")
		fields[field] = fe.Tag()
	}
	response.ValidationError(c, errInvalidRequest, fields)
}
