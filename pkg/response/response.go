package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error sends an error response. An *HTTPError keeps its own status and
// message; any other error is a 400 carrying err's text.
func Error(c *gin.Context, err error) {
	var he *HTTPError
	if errors.As(err, &he) {
		c.JSON(he.Status, Resp{
			ErrorCode: he.Code,
			Message:   he.Message,
		})
		return
	}

	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: BadRequestCode,
		Message:   err.Error(),
	})
}

// ValidationError sends 400 with per-field details.
func ValidationError(c *gin.Context, err error, fields map[string]string) {
	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: BadRequestCode,
		Message:   err.Error(),
		Errors:    fields,
	})
}

// InternalError sends 500 internal server error. The cause is never exposed.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// Unauthorized sends 401 response.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: UnauthorizedCode,
		Message:   "Unauthorized",
	})
}

// NotFound sends 404 for unknown routes.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, Resp{
		ErrorCode: NotFoundCode,
		Message:   "Not found",
	})
}

// ServiceUnavailable sends 503 with message.
func ServiceUnavailable(c *gin.Context, message string) {
	c.JSON(http.StatusServiceUnavailable, Resp{
		ErrorCode: ServiceUnavailableCode,
		Message:   message,
	})
}

// TooManyRequests aborts the chain with 429.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Resp{
		ErrorCode: TooManyRequestsCode,
		Message:   "Too many requests",
	})
}
