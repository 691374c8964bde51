package response

const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"

	BadRequestCode          = 1
	UnauthorizedCode        = 401
	NotFoundCode            = 404
	TooManyRequestsCode     = 429
	InternalServerErrorCode = 500
	ServiceUnavailableCode  = 503
)
