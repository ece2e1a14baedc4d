package response

const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"

	BadRequestErrorCode      = 1
	NotFoundErrorCode        = 404
	ConflictErrorCode        = 409
	TooManyRequestsErrorCode = 429
	InternalServerErrorCode  = 500

	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"
)
