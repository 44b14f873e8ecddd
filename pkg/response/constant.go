package response

// Messages and codes shared by every JSON response.
const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Internal server error"

	InternalServerErrorCode = 500
)

// DateTimeFormat is the layout the DateTime marshaler renders with.
const DateTimeFormat = "2006-01-02 15:04:05"
