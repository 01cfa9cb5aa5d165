package status

// HTTPError is an error that carries the status code a response to it should have.
type HTTPError struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return HTTPError{
		Code:    code,
		Message: message,
	}
}

func (h HTTPError) Error() string {
	return h.Message
}

var (
	ErrHeaderTooLarge   = NewError(RequestHeaderFieldsTooLarge, "request header is too large")
	ErrMalformedRequest = NewError(BadRequest, "malformed request")
	ErrBodyTooLarge     = NewError(RequestEntityTooLarge, "request body is too large")
	ErrUnexpectedEOF    = NewError(BadRequest, "unexpected EOF while reading body")
	ErrHandlerPanic     = NewError(InternalServerError, "handler panicked")

	ErrInternalServerError = NewError(InternalServerError, "internal server error")
)
