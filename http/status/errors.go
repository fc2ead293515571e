package status

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
	// ErrShutdown and ErrGracefulShutdown never reach the wire. They signal the
	// accept loop's cause of death to the application.
	ErrShutdown         = NewError(ServiceUnavailable, "server is shut down")
	ErrGracefulShutdown = NewError(ServiceUnavailable, "server is gracefully shut down")

	// Parse errors are connection-fatal: they are surfaced for logging and the
	// connection is torn down without an HTTP-level reply.
	ErrBadRequestLine      = NewError(BadRequest, "invalid request line")
	ErrMalformedHeader     = NewError(BadRequest, "malformed header line")
	ErrBadContentLength    = NewError(BadRequest, "invalid Content-Length")
	ErrBodyTruncated       = NewError(BadRequest, "connection closed before the whole body arrived")
	ErrNotFound            = NewError(NotFound, "not found")
	ErrMethodNotAllowed    = NewError(MethodNotAllowed, "method not allowed")
	ErrInternalServerError = NewError(InternalServerError, "internal server error")
)
