package status

// HTTPError is an error carrying the status code a failure maps to. All the
// failures produced by the request ingestion pipeline are plain values of this
// type; nothing in the library panics on malformed input.
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
	// grammar violations reported by the header machine
	ErrBadRequest  = NewError(BadRequest, "bad request")
	ErrBadVersion  = NewError(BadRequest, "malformed HTTP version")
	ErrBadHeader   = NewError(BadRequest, "malformed header line")
	ErrBadParams   = NewError(BadRequest, "bad urlencoded parameters")
	ErrURLDecoding = NewError(BadRequest, "invalid percent-encoded sequence")

	// per-field ceilings
	ErrMethodTooLong        = NewError(RequestURITooLong, "request method is too long")
	ErrURITooLong           = NewError(RequestURITooLong, "request URI is too long")
	ErrQueryTooLong         = NewError(RequestURITooLong, "query string is too long")
	ErrHeaderFieldsTooLarge = NewError(HeaderFieldsTooLarge, "too large header fields")
	ErrBodyTooLarge         = NewError(RequestEntityTooLarge, "request body is too large")

	ErrNotFound             = NewError(NotFound, "not found")
	ErrUnsupportedMediaType = NewError(UnsupportedMediaType, "unsupported media type")
	ErrInternalServerError  = NewError(InternalServerError, "internal server error")

	// server lifecycle signals travelling through the acceptor error channel
	ErrShutdown         = NewError(ServiceUnavailable, "shutting down")
	ErrGracefulShutdown = NewError(ServiceUnavailable, "graceful shutdown")
)
