package parser

import "github.com/lumen-web/lumen/http"

// RequestState is the outcome of feeding a portion of the byte stream to a
// request parser. Exactly one of the three arms is reported per call.
type RequestState uint8

const (
	// Pending means the whole input was consumed and more bytes are needed.
	Pending RequestState = iota + 1
	// HeadersCompleted means the header terminator was consumed; the bytes the
	// parser didn't take are handed back as extra and belong to the body.
	HeadersCompleted
	// Error means a grammar or size-ceiling violation. The request must be
	// treated as invalid.
	Error
)

func (s RequestState) String() string {
	switch s {
	case Pending:
		return "Pending"
	case HeadersCompleted:
		return "HeadersCompleted"
	case Error:
		return "Error"
	default:
		return "unknown"
	}
}

// Parser is a resumable request-headers parser. It fills the request object
// it was bound to by pointer; internal state persists across Parse calls
// until Release is called.
type Parser interface {
	Parse(data []byte) (state RequestState, extra []byte, err error)
	Bind(request *http.Request)
	Release()
}
