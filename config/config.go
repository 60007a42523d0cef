package config

import "time"

type (
	// StartLine bounds the three request-line fields. Each ceiling is enforced
	// while the field is being accumulated, so a violator is rejected at the
	// first octet past the limit.
	StartLine struct {
		// MaxMethodLength limits the method token.
		MaxMethodLength int
		// MaxResourceLength limits the path component of the request target.
		MaxResourceLength int
		// MaxQueryLength limits the raw query string, the leading '?' excluded.
		MaxQueryLength int
	}

	Headers struct {
		// MaxNameLength limits a single header name.
		MaxNameLength int
		// MaxValueLength limits a single header value.
		MaxValueLength int
		// NumberPrealloc is the initial capacity of the headers storage.
		NumberPrealloc int
	}

	Form struct {
		// MaxNameLength limits a single urlencoded parameter name.
		MaxNameLength int
		// MaxValueLength limits a single urlencoded parameter value.
		MaxValueLength int
		// EntriesPrealloc is the initial capacity of the params storage.
		EntriesPrealloc int
	}

	Body struct {
		// MaxSize caps the Content-Length a client may declare. Requests
		// advertising more are handed to the handler as invalid.
		MaxSize int
	}

	NET struct {
		// ReadBufferSize is the size of the per-connection socket read buffer.
		ReadBufferSize int
		// ReadTimeout closes connections which stay silent for too long.
		ReadTimeout time.Duration
	}
)

// Config holds the restrictions and pre-allocations used across the library.
//
// Always modify the values returned by Default() instead of constructing the
// struct manually, otherwise zero ceilings will reject everything.
type Config struct {
	StartLine StartLine
	Headers   Headers
	Form      Form
	Body      Body
	NET       NET
}

// Default returns the default configuration. Lowering the ceilings is always
// safe; raising them trades memory for permissiveness.
func Default() *Config {
	return &Config{
		StartLine: StartLine{
			MaxMethodLength:   1024,
			MaxResourceLength: 256 * 1024,
			MaxQueryLength:    1024 * 1024,
		},
		Headers: Headers{
			MaxNameLength:  1024,
			MaxValueLength: 1024 * 1024,
			NumberPrealloc: 10,
		},
		Form: Form{
			MaxNameLength:   1024,
			MaxValueLength:  1024 * 1024,
			EntriesPrealloc: 8,
		},
		Body: Body{
			MaxSize: 1024 * 1024,
		},
		NET: NET{
			ReadBufferSize: 8 * 1024,
			ReadTimeout:    90 * time.Second,
		},
	}
}
