package http

import (
	"net"

	json "github.com/json-iterator/go"
	"github.com/lumen-web/lumen/http/mime"
	"github.com/lumen-web/lumen/http/status"
	"github.com/lumen-web/lumen/kv"
)

type (
	Headers = *kv.Storage
	Params  = *kv.Storage
)

// Request represents a single inbound HTTP request. It is owned by the reader
// until the moment the handler is invoked, after which the handler owns it
// exclusively. The reader sets Valid before decoding the form payloads into
// Params; once the handler is invoked, the reader mutates no field anymore.
type Request struct {
	// Method is the raw method token. Any token is admitted, known or not.
	Method string
	// Resource is the path component of the request target, stored raw. No
	// percent-decoding is applied; see form.Unescape for an opt-in decoder.
	Resource string
	// RawQuery is the query component without the leading '?', stored raw.
	RawQuery string
	// VersionMajor and VersionMinor hold the protocol version digits,
	// accumulated base-10, so HTTP/12.34 parses fine.
	VersionMajor, VersionMinor int
	// Headers keeps every header line as its own pair, duplicates included,
	// in wire order. Lookup is case-insensitive.
	Headers Headers
	// Params holds the urlencoded parameters decoded from RawQuery and, for
	// form submissions, from the body. Values are stored raw.
	Params Params
	// ContentLength is the body length declared by the client, 0 if absent.
	ContentLength int
	// Body holds exactly ContentLength octets, nil when ContentLength is 0 or
	// when the request was rejected for a ContentLength above the body ceiling.
	Body []byte
	// Valid becomes true only after the whole request, headers and body, has
	// been ingested without an error.
	Valid bool
	// Remote is the peer address. Mind the proxies before trusting it.
	Remote net.Addr
}

func NewRequest(headers Headers, params Params, remote net.Addr) *Request {
	return &Request{
		Headers: headers,
		Params:  params,
		Remote:  remote,
	}
}

// ContentType returns the value of the Content-Type header, or an empty string.
func (r *Request) ContentType() string {
	return r.Headers.Value("Content-Type")
}

// Proto renders the protocol version as it appeared on the wire.
func (r *Request) Proto() string {
	return "HTTP/" + itoa(r.VersionMajor) + "." + itoa(r.VersionMinor)
}

// JSON unmarshalls the request body into the model. The request must carry an
// application/json Content-Type.
func (r *Request) JSON(model any) error {
	if !mime.Complies(mime.JSON, r.ContentType()) {
		return status.ErrUnsupportedMediaType
	}

	iterator := json.ConfigDefault.BorrowIterator(r.Body)
	iterator.ReadVal(model)
	err := iterator.Error
	json.ConfigDefault.ReturnIterator(iterator)

	return err
}

// Reset prepares the request object for the next ingestion round.
func (r *Request) Reset() {
	r.Method = ""
	r.Resource = ""
	r.RawQuery = ""
	r.VersionMajor, r.VersionMinor = 0, 0
	r.Headers.Clear()
	r.Params.Clear()
	r.ContentLength = 0
	r.Body = nil
	r.Valid = false
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}

	var buff [20]byte
	offset := len(buff)

	for n > 0 {
		offset--
		buff[offset] = byte('0' + n%10)
		n /= 10
	}

	return string(buff[offset:])
}
