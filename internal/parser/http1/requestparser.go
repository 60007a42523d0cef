package http1

import (
	"github.com/indigo-web/utils/arena"
	"github.com/indigo-web/utils/uf"
	"github.com/lumen-web/lumen/config"
	"github.com/lumen-web/lumen/http"
	"github.com/lumen-web/lumen/http/chars"
	"github.com/lumen-web/lumen/http/status"
	"github.com/lumen-web/lumen/internal/parser"
)

// Parser is a pull-driven, byte-at-a-time request-headers parser. It fills the
// bound request object by pointer and survives arbitrary splits of the input:
// feeding a request whole or octet-by-octet commits the exact same fields.
//
// Line termination is permissive: CRLF, bare LF, bare CR and LFCR
// are all accepted. Two CRs (or two LFs) in a row terminate the request, the
// assumption being the client uses a single CR (LF) per line.
type Parser struct {
	request     *http.Request
	method      *arena.Arena[byte]
	resource    *arena.Arena[byte]
	query       *arena.Arena[byte]
	headerName  *arena.Arena[byte]
	headerValue *arena.Arena[byte]
	headerKey   string
	cfg         *config.Config
	state       parserState
}

func New(request *http.Request, cfg *config.Config) *Parser {
	return &Parser{
		request:     request,
		method:      arena.NewArena[byte](64, cfg.StartLine.MaxMethodLength),
		resource:    arena.NewArena[byte](512, cfg.StartLine.MaxResourceLength),
		query:       arena.NewArena[byte](512, cfg.StartLine.MaxQueryLength),
		headerName:  arena.NewArena[byte](64, cfg.Headers.MaxNameLength),
		headerValue: arena.NewArena[byte](512, cfg.Headers.MaxValueLength),
		cfg:         cfg,
		state:       eMethodStart,
	}
}

// Parse consumes the given octets. Pending means all of data was taken and
// more is required. HeadersCompleted means the header terminator was consumed;
// extra holds the remaining octets, which belong to the body. Error reports a
// grammar or ceiling violation. The parser keeps no record of the failure:
// feeding it again without Release resumes from the state the offending octet
// was met in.
func (p *Parser) Parse(data []byte) (state parser.RequestState, extra []byte, err error) {
	request := p.request

	for i := 0; i < len(data); i++ {
		c := data[i]

		switch p.state {
		case eMethodStart:
			if !chars.IsToken(c) {
				return parser.Error, nil, status.ErrBadRequest
			}

			p.method.Append(c)
			p.state = eMethod
		case eMethod:
			switch {
			case c == ' ':
				request.Method = uf.B2S(p.method.Finish())
				p.state = eURIStem
			case !chars.IsToken(c):
				return parser.Error, nil, status.ErrBadRequest
			case p.method.SegmentLength() >= p.cfg.StartLine.MaxMethodLength:
				return parser.Error, nil, status.ErrMethodTooLong
			default:
				p.method.Append(c)
			}
		case eURIStem:
			switch {
			case c == ' ':
				request.Resource = uf.B2S(p.resource.Finish())
				p.state = eVersionH
			case c == '?':
				request.Resource = uf.B2S(p.resource.Finish())
				p.state = eURIQuery
			case chars.IsControl(c):
				return parser.Error, nil, status.ErrBadRequest
			case p.resource.SegmentLength() >= p.cfg.StartLine.MaxResourceLength:
				return parser.Error, nil, status.ErrURITooLong
			default:
				p.resource.Append(c)
			}
		case eURIQuery:
			switch {
			case c == ' ':
				request.RawQuery = uf.B2S(p.query.Finish())
				p.state = eVersionH
			case chars.IsControl(c):
				return parser.Error, nil, status.ErrBadRequest
			case p.query.SegmentLength() >= p.cfg.StartLine.MaxQueryLength:
				return parser.Error, nil, status.ErrQueryTooLong
			default:
				p.query.Append(c)
			}
		case eVersionH:
			if c != 'H' {
				return parser.Error, nil, status.ErrBadVersion
			}

			p.state = eVersionT1
		case eVersionT1:
			if c != 'T' {
				return parser.Error, nil, status.ErrBadVersion
			}

			p.state = eVersionT2
		case eVersionT2:
			if c != 'T' {
				return parser.Error, nil, status.ErrBadVersion
			}

			p.state = eVersionP
		case eVersionP:
			if c != 'P' {
				return parser.Error, nil, status.ErrBadVersion
			}

			p.state = eVersionSlash
		case eVersionSlash:
			if c != '/' {
				return parser.Error, nil, status.ErrBadVersion
			}

			p.state = eVersionMajorStart
		case eVersionMajorStart:
			if !chars.IsDigit(c) {
				return parser.Error, nil, status.ErrBadVersion
			}

			request.VersionMajor = int(c - '0')
			p.state = eVersionMajor
		case eVersionMajor:
			switch {
			case c == '.':
				p.state = eVersionMinorStart
			case chars.IsDigit(c):
				request.VersionMajor = request.VersionMajor*10 + int(c-'0')
			default:
				return parser.Error, nil, status.ErrBadVersion
			}
		case eVersionMinorStart:
			if !chars.IsDigit(c) {
				return parser.Error, nil, status.ErrBadVersion
			}

			request.VersionMinor = int(c - '0')
			p.state = eVersionMinor
		case eVersionMinor:
			switch {
			case c == '\r':
				p.state = eExpectingLF
			case c == '\n':
				p.state = eExpectingCR
			case chars.IsDigit(c):
				request.VersionMinor = request.VersionMinor*10 + int(c-'0')
			default:
				return parser.Error, nil, status.ErrBadVersion
			}
		case eExpectingLF:
			switch {
			case c == '\n':
				p.state = eHeaderStart
			case c == '\r':
				// a lone CR terminates lines here, so a second one ends the request
				return parser.HeadersCompleted, data[i+1:], nil
			case c == '\t' || c == ' ':
				p.state = eHeaderWhitespace
			case chars.IsToken(c):
				p.headerName.Append(c)
				p.state = eHeaderName
			default:
				return parser.Error, nil, status.ErrBadHeader
			}
		case eExpectingCR:
			switch {
			case c == '\r':
				p.state = eHeaderStart
			case c == '\n':
				return parser.HeadersCompleted, data[i+1:], nil
			case c == '\t' || c == ' ':
				p.state = eHeaderWhitespace
			case chars.IsToken(c):
				p.headerName.Append(c)
				p.state = eHeaderName
			default:
				return parser.Error, nil, status.ErrBadHeader
			}
		case eHeaderWhitespace:
			switch {
			case c == '\r':
				p.state = eExpectingLF
			case c == '\n':
				p.state = eExpectingCR
			case c == '\t' || c == ' ':
			case chars.IsToken(c):
				p.headerName.Append(c)
				p.state = eHeaderName
			default:
				return parser.Error, nil, status.ErrBadHeader
			}
		case eHeaderStart:
			switch {
			case c == '\r':
				p.state = eExpectingFinalLF
			case c == '\n':
				p.state = eExpectingFinalCR
			case c == '\t' || c == ' ':
				p.state = eHeaderWhitespace
			case chars.IsToken(c):
				p.headerName.Append(c)
				p.state = eHeaderName
			default:
				return parser.Error, nil, status.ErrBadHeader
			}
		case eHeaderName:
			switch {
			case c == ':':
				p.headerKey = string(p.headerName.Finish())
				p.headerName.Clear()
				p.state = eSpaceBeforeHeaderValue
			case !chars.IsToken(c):
				return parser.Error, nil, status.ErrBadHeader
			case p.headerName.SegmentLength() >= p.cfg.Headers.MaxNameLength:
				return parser.Error, nil, status.ErrHeaderFieldsTooLarge
			default:
				p.headerName.Append(c)
			}
		case eSpaceBeforeHeaderValue:
			switch {
			case c == ' ':
				p.state = eHeaderValue
			case c == '\r':
				p.commitHeader()
				p.state = eExpectingLF
			case c == '\n':
				p.commitHeader()
				p.state = eExpectingCR
			case !chars.IsToken(c):
				return parser.Error, nil, status.ErrBadHeader
			default:
				p.headerValue.Append(c)
				p.state = eHeaderValue
			}
		case eHeaderValue:
			switch {
			case c == '\r':
				p.commitHeader()
				p.state = eExpectingLF
			case c == '\n':
				p.commitHeader()
				p.state = eExpectingCR
			case chars.IsControl(c):
				return parser.Error, nil, status.ErrBadHeader
			case p.headerValue.SegmentLength() >= p.cfg.Headers.MaxValueLength:
				return parser.Error, nil, status.ErrHeaderFieldsTooLarge
			default:
				p.headerValue.Append(c)
			}
		case eExpectingFinalLF:
			if c == '\n' {
				return parser.HeadersCompleted, data[i+1:], nil
			}

			// the closing LF never arrived; the octet is left for the body
			return parser.HeadersCompleted, data[i:], nil
		case eExpectingFinalCR:
			if c == '\r' {
				return parser.HeadersCompleted, data[i+1:], nil
			}

			return parser.HeadersCompleted, data[i:], nil
		}
	}

	return parser.Pending, nil, nil
}

// Bind replaces the request object the parser fills.
func (p *Parser) Bind(request *http.Request) {
	p.request = request
}

// Release resets the parser for the next request. Strings committed to the
// previous request keep pointing into the arenas, so the previous request must
// not be used past this point.
func (p *Parser) Release() {
	p.method.Clear()
	p.resource.Clear()
	p.query.Clear()
	p.headerName.Clear()
	p.headerValue.Clear()
	p.headerKey = ""
	p.state = eMethodStart
}

func (p *Parser) commitHeader() {
	p.request.Headers.Add(p.headerKey, string(p.headerValue.Finish()))
	p.headerValue.Clear()
	p.headerKey = ""
}
