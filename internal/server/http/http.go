package http

import (
	"log"

	"github.com/indigo-web/utils/uf"
	"github.com/lumen-web/lumen/config"
	"github.com/lumen-web/lumen/http"
	"github.com/lumen-web/lumen/http/chars"
	"github.com/lumen-web/lumen/http/form"
	"github.com/lumen-web/lumen/http/mime"
	"github.com/lumen-web/lumen/http/status"
	"github.com/lumen-web/lumen/internal/parser"
	"github.com/lumen-web/lumen/transport"
)

// Handler consumes a fully read request. It is invoked exactly once per
// request, for malformed requests too; req.Valid tells the cases apart.
// Transport failures never reach the handler.
type Handler func(req *http.Request, client transport.Client)

// Reader drives a single request through the parser: it pumps octets off the
// client until the headers terminate, fills the body according to
// Content-Length, decodes the form payloads and hands the request over.
type Reader struct {
	cfg     *config.Config
	handler Handler
}

func NewReader(cfg *config.Config, handler Handler) *Reader {
	return &Reader{
		cfg:     cfg,
		handler: handler,
	}
}

// Run reads one request off the client and closes the connection afterwards.
func (r *Reader) Run(client transport.Client, req *http.Request, p parser.Parser) {
	defer func() {
		_ = client.Close()
	}()

	for {
		data, err := client.Read()
		if err != nil {
			log.Printf("lumen: %s: closing: %s", remote(req), err)
			return
		}

		state, extra, err := p.Parse(data)
		switch state {
		case parser.Pending:
		case parser.HeadersCompleted:
			r.complete(client, req, extra)
			return
		case parser.Error:
			log.Printf("lumen: %s: malformed request: %s", remote(req), err)
			req.Valid = false
			r.handler(req, client)
			return
		}
	}
}

// complete runs the tail of the request lifecycle: body fill from the
// residual octets plus however many reads it takes, then query and form
// decoding, then the handler.
func (r *Reader) complete(client transport.Client, req *http.Request, extra []byte) {
	req.ContentLength = contentLength(req.Headers)

	if req.ContentLength > r.cfg.Body.MaxSize {
		log.Printf("lumen: %s: %s", remote(req), status.ErrBodyTooLarge)
		req.Valid = false
		r.handler(req, client)
		return
	}

	if req.ContentLength > 0 {
		body := make([]byte, req.ContentLength)
		n := copy(body, extra)

		if err := client.ReadFull(body[n:]); err != nil {
			log.Printf("lumen: %s: closing: %s", remote(req), err)
			return
		}

		req.Body = body
	}
	// residual octets past the content length are dropped along with the
	// connection

	req.Valid = true

	if len(req.RawQuery) > 0 {
		if err := form.Decode(uf.S2B(req.RawQuery), req.Params, r.cfg.Form); err != nil {
			log.Printf("lumen: %s: malformed query: %s", remote(req), err)
		}
	}

	if len(req.Body) > 0 && mime.Complies(mime.URLEncoded, req.ContentType()) {
		if err := form.Decode(req.Body, req.Params, r.cfg.Form); err != nil {
			log.Printf("lumen: %s: malformed form body: %s", remote(req), err)
		}
	}

	r.handler(req, client)
}

// contentLength reads the Content-Length header the way strtoul would: leading
// spaces skipped, digits accumulated until the first non-digit. An absent or
// non-numeric header yields zero.
func contentLength(headers http.Headers) int {
	value, found := headers.Get("Content-Length")
	if !found {
		return 0
	}

	var length, i int

	for ; i < len(value) && value[i] == ' '; i++ {
	}

	for ; i < len(value) && chars.IsDigit(value[i]); i++ {
		length = length*10 + int(value[i]-'0')
	}

	return length
}

func remote(req *http.Request) string {
	if req.Remote == nil {
		return "<unknown>"
	}

	return req.Remote.String()
}
