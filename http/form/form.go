// Package form decodes application/x-www-form-urlencoded payloads, as found
// in URI query strings and form submission bodies.
package form

import (
	"github.com/lumen-web/lumen/config"
	"github.com/lumen-web/lumen/http/chars"
	"github.com/lumen-web/lumen/http/status"
	"github.com/lumen-web/lumen/kv"
)

type decodeState uint8

const (
	eName decodeState = iota + 1
	eValue
)

// Decode runs a one-pass validation of '&'-separated name=value pairs and
// inserts them into the storage. Values are stored raw: neither
// percent-decoding nor '+'-to-space substitution is applied; see Unescape.
//
// On failure the pairs committed before the offending octet stay in the
// storage, and the caller decides whether to keep them.
func Decode(data []byte, into *kv.Storage, cfg config.Form) error {
	var (
		state = eName
		name  []byte
		value []byte
	)

	for _, c := range data {
		switch state {
		case eName:
			switch {
			case c == '=':
				if len(name) == 0 {
					return status.ErrBadParams
				}

				state = eValue
			case c == '&':
				if len(name) == 0 {
					return status.ErrBadParams
				}

				into.Add(string(name), "")
				name = name[:0]
			case chars.IsControl(c) || len(name) >= cfg.MaxNameLength:
				return status.ErrBadParams
			default:
				name = append(name, c)
			}
		case eValue:
			switch {
			case c == '&':
				into.Add(string(name), string(value))
				name, value = name[:0], value[:0]
				state = eName
			case chars.IsControl(c) || len(value) >= cfg.MaxValueLength:
				return status.ErrBadParams
			default:
				value = append(value, c)
			}
		}
	}

	if len(name) > 0 {
		into.Add(string(name), string(value))
	}

	return nil
}

// Encode serializes the storage back into '&'-separated name=value pairs, in
// insertion order. Pairs are written as-is, so a storage filled by Decode
// produces the payload it was decoded from, modulo an '=' after bare names.
func Encode(storage *kv.Storage) []byte {
	pairs := storage.Unwrap()
	if len(pairs) == 0 {
		return nil
	}

	size := 0
	for _, pair := range pairs {
		size += len(pair.Key) + len(pair.Value) + 2
	}

	buff := make([]byte, 0, size)
	for i, pair := range pairs {
		if i > 0 {
			buff = append(buff, '&')
		}

		buff = append(buff, pair.Key...)
		buff = append(buff, '=')
		buff = append(buff, pair.Value...)
	}

	return buff
}
