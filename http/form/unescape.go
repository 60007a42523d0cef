package form

import (
	"bytes"

	"github.com/lumen-web/lumen/http/status"
)

// Unescape decodes %xx escapes in src, appending into buff to avoid extra
// allocations. When src contains no escapes, it is returned as-is. Decode
// never calls this; callers opt in per field.
func Unescape(src, buff []byte) ([]byte, error) {
	for {
		percent := bytes.IndexByte(src, '%')
		if percent == -1 {
			if len(buff) == 0 {
				return src, nil
			}

			return append(buff, src...), nil
		}

		if len(src[percent+1:]) < 2 || !ishex(src[percent+1]) || !ishex(src[percent+2]) {
			return nil, status.ErrURLDecoding
		}

		buff = append(buff, src[:percent]...)
		buff = append(buff, unhex(src[percent+1])<<4|unhex(src[percent+2]))
		src = src[percent+3:]
	}
}

func ishex(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	}

	return false
}

func unhex(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}

	return 0
}
