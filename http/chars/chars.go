// Package chars provides single-octet character-class predicates over the
// HTTP/1.x grammar.
package chars

// IsChar reports whether c is a 7-bit US-ASCII octet.
func IsChar(c byte) bool {
	return c <= 127
}

// IsControl reports whether c is a control octet (0-31 or DEL).
func IsControl(c byte) bool {
	return c <= 31 || c == 127
}

// IsDigit reports whether c is a decimal digit.
func IsDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// IsSpecial reports whether c belongs to the HTTP separator set.
func IsSpecial(c byte) bool {
	switch c {
	case '(', ')', '<', '>', '@', ',', ';', ':', '\\', '"', '/',
		'[', ']', '?', '=', '{', '}', ' ', '\t':
		return true
	default:
		return false
	}
}

// IsToken reports whether c may appear in a token, such as a request method
// or a header name.
func IsToken(c byte) bool {
	return IsChar(c) && !IsControl(c) && !IsSpecial(c)
}
