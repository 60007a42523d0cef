package mime

import "github.com/indigo-web/utils/strcomp"

type MIME = string

const (
	Plain      MIME = "text/plain"
	HTML       MIME = "text/html"
	JSON       MIME = "application/json"
	URLEncoded MIME = "application/x-www-form-urlencoded"
)

// Complies reports whether the actual Content-Type value matches the wanted
// media type, ignoring case and any parameters after a semicolon.
func Complies(wanted MIME, actual string) bool {
	for i := 0; i < len(actual); i++ {
		if actual[i] == ';' {
			actual = actual[:i]
			break
		}
	}

	return strcomp.EqualFold(wanted, actual)
}
