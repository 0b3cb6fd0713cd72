package auth

import (
	"net/http"
	"strings"
)

const bearerPrefix = "Bearer "

// BearerToken returns the Authorization header value with one leading
// "Bearer " removed. ok is false only when the header is absent; an empty
// or non-bearer value is returned as is.
func BearerToken(header http.Header) (token string, ok bool) {
	values := header.Values("Authorization")
	if len(values) == 0 {
		return "", false
	}

	return strings.TrimPrefix(values[0], bearerPrefix), true
}
