package redact

import (
	"net/http"
	"strings"

	"github.com/gi8lino/jirareport/internal/jira"
)

// Header masks an Authorization header value, keeping the scheme and
// the first and last two characters of the credential.
// Example: "Basic dZ*********X1" or "Bearer ab******yz"
func Header(value string) string {
	if value == "" {
		return ""
	}

	scheme, cred, ok := strings.Cut(value, " ")
	if !ok {
		return "[invalid header]"
	}
	cred = strings.TrimSpace(cred)

	n := len(cred)
	if n <= 4 {
		return scheme + " " + strings.Repeat("*", n)
	}
	return scheme + " " + cred[:2] + strings.Repeat("*", n-4) + cred[n-2:]
}

// AuthHeader returns the Authorization header the AuthFunc would send.
func AuthHeader(auth jira.AuthFunc) string {
	req, _ := http.NewRequest(http.MethodGet, "https://example.invalid", nil)
	auth(req)
	return req.Header.Get("Authorization")
}
