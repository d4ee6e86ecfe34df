package jira

import (
	"fmt"
	"net/http"
	"strings"
)

// AuthFunc applies authentication to an outgoing request.
type AuthFunc func(r *http.Request)

// NewBasicAuth returns an AuthFunc using basic auth with the account name and API token.
func NewBasicAuth(username, token string) AuthFunc {
	username = strings.TrimSpace(username)
	token = strings.TrimSpace(token)
	return func(r *http.Request) {
		r.SetBasicAuth(username, token)
	}
}

// NewBearerAuth returns an AuthFunc setting a bearer token.
func NewBearerAuth(token string) AuthFunc {
	token = strings.TrimSpace(token)
	return func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+token)
	}
}

// ResolveAuth returns the appropriate AuthFunc based on provided credentials.
// A bearer token wins over username + API token.
func ResolveAuth(bearerToken, username, token string) (auth AuthFunc, method string, err error) {
	switch {
	case strings.TrimSpace(bearerToken) != "":
		return NewBearerAuth(bearerToken), "Bearer", nil
	case strings.TrimSpace(username) != "" && strings.TrimSpace(token) != "":
		return NewBasicAuth(username, token), "Basic", nil
	default:
		return nil, "", fmt.Errorf("no valid auth method configured: must provide either bearer token or username+api token")
	}
}
