package jira

import (
	"crypto/tls"
	"net/http"
)

// newHTTPTransport returns a Transport based on the default one with optional TLS skipping.
// Dial and handshake timeouts stay at the library defaults.
func newHTTPTransport(skipInsecure bool) *http.Transport {
	tr := http.DefaultTransport.(*http.Transport).Clone()
	tr.Proxy = http.ProxyFromEnvironment
	tr.TLSClientConfig = &tls.Config{
		InsecureSkipVerify: skipInsecure, // NOTE: intended for dev only
	}
	return tr
}

// newHTTPClient builds an http.Client without a request timeout.
func newHTTPClient(skipInsecure bool) *http.Client {
	return &http.Client{Transport: newHTTPTransport(skipInsecure)}
}
