package jira

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
)

// apiSuffix matches a REST API root such as "/rest/api/2".
var apiSuffix = regexp.MustCompile(`/rest/api/\d+/?$`)

// Client handles communication with the Jira REST API.
type Client struct {
	APIURL *url.URL     // Base API URL (must include /rest/api/X)
	Client *http.Client // Underlying HTTP client
	auth   AuthFunc
}

// Response is the unprocessed result of a single GET.
type Response struct {
	URL        string // fully resolved request URL, including the query
	StatusCode int
	Body       []byte
}

// Err returns an *APIError when the status code is not 2xx.
func (r *Response) Err() error {
	if r.StatusCode >= 200 && r.StatusCode < 300 {
		return nil
	}
	return &APIError{URL: r.URL, StatusCode: r.StatusCode, Body: string(trim(r.Body, 512))}
}

// NewClient returns a Jira client with the given base URL and authentication function.
func NewClient(apiURL *url.URL, auth AuthFunc, skipVerify bool) *Client {
	return &Client{
		APIURL: apiURL,
		Client: newHTTPClient(skipVerify),
		auth:   auth,
	}
}

// BaseURL builds the REST API root for a site.
// A bare domain "acme" becomes https://acme.atlassian.net/rest/api/2; an absolute URL
// is used as the site root and gets /rest/api/2 appended unless it already names an API version.
func BaseURL(domain string) (*url.URL, error) {
	domain = strings.TrimSpace(domain)
	if domain == "" {
		return nil, fmt.Errorf("missing domain")
	}

	raw := "https://" + domain + ".atlassian.net/rest/api/2"
	if strings.Contains(domain, "://") {
		raw = strings.TrimRight(domain, "/")
		if !apiSuffix.MatchString(raw) {
			raw += "/rest/api/2"
		}
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid domain %q: missing host", domain)
	}
	return u, nil
}

// Get performs an authenticated GET for the endpoint.
// Non-2xx responses are returned as-is; call Response.Err to turn them into an error.
func (c *Client) Get(ctx context.Context, ep Endpoint) (*Response, error) {
	u := c.resolve(ep)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	if c.auth != nil {
		c.auth(req) // apply authentication
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close() // nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	return &Response{
		URL:        u.String(),
		StatusCode: resp.StatusCode,
		Body:       body,
	}, nil
}

// resolve appends the endpoint path to the API root and merges the query.
func (c *Client) resolve(ep Endpoint) *url.URL {
	u := c.APIURL.JoinPath(ep.Path)
	mergeQuery(u, ep.Query)
	return u
}

// mergeQuery merges kv into u.Query() and updates u.RawQuery.
// Empty keys are ignored; values are passed verbatim, empty ones included.
func mergeQuery(u *url.URL, kv map[string]string) {
	if u == nil || len(kv) == 0 {
		return
	}
	q := u.Query()
	for k, v := range kv {
		if k != "" {
			q.Set(k, v)
		}
	}
	u.RawQuery = q.Encode() // Encode sorts by key
}

// GetSpecificIssue fetches one issue by key.
func (c *Client) GetSpecificIssue(ctx context.Context, key string) (*Response, error) {
	return c.Get(ctx, SpecificIssue(key))
}

// SearchIssue runs the issue picker with a free-text query.
func (c *Client) SearchIssue(ctx context.Context, query string) (*Response, error) {
	return c.Get(ctx, IssuePicker(query))
}

// SearchDashboards searches dashboards.
func (c *Client) SearchDashboards(ctx context.Context) (*Response, error) {
	return c.Get(ctx, DashboardSearch())
}

// AllDashboards lists all dashboards.
func (c *Client) AllDashboards(ctx context.Context) (*Response, error) {
	return c.Get(ctx, AllDashboards())
}

// AllProjects lists projects.
func (c *Client) AllProjects(ctx context.Context) (*Response, error) {
	return c.Get(ctx, AllProjects())
}

// GetProject fetches one project by id or key.
func (c *Client) GetProject(ctx context.Context, id string) (*Response, error) {
	return c.Get(ctx, Project(id))
}

// AllIssues runs an unfiltered issue search.
func (c *Client) AllIssues(ctx context.Context) (*Response, error) {
	return c.Get(ctx, AllIssues())
}

// SearchJQL runs an issue search with params passed verbatim as query parameters.
func (c *Client) SearchJQL(ctx context.Context, params map[string]string) (*Response, error) {
	return c.Get(ctx, SearchJQL(params))
}

// AllFields lists all fields.
func (c *Client) AllFields(ctx context.Context) (*Response, error) {
	return c.Get(ctx, AllFields())
}

// trim returns at most n bytes from b.
func trim(b []byte, n int) []byte {
	if len(b) <= n {
		return b
	}
	return b[:n]
}
