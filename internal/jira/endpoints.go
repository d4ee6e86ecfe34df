package jira

import (
	"maps"
	"net/url"
)

// Endpoint is a logical API operation: a path relative to the API root plus query parameters.
type Endpoint struct {
	Path  string
	Query map[string]string
}

func endpoint(path string) Endpoint {
	return Endpoint{Path: path, Query: map[string]string{}}
}

// SpecificIssue fetches a single issue by key.
func SpecificIssue(key string) Endpoint {
	return endpoint("/issue/" + url.PathEscape(key))
}

// IssuePicker searches issues by free text.
func IssuePicker(query string) Endpoint {
	ep := endpoint("/issue/picker")
	ep.Query["query"] = query
	return ep
}

// DashboardSearch searches dashboards.
func DashboardSearch() Endpoint { return endpoint("/dashboard/search") }

// AllDashboards lists all dashboards.
func AllDashboards() Endpoint { return endpoint("/dashboard") }

// AllProjects lists projects using the paginated search endpoint.
func AllProjects() Endpoint { return endpoint("/project/search") }

// Project fetches a single project by id or key.
func Project(id string) Endpoint {
	return endpoint("/project/" + url.PathEscape(id))
}

// AllIssues runs an unfiltered issue search.
func AllIssues() Endpoint { return endpoint("/search") }

// SearchJQL runs an issue search; params (e.g. "jql", "maxResults") are passed verbatim.
func SearchJQL(params map[string]string) Endpoint {
	ep := endpoint("/search")
	maps.Copy(ep.Query, params)
	return ep
}

// AllFields lists all system and custom fields.
func AllFields() Endpoint { return endpoint("/field") }
