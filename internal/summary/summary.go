package summary

import (
	"fmt"

	"github.com/gi8lino/jirareport/internal/adf"
	"github.com/gi8lino/jirareport/internal/jira"
)

// Defaults used when Options leave a field empty.
const (
	DefaultClosedStatus  = "Closed"
	DefaultEstimateField = "customfield_10004" // story points
)

// Summary is the reduced view of one issue.
type Summary struct {
	Key         string  `json:"key"`
	Creator     string  `json:"creator"`
	Assignee    string  `json:"assignee"`
	Status      string  `json:"status"`
	Summary     string  `json:"summary"`
	URL         string  `json:"url"`
	StoryPoints any     `json:"storypoints"` // estimate as sent, null included
	Description *string `json:"description,omitempty"`
	Embedded    []any   `json:"embedded,omitempty"`
}

// Options tune the projection.
type Options struct {
	ClosedStatus       string // issues in this status are skipped
	EstimateField      string // custom field id holding the estimate
	IncludeDescription bool   // render the description as plain lines
	ExpandEmbedded     bool   // decode JSON blobs embedded in the title
}

// SchemaError reports an issue missing a key the projection needs.
type SchemaError struct {
	Key   string // issue key, may be empty
	Index int    // position in the issues array
	Path  string // JSON path of the missing value
	Err   error  // optional cause
}

func (e *SchemaError) Error() string {
	msg := fmt.Sprintf("issue %d (%s): %s", e.Index, e.Key, e.Path)
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg + ": missing"
}

func (e *SchemaError) Unwrap() error { return e.Err }

// Summarize projects every issue not in the closed status into a Summary, keeping input order.
func Summarize(res jira.SearchResult, opts Options) ([]Summary, error) {
	closed := opts.ClosedStatus
	if closed == "" {
		closed = DefaultClosedStatus
	}
	estimate := opts.EstimateField
	if estimate == "" {
		estimate = DefaultEstimateField
	}

	out := make([]Summary, 0, len(res.Issues))
	for i, issue := range res.Issues {
		f := issue.Fields
		if f == nil {
			return nil, &SchemaError{Key: issue.Key, Index: i, Path: "fields"}
		}
		if f.Status == nil {
			return nil, &SchemaError{Key: issue.Key, Index: i, Path: "fields.status"}
		}
		if f.Status.Name == closed {
			continue
		}
		if path := missing(&issue); path != "" {
			return nil, &SchemaError{Key: issue.Key, Index: i, Path: path}
		}

		s := Summary{
			Key:     issue.Key,
			Creator: f.Creator.DisplayName,
			Status:  f.Status.Name,
			Summary: f.Summary,
			URL:     issue.Self,
		}
		if f.Assignee != nil {
			s.Assignee = f.Assignee.DisplayName
		}

		points, ok, err := f.Value(estimate)
		switch {
		case !ok:
			return nil, &SchemaError{Key: issue.Key, Index: i, Path: "fields." + estimate}
		case err != nil:
			return nil, &SchemaError{Key: issue.Key, Index: i, Path: "fields." + estimate, Err: err}
		}
		s.StoryPoints = points

		if opts.IncludeDescription {
			desc, err := describe(f)
			if err != nil {
				return nil, &SchemaError{Key: issue.Key, Index: i, Path: "fields.description", Err: err}
			}
			s.Description = &desc
		}

		if opts.ExpandEmbedded {
			blobs, err := ExtractEmbedded(f.Summary)
			if err != nil {
				return nil, &SchemaError{Key: issue.Key, Index: i, Path: "fields.summary", Err: err}
			}
			s.Embedded = blobs
		}

		out = append(out, s)
	}
	return out, nil
}

// missing returns the path of the first required key the issue lacks.
func missing(issue *jira.Issue) string {
	f := issue.Fields
	switch {
	case !issue.Has("key"):
		return "key"
	case !issue.Has("self"):
		return "self"
	case !f.Has("summary"):
		return "fields.summary"
	case f.Creator == nil:
		return "fields.creator"
	case !f.Creator.Named():
		return "fields.creator.displayName"
	}
	return ""
}

// describe flattens the issue description into newline separated lines.
func describe(f *jira.Fields) (string, error) {
	doc, err := adf.Parse(f.Description)
	if err != nil {
		return "", err
	}
	return adf.Join(doc)
}
