package jira

import (
	"encoding/json"
	"fmt"
)

// SearchResult represents the top-level structure from the JIRA search API
type SearchResult struct {
	Issues []Issue `json:"issues"`
}

// Issue represents a single issue in the search result
type Issue struct {
	ID     string  `json:"id"`
	Key    string  `json:"key"`
	Self   string  `json:"self"`
	Fields *Fields `json:"fields"` // nil when the response omits it

	present map[string]bool
}

// UnmarshalJSON decodes the issue and records which top-level keys were sent.
func (i *Issue) UnmarshalJSON(data []byte) error {
	type plain Issue
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*i = Issue(p)
	i.present = make(map[string]bool, len(raw))
	for k := range raw {
		i.present[k] = true
	}
	return nil
}

// Has reports whether the response contained the top-level key.
func (i *Issue) Has(key string) bool { return i.present[key] }

// Fields represents the inner fields of a JIRA issue.
// Raw keeps every field by id so custom fields can be looked up.
type Fields struct {
	Summary     string          `json:"summary"`
	Status      *Status         `json:"status"`
	Creator     *User           `json:"creator"`
	Assignee    *User           `json:"assignee"` // nullable
	Description json.RawMessage `json:"description"`

	Raw map[string]json.RawMessage `json:"-"`
}

// UnmarshalJSON decodes the known fields and keeps the raw map.
func (f *Fields) UnmarshalJSON(data []byte) error {
	type plain Fields
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*f = Fields(p)
	f.Raw = raw
	return nil
}

// Has reports whether the response contained the field, null or not.
func (f *Fields) Has(id string) bool {
	_, ok := f.Raw[id]
	return ok
}

// Value decodes a field as is. A JSON null yields nil.
// ok is false when the field is absent.
func (f *Fields) Value(id string) (v any, ok bool, err error) {
	raw, ok := f.Raw[id]
	if !ok {
		return nil, false, nil
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, true, fmt.Errorf("decode field %s: %w", id, err)
	}
	return v, true, nil
}

// Status represents the status field of the issue
type Status struct {
	Name string `json:"name"`
}

// User represents the creator or assignee of the issue
type User struct {
	DisplayName string `json:"displayName"`

	named bool
}

// UnmarshalJSON decodes the user and records whether displayName was sent.
func (u *User) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*u = User{}
	name, ok := raw["displayName"]
	if !ok {
		return nil
	}
	var s *string
	if err := json.Unmarshal(name, &s); err != nil {
		return err
	}
	if s != nil {
		u.DisplayName = *s
	}
	u.named = true
	return nil
}

// Named reports whether the response contained displayName.
func (u *User) Named() bool { return u.named }

// DecodeSearchResult decodes a search response body.
// A body that is not JSON, or has no "issues" array, is a *DecodeError.
func DecodeSearchResult(resp *Response) (SearchResult, error) {
	var envelope struct {
		Issues *[]Issue `json:"issues"`
	}
	if err := json.Unmarshal(resp.Body, &envelope); err != nil {
		return SearchResult{}, &DecodeError{URL: resp.URL, StatusCode: resp.StatusCode, Reason: "invalid json", Err: err}
	}
	if envelope.Issues == nil {
		return SearchResult{}, &DecodeError{URL: resp.URL, StatusCode: resp.StatusCode, Reason: `missing "issues"`}
	}
	return SearchResult{Issues: *envelope.Issues}, nil
}
