package summary

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

const embeddedMarker = "json"

// EmbeddedError reports a malformed JSON blob in an issue title.
type EmbeddedError struct {
	Index int // index of the "...json" marker part
	Err   error
}

func (e *EmbeddedError) Error() string {
	return fmt.Sprintf("embedded json after part %d: %v", e.Index, e.Err)
}

func (e *EmbeddedError) Unwrap() error { return e.Err }

// ExtractEmbedded decodes the JSON blobs embedded in a title.
// The title is split on "="; a part ending in "json" marks the next part,
// minus its trailing character, as a JSON document.
// Example: `build=payload json={"a":1};` yields {"a":1}.
func ExtractEmbedded(title string) ([]any, error) {
	parts := strings.Split(title, "=")

	var out []any
	for i, part := range parts {
		if !strings.HasSuffix(part, embeddedMarker) {
			continue
		}
		if i+1 >= len(parts) {
			return nil, &EmbeddedError{Index: i, Err: fmt.Errorf("no value follows marker")}
		}
		next := parts[i+1]
		if next == "" {
			return nil, &EmbeddedError{Index: i, Err: fmt.Errorf("empty value")}
		}
		var v any
		if err := json.Unmarshal([]byte(next[:len(next)-1]), &v); err != nil {
			return nil, &EmbeddedError{Index: i, Err: err}
		}
		out = append(out, v)
	}
	return out, nil
}

// FormatEmbedded pretty-prints a decoded blob with sorted keys and four space indentation.
func FormatEmbedded(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
