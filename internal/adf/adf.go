package adf

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"
	"strconv"
	"strings"
)

// Node types understood by the flattener.
const (
	TypeDoc         = "doc"
	TypeParagraph   = "paragraph"
	TypeText        = "text"
	TypeBulletList  = "bulletList"
	TypeOrderedList = "orderedList"
	TypeListItem    = "listItem"
)

// Node is a single Atlassian Document Format node.
type Node struct {
	Type    string         `json:"type"`
	Text    *string        `json:"text,omitempty"` // only set on text nodes
	Attrs   map[string]any `json:"attrs,omitempty"`
	Content []Node         `json:"content,omitempty"`
}

// SchemaError reports a node that does not have the shape the flattener expects.
type SchemaError struct {
	Path   string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("adf schema violation at %s: %s", e.Path, e.Reason)
}

// Parse decodes a description payload. A missing or null payload yields a nil document.
func Parse(raw json.RawMessage) (*Node, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	var doc Node
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, fmt.Errorf("decode description: %w", err)
	}
	return &doc, nil
}

// Flatten renders a document into plain lines, one per paragraph or list item.
// A nil document yields a single empty line.
func Flatten(doc *Node) ([]string, error) {
	if doc == nil {
		return []string{""}, nil
	}

	lines := make([]string, 0, len(doc.Content))
	for i, block := range doc.Content {
		path := "content[" + strconv.Itoa(i) + "]"

		switch block.Type {
		case TypeParagraph:
			line, err := renderParagraph(block, path)
			if err != nil {
				return nil, err
			}
			lines = append(lines, line)

		case TypeBulletList:
			for j, item := range block.Content {
				line, err := renderItem(item, path+".content["+strconv.Itoa(j)+"]")
				if err != nil {
					return nil, err
				}
				lines = append(lines, "- "+line)
			}

		case TypeOrderedList:
			for j, item := range block.Content {
				line, err := renderItem(item, path+".content["+strconv.Itoa(j)+"]")
				if err != nil {
					return nil, err
				}
				lines = append(lines, strconv.Itoa(j+1)+". "+line)
			}
		}
	}
	return lines, nil
}

// Lines returns a restartable iterator over the flattened lines.
// A schema violation is yielded once as a *SchemaError with an empty line, then iteration ends.
func Lines(doc *Node) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		lines, err := Flatten(doc)
		if err != nil {
			yield("", err)
			return
		}
		for _, l := range lines {
			if !yield(l, nil) {
				return
			}
		}
	}
}

// Join flattens the document and joins the lines with newlines.
func Join(doc *Node) (string, error) {
	lines, err := Flatten(doc)
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

// renderItem renders the first child of a list item, which must be a paragraph.
func renderItem(item Node, path string) (string, error) {
	if len(item.Content) == 0 {
		return "", &SchemaError{Path: path, Reason: "list item has no content"}
	}
	first := item.Content[0]
	if first.Type != TypeParagraph {
		return "", &SchemaError{Path: path + ".content[0]", Reason: fmt.Sprintf("expected paragraph, got %q", first.Type)}
	}
	return renderParagraph(first, path+".content[0]")
}

// renderParagraph space-joins the values of the direct text children.
func renderParagraph(p Node, path string) (string, error) {
	parts := make([]string, 0, len(p.Content))
	for i, inline := range p.Content {
		if inline.Type != TypeText {
			continue
		}
		if inline.Text == nil {
			return "", &SchemaError{Path: path + ".content[" + strconv.Itoa(i) + "]", Reason: "text node without value"}
		}
		parts = append(parts, *inline.Text)
	}
	return strings.Join(parts, " "), nil
}
