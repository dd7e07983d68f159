// Package parser implements parsing of YAML layout documents.
//
// A document describes a tree of blocks using the option names of the
// public API:
//
//	marginX: 2
//	paddingTop: 1
//	blocks:
//	  - width: 40
//	    textAlign: right
//	    content: |
//	      Lorem ipsum dolor sit amet.
//	  - content: The fluid column takes the rest.
//
// A node with a blocks key is a multi-column layout; any other node is a
// plain block.
package parser

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// maxDocumentSize bounds how much input Parse will read.
	maxDocumentSize = 4 * 1024 * 1024

	// maxDepth bounds nesting of layouts inside layouts.
	maxDepth = 32
)

// ErrBadDocument is returned for any malformed layout document.
var ErrBadDocument = errors.New("bad layout document")

// knownKeys are the keys a node mapping may contain.
var knownKeys = map[string]bool{
	"content":       true,
	"width":         true,
	"height":        true,
	"paddingLeft":   true,
	"paddingRight":  true,
	"paddingTop":    true,
	"paddingBottom": true,
	"textAlign":     true,
	"marginX":       true,
	"blocks":        true,
}

// Node is one block of a parsed layout document. Optional numbers are nil
// when the key is absent.
type Node struct {
	Content       string  `yaml:"content"`
	Width         *int    `yaml:"width"`
	Height        *int    `yaml:"height"`
	PaddingLeft   *int    `yaml:"paddingLeft"`
	PaddingRight  *int    `yaml:"paddingRight"`
	PaddingTop    *int    `yaml:"paddingTop"`
	PaddingBottom *int    `yaml:"paddingBottom"`
	TextAlign     string  `yaml:"textAlign"`
	MarginX       *int    `yaml:"marginX"`
	Blocks        []*Node `yaml:"blocks"`

	// IsLayout is true when the node has a blocks key, even an empty one.
	IsLayout bool `yaml:"-"`

	// Line and Column locate the node in the source document.
	Line   int `yaml:"-"`
	Column int `yaml:"-"`
}

// Fluid reports whether the node leaves its width to its parent.
func (n *Node) Fluid() bool {
	return n.Width == nil
}

// Document is a parsed layout document.
type Document struct {
	Root *Node

	// Warnings contains non-fatal issues, such as a block whose padding
	// leaves no room for content.
	Warnings []string
}

// UnmarshalYAML decodes a node and records its position. Unknown keys are
// rejected so that typos such as "padingTop" do not pass silently.
func (n *Node) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: line %d: block must be a mapping", ErrBadDocument, value.Line)
	}

	isLayout := false
	for i := 0; i+1 < len(value.Content); i += 2 {
		key := value.Content[i]
		if !knownKeys[key.Value] {
			return fmt.Errorf("%w: line %d: unknown key %q", ErrBadDocument, key.Line, key.Value)
		}
		if key.Value == "blocks" {
			isLayout = true
		}
	}

	// plain has the same fields without the UnmarshalYAML method.
	type plain Node
	if err := value.Decode((*plain)(n)); err != nil {
		if errors.Is(err, ErrBadDocument) {
			return err
		}
		return fmt.Errorf("%w: line %d: %v", ErrBadDocument, value.Line, err)
	}
	n.IsLayout = isLayout
	n.Line = value.Line
	n.Column = value.Column
	return nil
}

// Parse reads a layout document from r and validates it.
func Parse(r io.Reader) (*Document, error) {
	buf := acquireReadBuffer()
	defer releaseReadBuffer(buf)

	if _, err := buf.ReadFrom(io.LimitReader(r, maxDocumentSize+1)); err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	if buf.Len() > maxDocumentSize {
		return nil, fmt.Errorf("%w: document exceeds %d bytes", ErrBadDocument, maxDocumentSize)
	}
	return ParseBytes(buf.Bytes())
}

// ParseBytes parses and validates a layout document held in memory.
func ParseBytes(data []byte) (*Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrBadDocument)
	}

	var root Node
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&root); err != nil {
		if errors.Is(err, ErrBadDocument) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}

	doc := &Document{Root: &root}
	if err := validate(doc, &root, 0); err != nil {
		return nil, err
	}
	return doc, nil
}

// validate checks the invariants the renderer relies on.
func validate(doc *Document, n *Node, depth int) error {
	if depth > maxDepth {
		return fmt.Errorf("%w: line %d: layouts nested deeper than %d", ErrBadDocument, n.Line, maxDepth)
	}

	numbers := []struct {
		key string
		val *int
	}{
		{"width", n.Width},
		{"height", n.Height},
		{"paddingLeft", n.PaddingLeft},
		{"paddingRight", n.PaddingRight},
		{"paddingTop", n.PaddingTop},
		{"paddingBottom", n.PaddingBottom},
		{"marginX", n.MarginX},
	}
	for _, num := range numbers {
		if num.val != nil && *num.val < 0 {
			return fmt.Errorf("%w: line %d: %s must not be negative, got %d", ErrBadDocument, n.Line, num.key, *num.val)
		}
	}

	switch strings.ToLower(strings.TrimSpace(n.TextAlign)) {
	case "", "left", "right":
	default:
		return fmt.Errorf("%w: line %d: unsupported textAlign %q", ErrBadDocument, n.Line, n.TextAlign)
	}

	if n.Width != nil {
		horizontal := value(n.PaddingLeft) + value(n.PaddingRight)
		if *n.Width <= horizontal {
			doc.Warnings = append(doc.Warnings, fmt.Sprintf(
				"line %d: width %d leaves no room for content after %d columns of padding",
				n.Line, *n.Width, horizontal))
		}
	}

	if !n.IsLayout {
		if n.MarginX != nil {
			return fmt.Errorf("%w: line %d: marginX requires blocks", ErrBadDocument, n.Line)
		}
		return nil
	}

	if strings.TrimSpace(n.Content) != "" {
		return fmt.Errorf("%w: line %d: a layout with blocks cannot have content", ErrBadDocument, n.Line)
	}

	fluid := 0
	for i, child := range n.Blocks {
		if child == nil {
			return fmt.Errorf("%w: line %d: block %d is empty", ErrBadDocument, n.Line, i)
		}
		if child.Fluid() {
			fluid++
		}
		if fluid > 1 {
			return fmt.Errorf("%w: line %d: only one block may be fluid width", ErrBadDocument, child.Line)
		}
		if err := validate(doc, child, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func value(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
