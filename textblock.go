// Package textblock renders plain text into fixed-width rectangular blocks
// for terminal display.
//
// A Block wraps its content to the available width, aligns every line to
// the left or right edge and surrounds the result with padding. Columns
// places blocks side by side with a margin between them; one column may be
// fluid and take whatever width the others leave. Both render to a slice of
// rows that all have the same display width, ready to be printed one per
// line.
//
// Example:
//
//	left, _ := textblock.NewBlock(sentence, textblock.WithWidth(40))
//	right, _ := textblock.NewBlock(paragraph)
//	layout, err := textblock.NewColumns(
//	    []textblock.Renderable{left, right},
//	    textblock.WithMargin(6),
//	    textblock.WithPaddingTop(3),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = textblock.RenderTo(os.Stdout, layout, 120)
//
// Layouts can also be described in YAML and loaded with ParseDocument or
// LoadDocumentFS.
package textblock

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/ryanlewis/textblock/internal/parser"
)

// Document is a block tree loaded from a YAML layout document.
type Document struct {
	// Name is the document file name without extension, if loaded from a file.
	Name string

	// Root is the top-level block or layout.
	Root Renderable

	// Warnings lists non-fatal issues found while parsing.
	Warnings []string
}

// Render renders the document root.
func (d *Document) Render(width int, opts ...RenderOption) ([]string, error) {
	if d == nil || d.Root == nil {
		return nil, fmt.Errorf("%w: document has no root", ErrBadDocument)
	}
	return d.Root.Render(width, opts...)
}

// ParseDocument reads a YAML layout document from r and builds its block
// tree. The returned tree is immutable and safe for concurrent rendering.
//
// Example:
//
//	doc, err := textblock.ParseDocument(strings.NewReader(`
//	marginX: 2
//	blocks:
//	  - width: 10
//	    content: fixed
//	  - content: fluid
//	`))
func ParseDocument(r io.Reader) (*Document, error) {
	pd, err := parser.Parse(r)
	if err != nil {
		return nil, err
	}
	return convertDocument(pd)
}

// ParseDocumentBytes is ParseDocument for a document held in memory.
func ParseDocumentBytes(data []byte) (*Document, error) {
	pd, err := parser.ParseBytes(data)
	if err != nil {
		return nil, err
	}
	return convertDocument(pd)
}

// cleanFSPath validates and cleans a path for use with fs.FS.
// It ensures the path is valid according to fs.ValidPath rules and
// prevents directory traversal.
func cleanFSPath(p string) (string, error) {
	if p == "" {
		return "", errors.New("path cannot be empty")
	}
	if strings.HasPrefix(p, "/") {
		return "", errors.New("absolute paths not allowed")
	}
	if strings.ContainsRune(p, '\\') {
		return "", errors.New("backslashes not allowed in fs paths")
	}
	if !fs.ValidPath(p) {
		return "", fmt.Errorf("invalid fs path: %s", p)
	}
	clean := path.Clean(p)
	if clean == "." || strings.HasPrefix(clean, "../") {
		return "", errors.New("path traversal not allowed")
	}
	return clean, nil
}

// LoadDocumentFS loads a layout document from a filesystem at docPath.
// Path traversal (e.g., "../") is rejected.
//
// Example with embed.FS:
//
//	//go:embed layouts/*.yaml
//	var layouts embed.FS
//
//	doc, err := textblock.LoadDocumentFS(layouts, "layouts/dashboard.yaml")
func LoadDocumentFS(fsys fs.FS, docPath string) (*Document, error) {
	if fsys == nil {
		return nil, errors.New("filesystem cannot be nil")
	}

	clean, err := cleanFSPath(docPath)
	if err != nil {
		return nil, err
	}

	file, err := fsys.Open(clean)
	if err != nil {
		return nil, fmt.Errorf("failed to open document: %w", err)
	}
	defer file.Close()

	doc, err := ParseDocument(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document %s: %w", clean, err)
	}
	doc.Name = strings.TrimSuffix(path.Base(clean), path.Ext(clean))
	return doc, nil
}

// LoadDocument loads a layout document from a path on the local filesystem.
func LoadDocument(filePath string) (*Document, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open document: %w", err)
	}
	defer file.Close()

	doc, err := ParseDocument(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document %s: %w", filePath, err)
	}
	doc.Name = strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	return doc, nil
}

func convertDocument(pd *parser.Document) (*Document, error) {
	root, err := convertNode(pd.Root)
	if err != nil {
		return nil, err
	}
	return &Document{
		Root:     root,
		Warnings: append([]string(nil), pd.Warnings...),
	}, nil
}

// convertNode builds a Block or Columns from a parsed node.
func convertNode(n *parser.Node) (Renderable, error) {
	opts, err := nodeOptions(n)
	if err != nil {
		return nil, err
	}

	if !n.IsLayout {
		b, err := NewBlock(n.Content, opts...)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrBadDocument, n.Line, err)
		}
		return b, nil
	}

	children := make([]Renderable, 0, len(n.Blocks))
	for _, child := range n.Blocks {
		r, err := convertNode(child)
		if err != nil {
			return nil, err
		}
		children = append(children, r)
	}

	if n.MarginX != nil {
		opts = append(opts, WithMargin(*n.MarginX))
	}
	c, err := NewColumns(children, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: line %d: %w", ErrBadDocument, n.Line, err)
	}
	return c, nil
}

func nodeOptions(n *parser.Node) ([]Option, error) {
	var opts []Option
	if n.Width != nil {
		opts = append(opts, WithWidth(*n.Width))
	}
	if n.Height != nil {
		opts = append(opts, WithHeight(*n.Height))
	}
	if n.PaddingLeft != nil {
		opts = append(opts, WithPaddingLeft(*n.PaddingLeft))
	}
	if n.PaddingRight != nil {
		opts = append(opts, WithPaddingRight(*n.PaddingRight))
	}
	if n.PaddingTop != nil {
		opts = append(opts, WithPaddingTop(*n.PaddingTop))
	}
	if n.PaddingBottom != nil {
		opts = append(opts, WithPaddingBottom(*n.PaddingBottom))
	}
	if n.TextAlign != "" {
		a, err := ParseAlign(n.TextAlign)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrBadDocument, n.Line, err)
		}
		opts = append(opts, WithAlign(a))
	}
	return opts, nil
}
