// Command generate-goldens renders the layout documents in testdata/layouts
// and writes the results as golden files for golden_test.go.
package main

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-runewidth"
	"github.com/ryanlewis/textblock"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// GoldenMetadata represents the YAML front matter in golden files.
// This should match the struct in golden_test.go
type GoldenMetadata struct {
	Layout         string `yaml:"layout"`
	Width          int    `yaml:"width"`
	Rows           int    `yaml:"rows"`
	RowWidth       int    `yaml:"row_width"`
	Generated      string `yaml:"generated"`
	Generator      string `yaml:"generator"`
	ChecksumSHA256 string `yaml:"checksum_sha256"`
}

var (
	layoutDir = pflag.String("layouts", "testdata/layouts", "Directory of layout documents")
	outDir    = pflag.String("out", "testdata/goldens", "Output directory")
	widths    = pflag.IntSlice("widths", []int{24, 40}, "Available widths to render each layout at")
	strict    = pflag.Bool("strict", false, "Exit on any warning")
)

func main() {
	pflag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "generate-goldens"})

	docs, err := filepath.Glob(filepath.Join(*layoutDir, "*.yaml"))
	if err != nil {
		logger.Fatal("failed to list layouts", "dir", *layoutDir, "err", err)
	}
	if len(docs) == 0 {
		logger.Fatal("no layout documents found", "dir", *layoutDir)
	}

	for _, docPath := range docs {
		doc, err := textblock.LoadDocument(docPath)
		if err != nil {
			if *strict {
				logger.Fatal("failed to load layout", "path", docPath, "err", err)
			}
			logger.Warn("skipping layout", "path", docPath, "err", err)
			continue
		}
		for _, w := range doc.Warnings {
			logger.Warn(w, "layout", doc.Name)
		}

		dir := filepath.Join(*outDir, doc.Name)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logger.Fatal("failed to create directory", "dir", dir, "err", err)
		}

		for _, width := range *widths {
			if err := generateGoldenFile(doc, width, dir); err != nil {
				if *strict {
					logger.Fatal("failed to generate golden file", "err", err)
				}
				logger.Warn("failed to generate golden file", "err", err)
				continue
			}
			logger.Info("generated", "layout", doc.Name, "width", width)
		}
	}

	logger.Info("golden file generation complete")
}

func generateGoldenFile(doc *textblock.Document, width int, dir string) error {
	rows, err := doc.Render(width)
	if err != nil {
		return fmt.Errorf("failed to render %s at width %d: %w", doc.Name, width, err)
	}

	rowWidth := 0
	if len(rows) > 0 {
		rowWidth = runewidth.StringWidth(rows[0])
	}

	metadata := GoldenMetadata{
		Layout:         doc.Name,
		Width:          width,
		Rows:           len(rows),
		RowWidth:       rowWidth,
		Generated:      time.Now().UTC().Format("2006-01-02"),
		Generator:      "generate-goldens",
		ChecksumSHA256: calculateChecksum(strings.Join(rows, "\n")),
	}

	yamlData, err := yaml.Marshal(&metadata)
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}

	// Rows are fenced with '|' so trailing spaces survive editors.
	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(yamlData)
	buf.WriteString("---\n\n")
	buf.WriteString("```text\n")
	for _, row := range rows {
		buf.WriteString("|" + row + "|\n")
	}
	buf.WriteString("```\n")

	outFile := filepath.Join(dir, fmt.Sprintf("w%d.md", width))
	if err := os.WriteFile(outFile, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("failed to write file %s: %w", outFile, err)
	}
	return nil
}

func calculateChecksum(data string) string {
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}
