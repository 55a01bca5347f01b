package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"html/template"
	"io"
	"path/filepath"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
)

// Kind selects the preview strategy for a file, derived from its name
// suffix alone.
type Kind int

const (
	// KindBinary serves raw bytes without decoding. It is the default
	// for unknown suffixes and for forced downloads.
	KindBinary Kind = iota
	// KindPlainText shows the decoded text content.
	KindPlainText
	// KindMarkdown shows the content converted to HTML.
	KindMarkdown
	// KindCSV shows the content as a table.
	KindCSV
)

// kindBySuffix maps file suffixes to their preview strategy. Lookup is
// case-sensitive; anything absent falls back to KindBinary.
var kindBySuffix = map[string]Kind{
	".txt":  KindPlainText,
	".css":  KindPlainText,
	".html": KindPlainText,
	".js":   KindPlainText,
	".rs":   KindPlainText,
	".py":   KindPlainText,
	".md":   KindMarkdown,
	".csv":  KindCSV,
}

// Classify determines how a file should be rendered from its name.
func Classify(filename string) Kind {
	if kind, ok := kindBySuffix[filepath.Ext(filename)]; ok {
		return kind
	}
	return KindBinary
}

// PreviewService converts file content into view payloads. The
// Markdown converter is configured once and shared; it is safe for
// concurrent use.
type PreviewService struct {
	markdown goldmark.Markdown
}

// NewPreviewService creates a PreviewService with a GFM-flavored
// Markdown converter. Fenced code blocks are highlighted with chroma
// classes.
func NewPreviewService() *PreviewService {
	return &PreviewService{
		markdown: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				highlighting.NewHighlighting(
					highlighting.WithFormatOptions(
						chromahtml.WithClasses(true),
					),
				),
			),
		),
	}
}

// RenderMarkdown converts Markdown source to HTML.
func (s *PreviewService) RenderMarkdown(source []byte) (template.HTML, error) {
	var buf bytes.Buffer
	if err := s.markdown.Convert(source, &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// ParseCSV splits text into lines and tokenizes each line on its own.
// Because the split happens before tokenization, a quoted field that
// contains an embedded newline is broken across two rows; callers rely
// on this matching the simple line-per-row display model.
func ParseCSV(text string) ([][]string, error) {
	lines := strings.Split(text, "\n")
	table := make([][]string, 0, len(lines))
	for _, line := range lines {
		reader := csv.NewReader(strings.NewReader(line))
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1
		record, err := reader.Read()
		if err == io.EOF {
			table = append(table, []string{})
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("tokenizing csv line: %w", err)
		}
		table = append(table, record)
	}
	return table, nil
}
