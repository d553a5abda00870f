// Package parser converts raw input into the document model, splitting text
// into sentences with the extractor the engine derives from its symbol table.
package parser

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xcorail/redpen/internal/extractor"
	"github.com/xcorail/redpen/internal/model"
	"github.com/xcorail/redpen/internal/tokenizer"
)

// Parser converts one source into a Document.
type Parser interface {
	Parse(r io.Reader, filename string, ex *extractor.SentenceExtractor, tok tokenizer.Tokenizer) (*model.Document, error)
}

// SupportedExtensions lists file extensions this tool can handle.
var SupportedExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
	".pdf":      true,
	".docx":     true,
}

// ForFile returns the parser for a filename, by extension.
func ForFile(filename string) (Parser, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt":
		return &TextParser{}, nil
	case ".md", ".markdown":
		return &MarkdownParser{}, nil
	case ".html", ".htm":
		return &HTMLParser{}, nil
	case ".pdf":
		return &PDFParser{}, nil
	case ".docx":
		return &DOCXParser{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// ForFormat returns the parser for a format name, as used by the HTTP API.
func ForFormat(format string) (Parser, error) {
	switch strings.ToLower(format) {
	case "", "plain", "text":
		return &TextParser{}, nil
	case "markdown", "md":
		return &MarkdownParser{}, nil
	case "html":
		return &HTMLParser{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// appendParagraph splits text into sentences and appends them as one
// paragraph of the section. Lines of a source paragraph are joined with a
// space before splitting, so sentences may span lines; every sentence keeps
// the paragraph's starting line as its position.
func appendParagraph(sec *model.Section, text string, lineNum int, ex *extractor.SentenceExtractor) {
	text = strings.Join(strings.Fields(text), " ")
	sentences := ex.Extract(text, lineNum)
	if len(sentences) == 0 {
		return
	}
	sentences[0].IsFirstSentence = true
	p := &model.Paragraph{}
	for _, s := range sentences {
		p.AppendSentence(s)
	}
	sec.AppendParagraph(p)
}

// currentSection returns the document's last section, creating a synthetic
// headerless one for content appearing before any heading.
func currentSection(doc *model.Document) *model.Section {
	if sec := doc.LastSection(); sec != nil {
		return sec
	}
	sec := model.NewSection(0, nil)
	doc.AppendSection(sec)
	return sec
}
