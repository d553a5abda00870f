package engine

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xcorail/redpen/internal/model"
	"github.com/xcorail/redpen/internal/parser"
	"github.com/xcorail/redpen/internal/tokenizer"
)

// Parse builds a document from r using the given parser, parametrized with
// the engine's sentence extractor and the configured language's tokenizer.
func (e *Engine) Parse(p parser.Parser, r io.Reader, filename string) (*model.Document, error) {
	return p.Parse(r, filename, e.ex, tokenizer.ForLang(e.conf.Lang))
}

// ParseString parses inline content with the parser for the given format
// ("plain", "markdown", ...).
func (e *Engine) ParseString(format, content, filename string) (*model.Document, error) {
	p, err := parser.ForFormat(format)
	if err != nil {
		return nil, err
	}
	return e.Parse(p, strings.NewReader(content), filename)
}

// ParseFiles parses each path with the parser matching its extension and
// collects the documents in argument order.
func (e *Engine) ParseFiles(paths []string) (*model.DocumentCollection, error) {
	var builder model.CollectionBuilder
	for _, path := range paths {
		p, err := parser.ForFile(path)
		if err != nil {
			return nil, err
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		doc, err := e.Parse(p, f, filepath.Base(path))
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		builder.AddDocument(doc)
	}
	return builder.Build(), nil
}
