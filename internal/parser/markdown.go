package parser

import (
	"bytes"
	"io"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/xcorail/redpen/internal/extractor"
	"github.com/xcorail/redpen/internal/model"
	"github.com/xcorail/redpen/internal/tokenizer"
)

// MarkdownParser handles Markdown using goldmark. Headings open sections,
// lists become list blocks, everything else becomes paragraphs.
type MarkdownParser struct{}

func (p *MarkdownParser) Parse(r io.Reader, filename string, ex *extractor.SentenceExtractor, _ tokenizer.Tokenizer) (*model.Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	reader := text.NewReader(src)
	root := md.Parser().Parse(reader)

	starts := lineStarts(src)
	doc := &model.Document{FileName: filename}

	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			title := string(node.Text(src))
			line := lineOf(starts, firstOffset(node))
			header := ex.Extract(title, line)
			doc.AppendSection(model.NewSection(node.Level, header))

		case *ast.List:
			block := &model.ListBlock{}
			for item := node.FirstChild(); item != nil; item = item.NextSibling() {
				itemText := extractText(item, src)
				if itemText == "" {
					continue
				}
				line := lineOf(starts, firstOffset(item))
				el := &model.ListElement{Level: 1}
				el.Sentences = ex.Extract(strings.Join(strings.Fields(itemText), " "), line)
				block.AppendElement(el)
			}
			if len(block.Elements) > 0 {
				currentSection(doc).AppendListBlock(block)
			}

		default:
			t := extractText(n, src)
			if t != "" {
				line := lineOf(starts, firstOffset(n))
				appendParagraph(currentSection(doc), t, line, ex)
			}
		}
	}

	if len(doc.Sections) == 0 {
		doc.AppendSection(model.NewSection(0, nil))
	}
	return doc, nil
}

// extractText gets the text content of a goldmark AST node. A block that
// carries source lines yields those directly; otherwise the children are
// collected, so list items pick up the text of their nested blocks.
func extractText(n ast.Node, src []byte) string {
	if t, ok := n.(*ast.Text); ok {
		return string(t.Value(src))
	}
	if n.Type() == ast.TypeBlock && n.Lines().Len() > 0 {
		var buf bytes.Buffer
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			buf.Write(seg.Value(src))
		}
		return strings.TrimSpace(buf.String())
	}
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t := extractText(c, src); t != "" {
			if buf.Len() > 0 {
				buf.WriteByte(' ')
			}
			buf.WriteString(t)
		}
	}
	return strings.TrimSpace(buf.String())
}

// firstOffset returns the byte offset of the node's first source line, or -1.
func firstOffset(n ast.Node) int {
	if n.Type() == ast.TypeBlock && n.Lines().Len() > 0 {
		return n.Lines().At(0).Start
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if off := firstOffset(c); off >= 0 {
			return off
		}
	}
	return -1
}

// lineStarts returns the byte offset of each line start in src.
func lineStarts(src []byte) []int {
	starts := []int{0}
	for i, b := range src {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// lineOf maps a byte offset to a 1-based line number; unknown offsets map to 0.
func lineOf(starts []int, offset int) int {
	if offset < 0 {
		return 0
	}
	return sort.Search(len(starts), func(i int) bool { return starts[i] > offset })
}
