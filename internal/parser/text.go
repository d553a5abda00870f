package parser

import (
	"bufio"
	"io"
	"strings"

	"github.com/xcorail/redpen/internal/extractor"
	"github.com/xcorail/redpen/internal/model"
	"github.com/xcorail/redpen/internal/tokenizer"
)

// TextParser handles plain text. Blank lines separate paragraphs; the whole
// input becomes one headerless section.
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string, ex *extractor.SentenceExtractor, _ tokenizer.Tokenizer) (*model.Document, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	doc := &model.Document{FileName: filename}
	sec := model.NewSection(0, nil)
	doc.AppendSection(sec)

	var current strings.Builder
	startLine := 0
	lineNum := 0

	flush := func() {
		if current.Len() > 0 {
			appendParagraph(sec, current.String(), startLine, ex)
			current.Reset()
		}
	}

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		if current.Len() == 0 {
			startLine = lineNum
		} else {
			current.WriteString(" ")
		}
		current.WriteString(line)
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return doc, nil
}
