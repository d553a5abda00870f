// Package extractor derives sentence boundary symbols from a symbol table
// and splits raw text into sentences for the document parsers.
package extractor

import (
	"strings"

	"github.com/xcorail/redpen/internal/config"
	"github.com/xcorail/redpen/internal/model"
)

var periodKeys = []string{config.FullStop, config.QuestionMark, config.ExclamationMark}

var quotationKeys = []string{config.RightSingleQuotationMark, config.RightDoubleQuotationMark}

// SentenceExtractor knows which symbols terminate a sentence and which
// closing quotations may trail a terminator. It is built once per run and
// immutable afterwards.
type SentenceExtractor struct {
	periods         []string
	rightQuotations []string
}

// New resolves the boundary symbols from the table, substituting the
// language default for any key the table does not define.
func New(symbols *config.SymbolTable) *SentenceExtractor {
	e := &SentenceExtractor{}
	for _, key := range periodKeys {
		e.periods = append(e.periods, symbols.Value(key))
	}
	for _, key := range quotationKeys {
		e.rightQuotations = append(e.rightQuotations, symbols.Value(key))
	}
	return e
}

// Periods returns the sentence-terminating symbols, in key order.
func (e *SentenceExtractor) Periods() []string {
	return e.periods
}

// RightQuotations returns the closing quotation symbols, in key order.
func (e *SentenceExtractor) RightQuotations() []string {
	return e.rightQuotations
}

// Extract splits text into sentences. A sentence ends at a terminator
// symbol, extended past a closing quotation that immediately follows it.
// A trailing fragment without a terminator becomes a final sentence.
func (e *SentenceExtractor) Extract(text string, lineNum int) []*model.Sentence {
	var sentences []*model.Sentence
	rest := text
	for rest != "" {
		end := e.endPosition(rest)
		if end < 0 {
			if strings.TrimSpace(rest) != "" {
				sentences = append(sentences, model.NewSentence(strings.TrimLeft(rest, " "), lineNum))
			}
			break
		}
		content := strings.TrimLeft(rest[:end], " ")
		sentences = append(sentences, model.NewSentence(content, lineNum))
		rest = rest[end:]
	}
	return sentences
}

// endPosition returns the byte offset just past the first sentence end in s,
// or -1 when s contains no terminator.
func (e *SentenceExtractor) endPosition(s string) int {
	idx := -1
	width := 0
	for _, p := range e.periods {
		if p == "" {
			continue
		}
		if i := strings.Index(s, p); i >= 0 && (idx < 0 || i < idx) {
			idx = i
			width = len(p)
		}
	}
	if idx < 0 {
		return -1
	}
	end := idx + width
	for _, q := range e.rightQuotations {
		if q != "" && strings.HasPrefix(s[end:], q) {
			end += len(q)
			break
		}
	}
	return end
}
