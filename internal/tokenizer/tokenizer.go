// Package tokenizer splits sentence text into word tokens.
package tokenizer

import (
	"strings"
	"unicode"
)

// Tokenizer splits a sentence into tokens.
type Tokenizer interface {
	Tokenize(text string) []string
}

// ForLang returns the tokenizer for a configuration language. Languages
// written without word separators tokenize per character.
func ForLang(lang string) Tokenizer {
	switch lang {
	case "ja", "zh":
		return &CharacterTokenizer{}
	default:
		return &WhiteSpaceTokenizer{}
	}
}

// WhiteSpaceTokenizer splits on whitespace and strips surrounding punctuation.
type WhiteSpaceTokenizer struct{}

func (t *WhiteSpaceTokenizer) Tokenize(text string) []string {
	fields := strings.FieldsFunc(text, unicode.IsSpace)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimFunc(f, unicode.IsPunct)
		if f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// CharacterTokenizer emits one token per non-space rune.
type CharacterTokenizer struct{}

func (t *CharacterTokenizer) Tokenize(text string) []string {
	var tokens []string
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		tokens = append(tokens, string(r))
	}
	return tokens
}
