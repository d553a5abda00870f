// Package sentence holds the built-in sentence-level rules. Importing the
// package registers them in the sentence namespace of the rule registry.
package sentence

import (
	"fmt"
	"unicode/utf8"

	"github.com/xcorail/redpen/internal/config"
	"github.com/xcorail/redpen/internal/model"
	"github.com/xcorail/redpen/internal/validator"
)

func init() {
	validator.RegisterSentenceRule("SentenceLength", newSentenceLength)
}

// sentenceLength flags sentences longer than max_len characters.
type sentenceLength struct {
	max int
}

func newSentenceLength(cfg config.Rule, _ *config.SymbolTable) (validator.Validator, error) {
	max := cfg.IntOption("max_len", 50)
	if max <= 0 {
		return nil, fmt.Errorf("max_len must be positive, got %d", max)
	}
	return &sentenceLength{max: max}, nil
}

func (v *sentenceLength) Name() string { return "SentenceLength" }

func (v *sentenceLength) Target() validator.Target { return validator.TargetSentence }

func (v *sentenceLength) ValidateSentence(s *model.Sentence) []validator.Error {
	length := utf8.RuneCountInString(s.Content)
	if length <= v.max {
		return nil
	}
	return []validator.Error{{
		Rule:    v.Name(),
		Message: fmt.Sprintf("sentence length (%d) exceeds the maximum of %d", length, v.max),
		LineNum: s.LineNum,
	}}
}
