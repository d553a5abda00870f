package sentence

import (
	"fmt"

	"github.com/xcorail/redpen/internal/config"
	"github.com/xcorail/redpen/internal/model"
	"github.com/xcorail/redpen/internal/tokenizer"
	"github.com/xcorail/redpen/internal/validator"
)

func init() {
	validator.RegisterSentenceRule("WordNumber", newWordNumber)
}

// wordNumber flags sentences with more than max_num words. It exposes the
// PreProcessor capability: tokenization happens once per sentence during the
// preprocessing pass and the token cache is read during validation.
type wordNumber struct {
	max int
	tok tokenizer.Tokenizer
}

func newWordNumber(cfg config.Rule, symbols *config.SymbolTable) (validator.Validator, error) {
	max := cfg.IntOption("max_num", 30)
	if max <= 0 {
		return nil, fmt.Errorf("max_num must be positive, got %d", max)
	}
	return &wordNumber{max: max, tok: tokenizer.ForLang(symbols.Lang())}, nil
}

func (v *wordNumber) Name() string { return "WordNumber" }

func (v *wordNumber) Target() validator.Target { return validator.TargetSentence }

func (v *wordNumber) Preprocess(s *model.Sentence) {
	s.Tokens = v.tok.Tokenize(s.Content)
}

func (v *wordNumber) ValidateSentence(s *model.Sentence) []validator.Error {
	if len(s.Tokens) <= v.max {
		return nil
	}
	return []validator.Error{{
		Rule:    v.Name(),
		Message: fmt.Sprintf("sentence contains %d words, exceeding the maximum of %d", len(s.Tokens), v.max),
		LineNum: s.LineNum,
	}}
}
