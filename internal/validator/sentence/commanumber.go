package sentence

import (
	"fmt"
	"strings"

	"github.com/xcorail/redpen/internal/config"
	"github.com/xcorail/redpen/internal/model"
	"github.com/xcorail/redpen/internal/validator"
)

func init() {
	validator.RegisterSentenceRule("CommaNumber", newCommaNumber)
}

// commaNumber flags sentences with more than max_num comma symbols. The
// comma symbol comes from the symbol table, so the rule works for languages
// with a different comma character.
type commaNumber struct {
	max   int
	comma string
}

func newCommaNumber(cfg config.Rule, symbols *config.SymbolTable) (validator.Validator, error) {
	max := cfg.IntOption("max_num", 3)
	if max <= 0 {
		return nil, fmt.Errorf("max_num must be positive, got %d", max)
	}
	return &commaNumber{max: max, comma: symbols.Value(config.Comma)}, nil
}

func (v *commaNumber) Name() string { return "CommaNumber" }

func (v *commaNumber) Target() validator.Target { return validator.TargetSentence }

func (v *commaNumber) ValidateSentence(s *model.Sentence) []validator.Error {
	count := strings.Count(s.Content, v.comma)
	if count <= v.max {
		return nil
	}
	return []validator.Error{{
		Rule:    v.Name(),
		Message: fmt.Sprintf("sentence contains %d commas, exceeding the maximum of %d", count, v.max),
		LineNum: s.LineNum,
	}}
}
