package sentence

import (
	"fmt"
	"unicode"

	"github.com/xcorail/redpen/internal/config"
	"github.com/xcorail/redpen/internal/model"
	"github.com/xcorail/redpen/internal/validator"
)

func init() {
	validator.RegisterSentenceRule("StartWithCapitalLetter", newStartWithCapital)
}

// startWithCapital flags sentences whose first letter is lowercase.
// Sentences starting with digits or symbols are left alone.
type startWithCapital struct{}

func newStartWithCapital(_ config.Rule, _ *config.SymbolTable) (validator.Validator, error) {
	return &startWithCapital{}, nil
}

func (v *startWithCapital) Name() string { return "StartWithCapitalLetter" }

func (v *startWithCapital) Target() validator.Target { return validator.TargetSentence }

func (v *startWithCapital) ValidateSentence(s *model.Sentence) []validator.Error {
	for _, r := range s.Content {
		if unicode.IsSpace(r) {
			continue
		}
		if unicode.IsLetter(r) && unicode.IsLower(r) {
			return []validator.Error{{
				Rule:    v.Name(),
				Message: fmt.Sprintf("sentence starts with lowercase letter %q", string(r)),
				LineNum: s.LineNum,
			}}
		}
		break
	}
	return nil
}
