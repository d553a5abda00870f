package section

import (
	"fmt"
	"unicode/utf8"

	"github.com/xcorail/redpen/internal/config"
	"github.com/xcorail/redpen/internal/model"
	"github.com/xcorail/redpen/internal/validator"
)

func init() {
	validator.RegisterSectionRule("HeaderLength", newHeaderLength)
}

// headerLength flags section headings longer than max_num characters.
type headerLength struct {
	max int
}

func newHeaderLength(cfg config.Rule, _ *config.SymbolTable) (validator.Validator, error) {
	max := cfg.IntOption("max_num", 10)
	if max <= 0 {
		return nil, fmt.Errorf("max_num must be positive, got %d", max)
	}
	return &headerLength{max: max}, nil
}

func (v *headerLength) Name() string { return "HeaderLength" }

func (v *headerLength) Target() validator.Target { return validator.TargetSection }

func (v *headerLength) ValidateSection(s *model.Section) []validator.Error {
	length := 0
	for _, sent := range s.HeaderContents {
		length += utf8.RuneCountInString(sent.Content)
	}
	if length <= v.max {
		return nil
	}
	return []validator.Error{{
		Rule:    v.Name(),
		Message: fmt.Sprintf("header length (%d) exceeds the maximum of %d", length, v.max),
		LineNum: headerLine(s),
	}}
}
