package section

import (
	"fmt"

	"github.com/xcorail/redpen/internal/config"
	"github.com/xcorail/redpen/internal/model"
	"github.com/xcorail/redpen/internal/validator"
)

func init() {
	validator.RegisterSectionRule("ParagraphNumber", newParagraphNumber)
}

// paragraphNumber flags sections with more than max_num paragraphs.
type paragraphNumber struct {
	max int
}

func newParagraphNumber(cfg config.Rule, _ *config.SymbolTable) (validator.Validator, error) {
	max := cfg.IntOption("max_num", 5)
	if max <= 0 {
		return nil, fmt.Errorf("max_num must be positive, got %d", max)
	}
	return &paragraphNumber{max: max}, nil
}

func (v *paragraphNumber) Name() string { return "ParagraphNumber" }

func (v *paragraphNumber) Target() validator.Target { return validator.TargetSection }

func (v *paragraphNumber) ValidateSection(s *model.Section) []validator.Error {
	if len(s.Paragraphs) <= v.max {
		return nil
	}
	return []validator.Error{{
		Rule:    v.Name(),
		Message: fmt.Sprintf("section has %d paragraphs, exceeding the maximum of %d", len(s.Paragraphs), v.max),
		LineNum: headerLine(s),
	}}
}
