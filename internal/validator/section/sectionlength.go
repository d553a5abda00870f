// Package section holds the built-in section-level rules. Importing the
// package registers them in the section namespace of the rule registry.
package section

import (
	"fmt"
	"unicode/utf8"

	"github.com/xcorail/redpen/internal/config"
	"github.com/xcorail/redpen/internal/model"
	"github.com/xcorail/redpen/internal/validator"
)

func init() {
	validator.RegisterSectionRule("SectionLength", newSectionLength)
}

// sectionLength flags sections whose paragraph text exceeds max_num characters.
type sectionLength struct {
	max int
}

func newSectionLength(cfg config.Rule, _ *config.SymbolTable) (validator.Validator, error) {
	max := cfg.IntOption("max_num", 1000)
	if max <= 0 {
		return nil, fmt.Errorf("max_num must be positive, got %d", max)
	}
	return &sectionLength{max: max}, nil
}

func (v *sectionLength) Name() string { return "SectionLength" }

func (v *sectionLength) Target() validator.Target { return validator.TargetSection }

func (v *sectionLength) ValidateSection(s *model.Section) []validator.Error {
	length := 0
	for _, p := range s.Paragraphs {
		for _, sent := range p.Sentences {
			length += utf8.RuneCountInString(sent.Content)
		}
	}
	if length <= v.max {
		return nil
	}
	return []validator.Error{{
		Rule:    v.Name(),
		Message: fmt.Sprintf("section length (%d) exceeds the maximum of %d", length, v.max),
		LineNum: headerLine(s),
	}}
}

// headerLine returns the line of the section heading, or 0 for a synthetic
// section without one.
func headerLine(s *model.Section) int {
	if len(s.HeaderContents) > 0 {
		return s.HeaderContents[0].LineNum
	}
	return 0
}
