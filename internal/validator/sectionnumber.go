package validator

import (
	"fmt"

	"github.com/xcorail/redpen/internal/config"
	"github.com/xcorail/redpen/internal/model"
)

func init() {
	RegisterCoreRule("SectionNumber", newSectionNumber)
}

// sectionNumber is a document-level rule limiting the number of sections.
type sectionNumber struct {
	max int
}

func newSectionNumber(cfg config.Rule, _ *config.SymbolTable) (Validator, error) {
	max := cfg.IntOption("max_num", 15)
	if max <= 0 {
		return nil, fmt.Errorf("max_num must be positive, got %d", max)
	}
	return &sectionNumber{max: max}, nil
}

func (v *sectionNumber) Name() string { return "SectionNumber" }

func (v *sectionNumber) Target() Target { return TargetDocument }

func (v *sectionNumber) ValidateDocument(d *model.Document) []Error {
	if len(d.Sections) <= v.max {
		return nil
	}
	return []Error{{
		Rule:    v.Name(),
		Message: fmt.Sprintf("document has %d sections, exceeding the maximum of %d", len(d.Sections), v.max),
	}}
}
