// Package validator defines the rule contract and the registry that
// resolves configured rule names into runnable validator instances.
package validator

import (
	"fmt"

	"github.com/xcorail/redpen/internal/model"
)

// Target is the entity granularity a validator operates on. Every validator
// declares exactly one target; the engine routes it by this declaration.
type Target int

const (
	TargetDocument Target = iota
	TargetSection
	TargetSentence
)

func (t Target) String() string {
	switch t {
	case TargetDocument:
		return "document"
	case TargetSection:
		return "section"
	case TargetSentence:
		return "sentence"
	}
	return fmt.Sprintf("target(%d)", int(t))
}

// Error is a finding: a detected issue in the text. It is a returned value,
// never propagated as a Go error.
type Error struct {
	Rule    string
	Message string
	LineNum int
}

func (e Error) String() string {
	return fmt.Sprintf("%s: %s (line %d)", e.Rule, e.Message, e.LineNum)
}

// Validator is the base rule contract. Concrete rules additionally implement
// the Validate method of the interface matching their declared target.
type Validator interface {
	Name() string
	Target() Target
}

// DocumentValidator checks a whole document.
type DocumentValidator interface {
	Validator
	ValidateDocument(d *model.Document) []Error
}

// SectionValidator checks one section.
type SectionValidator interface {
	Validator
	ValidateSection(s *model.Section) []Error
}

// SentenceValidator checks one sentence.
type SentenceValidator interface {
	Validator
	ValidateSentence(s *model.Sentence) []Error
}

// PreProcessor is an optional capability of sentence validators. Preprocess
// runs exactly once per sentence, for the entire document, before any
// sentence validation of that document begins. It may annotate the sentence
// (token caching) but produces no findings.
type PreProcessor interface {
	Preprocess(s *model.Sentence)
}
