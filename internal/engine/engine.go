// Package engine runs every configured validator over a document collection
// and streams findings to a result distributor.
package engine

import (
	"fmt"
	"log/slog"

	"github.com/xcorail/redpen/internal/config"
	"github.com/xcorail/redpen/internal/distributor"
	"github.com/xcorail/redpen/internal/extractor"
	"github.com/xcorail/redpen/internal/model"
	"github.com/xcorail/redpen/internal/validator"
)

// Engine owns the three typed validator lists resolved from a configuration.
// The lists are immutable after construction. An engine supports one
// in-flight Validate call at a time: rules may keep state between the
// preprocessing and validation passes of a run.
type Engine struct {
	documentValidators []validator.DocumentValidator
	sectionValidators  []validator.SectionValidator
	sentenceValidators []validator.SentenceValidator

	conf *config.Configuration
	dist distributor.ResultDistributor
	ex   *extractor.SentenceExtractor
	log  *slog.Logger
}

// New resolves every configured rule through the registry and classifies it
// by its declared target. Construction fails fast: an unknown rule name, a
// factory failure, or a rule whose target the engine does not recognize
// aborts setup before any traversal can begin.
func New(conf *config.Configuration, dist distributor.ResultDistributor, log *slog.Logger) (*Engine, error) {
	if conf == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	if dist == nil {
		dist = distributor.Discard{}
	}
	if log == nil {
		log = slog.Default()
	}

	e := &Engine{
		conf: conf,
		dist: dist,
		ex:   extractor.New(conf.Symbols),
		log:  log,
	}
	if err := e.loadValidators(); err != nil {
		return nil, err
	}
	return e, nil
}

// loadValidators resolves the configured rules in declaration order and
// routes each into exactly one typed list.
func (e *Engine) loadValidators() error {
	for _, rc := range e.conf.Rules {
		v, err := validator.Resolve(rc, e.conf.Symbols)
		if err != nil {
			return err
		}
		switch v.Target() {
		case validator.TargetDocument:
			dv, ok := v.(validator.DocumentValidator)
			if !ok {
				return &validator.ConfigurationError{Rule: rc.Name, Reason: "declares document target but cannot validate documents"}
			}
			e.documentValidators = append(e.documentValidators, dv)
		case validator.TargetSection:
			sv, ok := v.(validator.SectionValidator)
			if !ok {
				return &validator.ConfigurationError{Rule: rc.Name, Reason: "declares section target but cannot validate sections"}
			}
			e.sectionValidators = append(e.sectionValidators, sv)
		case validator.TargetSentence:
			sv, ok := v.(validator.SentenceValidator)
			if !ok {
				return &validator.ConfigurationError{Rule: rc.Name, Reason: "declares sentence target but cannot validate sentences"}
			}
			e.sentenceValidators = append(e.sentenceValidators, sv)
		default:
			return &validator.ConfigurationError{Rule: rc.Name, Reason: fmt.Sprintf("unrecognized target %v", v.Target())}
		}
	}
	return nil
}

// Configuration returns the configuration the engine was built from.
func (e *Engine) Configuration() *config.Configuration {
	return e.conf
}

// SentenceExtractor returns the extractor derived from the configuration's
// symbol table, used to parametrize document parsers.
func (e *Engine) SentenceExtractor() *extractor.SentenceExtractor {
	return e.ex
}

// Validate runs every validator over the collection and returns the findings
// per document. The map has an entry for every document, empty slices
// included. Passes run strictly in order: document, section, sentence
// preprocessing, sentence validation; within a pass, validators run in
// registration order and findings keep traversal order.
func (e *Engine) Validate(collection *model.DocumentCollection) map[*model.Document][]validator.Error {
	if err := e.dist.FlushHeader(); err != nil {
		e.log.Error("failed to flush result header", "error", err)
	}

	errsByDoc := make(map[*model.Document][]validator.Error, len(collection.Documents))
	for _, doc := range collection.Documents {
		errsByDoc[doc] = []validator.Error{}
	}

	e.runDocumentValidators(collection, errsByDoc)
	e.runSectionValidators(collection, errsByDoc)
	e.runSentenceValidators(collection, errsByDoc)

	if err := e.dist.FlushFooter(); err != nil {
		e.log.Error("failed to flush result footer", "error", err)
	}
	return errsByDoc
}

func (e *Engine) runDocumentValidators(collection *model.DocumentCollection, errsByDoc map[*model.Document][]validator.Error) {
	for _, doc := range collection.Documents {
		var found []validator.Error
		for _, v := range e.documentValidators {
			found = append(found, v.ValidateDocument(doc)...)
		}
		for _, ve := range found {
			e.flushError(doc, ve)
		}
		errsByDoc[doc] = append(errsByDoc[doc], found...)
	}
}

func (e *Engine) runSectionValidators(collection *model.DocumentCollection, errsByDoc map[*model.Document][]validator.Error) {
	for _, doc := range collection.Documents {
		for _, sec := range doc.Sections {
			var found []validator.Error
			for _, v := range e.sectionValidators {
				found = append(found, v.ValidateSection(sec)...)
			}
			for _, ve := range found {
				e.flushError(doc, ve)
			}
			errsByDoc[doc] = append(errsByDoc[doc], found...)
		}
	}
}

// runSentenceValidators preprocesses every sentence of a document before any
// sentence validation of that document runs: preprocessors may cache data on
// the sentence that validators read back.
func (e *Engine) runSentenceValidators(collection *model.DocumentCollection, errsByDoc map[*model.Document][]validator.Error) {
	for _, doc := range collection.Documents {
		for _, sec := range doc.Sections {
			e.preprocessSection(sec)
		}
	}
	for _, doc := range collection.Documents {
		for _, sec := range doc.Sections {
			found := e.validateSectionSentences(sec)
			for _, ve := range found {
				e.flushError(doc, ve)
			}
			errsByDoc[doc] = append(errsByDoc[doc], found...)
		}
	}
}

// preprocessSection visits sentence containers in the fixed order:
// paragraphs, section header, list blocks.
func (e *Engine) preprocessSection(sec *model.Section) {
	for _, p := range sec.Paragraphs {
		e.preprocessSentences(p.Sentences)
	}
	e.preprocessSentences(sec.HeaderContents)
	for _, b := range sec.ListBlocks {
		for _, el := range b.Elements {
			e.preprocessSentences(el.Sentences)
		}
	}
}

func (e *Engine) preprocessSentences(sentences []*model.Sentence) {
	for _, v := range e.sentenceValidators {
		pp, ok := v.(validator.PreProcessor)
		if !ok {
			continue
		}
		for _, s := range sentences {
			pp.Preprocess(s)
		}
	}
}

// validateSectionSentences visits containers in the same order as the
// preprocessing pass.
func (e *Engine) validateSectionSentences(sec *model.Section) []validator.Error {
	var found []validator.Error
	for _, p := range sec.Paragraphs {
		found = append(found, e.validateSentences(p.Sentences)...)
	}
	found = append(found, e.validateSentences(sec.HeaderContents)...)
	for _, b := range sec.ListBlocks {
		for _, el := range b.Elements {
			found = append(found, e.validateSentences(el.Sentences)...)
		}
	}
	return found
}

func (e *Engine) validateSentences(sentences []*model.Sentence) []validator.Error {
	var found []validator.Error
	for _, v := range e.sentenceValidators {
		for _, s := range sentences {
			found = append(found, v.ValidateSentence(s)...)
		}
	}
	return found
}

// flushError forwards one finding to the distributor. A distributor failure
// is logged and swallowed: it never drops the finding from the result map
// and never stops the traversal.
func (e *Engine) flushError(doc *model.Document, ve validator.Error) {
	if err := e.dist.FlushError(doc, ve); err != nil {
		e.log.Error("failed to flush finding, skipping it",
			"file", doc.FileName,
			"rule", ve.Rule,
			"error", err,
		)
	}
}
