package sentence

import (
	"fmt"
	"strings"

	"github.com/xcorail/redpen/internal/config"
	"github.com/xcorail/redpen/internal/model"
	"github.com/xcorail/redpen/internal/validator"
)

func init() {
	validator.RegisterSentenceRule("InvalidExpression", newInvalidExpression)
}

// invalidExpression flags sentences containing any of the configured
// expressions. The "list" option is a comma-separated set of phrases.
type invalidExpression struct {
	expressions []string
}

func newInvalidExpression(cfg config.Rule, _ *config.SymbolTable) (validator.Validator, error) {
	raw := cfg.Option("list", "")
	if raw == "" {
		return nil, fmt.Errorf("list option is required")
	}
	var expressions []string
	for _, e := range strings.Split(raw, ",") {
		e = strings.TrimSpace(e)
		if e != "" {
			expressions = append(expressions, e)
		}
	}
	if len(expressions) == 0 {
		return nil, fmt.Errorf("list option contains no expressions")
	}
	return &invalidExpression{expressions: expressions}, nil
}

func (v *invalidExpression) Name() string { return "InvalidExpression" }

func (v *invalidExpression) Target() validator.Target { return validator.TargetSentence }

func (v *invalidExpression) ValidateSentence(s *model.Sentence) []validator.Error {
	var errs []validator.Error
	for _, e := range v.expressions {
		if strings.Contains(s.Content, e) {
			errs = append(errs, validator.Error{
				Rule:    v.Name(),
				Message: fmt.Sprintf("found invalid expression %q", e),
				LineNum: s.LineNum,
			})
		}
	}
	return errs
}
