package validator

import "github.com/xcorail/redpen/internal/config"

// Factory builds a ready-to-use validator from its declaration and the run's
// symbol table. There is no separate initialization step: an instance
// returned by a factory has its options and symbol context applied.
type Factory func(cfg config.Rule, symbols *config.SymbolTable) (Validator, error)

// namespace is one ordered sub-table of the registry.
type namespace struct {
	name  string
	rules map[string]Factory
}

// The registry is an ordered list of namespaces searched front to back; the
// first namespace containing the rule name wins. The order is fixed: core,
// sentence rules, section rules.
var namespaces = []*namespace{
	{name: "core", rules: map[string]Factory{}},
	{name: "sentence", rules: map[string]Factory{}},
	{name: "section", rules: map[string]Factory{}},
}

// Registered factories must build flat rule implementations: a factory may
// not wrap or extend another registered rule. Registering an existing name
// replaces the previous factory within its namespace.

// RegisterCoreRule registers a factory in the core namespace.
func RegisterCoreRule(name string, f Factory) {
	namespaces[0].rules[name] = f
}

// RegisterSentenceRule registers a factory in the sentence-rule namespace.
func RegisterSentenceRule(name string, f Factory) {
	namespaces[1].rules[name] = f
}

// RegisterSectionRule registers a factory in the section-rule namespace.
func RegisterSectionRule(name string, f Factory) {
	namespaces[2].rules[name] = f
}

// Resolve looks the rule name up across the namespaces in declared order and
// invokes the first matching factory. Every call produces a fresh instance;
// instances are never shared between engines.
func Resolve(cfg config.Rule, symbols *config.SymbolTable) (Validator, error) {
	for _, ns := range namespaces {
		f, ok := ns.rules[cfg.Name]
		if !ok {
			continue
		}
		v, err := f(cfg, symbols)
		if err != nil {
			return nil, &ConstructionError{Rule: cfg.Name, Err: err}
		}
		return v, nil
	}
	return nil, &ConfigurationError{Rule: cfg.Name, Reason: "no such rule"}
}
