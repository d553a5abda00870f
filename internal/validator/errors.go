package validator

import "fmt"

// ConfigurationError reports a rule declaration that cannot be satisfied:
// an unknown rule name, or a resolved rule whose target the engine does not
// recognize. It is fatal and raised before any traversal begins.
type ConfigurationError struct {
	Rule   string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error for rule %q: %s", e.Rule, e.Reason)
}

// ConstructionError reports a known rule whose factory failed, typically on
// an invalid option value. Fatal, raised at engine setup.
type ConstructionError struct {
	Rule string
	Err  error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("failed to construct rule %q: %v", e.Rule, e.Err)
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}
