package config

// Symbol keys used by the sentence extractor.
const (
	FullStop                 = "FULL_STOP"
	QuestionMark             = "QUESTION_MARK"
	ExclamationMark          = "EXCLAMATION_MARK"
	RightSingleQuotationMark = "RIGHT_SINGLE_QUOTATION_MARK"
	RightDoubleQuotationMark = "RIGHT_DOUBLE_QUOTATION_MARK"
	Comma                    = "COMMA"
)

var enDefaults = map[string]string{
	FullStop:                 ".",
	QuestionMark:             "?",
	ExclamationMark:          "!",
	RightSingleQuotationMark: "'",
	RightDoubleQuotationMark: "\"",
	Comma:                    ",",
}

var jaDefaults = map[string]string{
	FullStop:                 "。",
	QuestionMark:             "?",
	ExclamationMark:          "!",
	RightSingleQuotationMark: "’",
	RightDoubleQuotationMark: "”",
	Comma:                    "、",
}

// SymbolTable maps symbol keys to the literal strings configured for a run.
// Keys not set explicitly fall back to the language defaults. The table is
// immutable after construction.
type SymbolTable struct {
	lang     string
	symbols  map[string]string
	defaults map[string]string
}

// NewSymbolTable builds a symbol table for a language with explicit overrides.
func NewSymbolTable(lang string, overrides map[string]string) *SymbolTable {
	defaults := enDefaults
	if lang == "ja" {
		defaults = jaDefaults
	}
	symbols := make(map[string]string, len(overrides))
	for k, v := range overrides {
		symbols[k] = v
	}
	return &SymbolTable{lang: lang, symbols: symbols, defaults: defaults}
}

// Lang returns the language the table was built for.
func (t *SymbolTable) Lang() string {
	return t.lang
}

// Contains reports whether the key was set explicitly.
func (t *SymbolTable) Contains(key string) bool {
	_, ok := t.symbols[key]
	return ok
}

// Get returns the explicitly configured value for key. The boolean is false
// when the key was not set.
func (t *SymbolTable) Get(key string) (string, bool) {
	v, ok := t.symbols[key]
	return v, ok
}

// Value returns the configured value for key, falling back to the language
// default, then to the empty string for unknown keys.
func (t *SymbolTable) Value(key string) string {
	if v, ok := t.symbols[key]; ok {
		return v
	}
	return t.defaults[key]
}
