package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xcorail/redpen/internal/config"
)

func TestNew_DefaultsWhenTableEmpty(t *testing.T) {
	ex := New(config.NewSymbolTable("en", nil))
	assert.Equal(t, []string{".", "?", "!"}, ex.Periods())
	assert.Equal(t, []string{"'", "\""}, ex.RightQuotations())
}

func TestNew_OverrideWithPerKeyDefaultFallback(t *testing.T) {
	symbols := config.NewSymbolTable("en", map[string]string{
		config.FullStop: "。",
	})
	ex := New(symbols)
	assert.Equal(t, []string{"。", "?", "!"}, ex.Periods())
}

func TestExtract_SplitsOnTerminators(t *testing.T) {
	ex := New(config.NewSymbolTable("en", nil))
	sentences := ex.Extract("First one. Second one? Third one!", 4)
	require.Len(t, sentences, 3)
	assert.Equal(t, "First one.", sentences[0].Content)
	assert.Equal(t, "Second one?", sentences[1].Content)
	assert.Equal(t, "Third one!", sentences[2].Content)
	for _, s := range sentences {
		assert.Equal(t, 4, s.LineNum)
	}
}

func TestExtract_TerminatorInsideQuotation(t *testing.T) {
	ex := New(config.NewSymbolTable("en", nil))
	sentences := ex.Extract(`He said "stop." Then he left.`, 1)
	require.Len(t, sentences, 2)
	assert.Equal(t, `He said "stop."`, sentences[0].Content)
	assert.Equal(t, "Then he left.", sentences[1].Content)
}

func TestExtract_TrailingFragmentBecomesSentence(t *testing.T) {
	ex := New(config.NewSymbolTable("en", nil))
	sentences := ex.Extract("Complete. incomplete tail", 2)
	require.Len(t, sentences, 2)
	assert.Equal(t, "incomplete tail", sentences[1].Content)
}

func TestExtract_EmptyInput(t *testing.T) {
	ex := New(config.NewSymbolTable("en", nil))
	assert.Empty(t, ex.Extract("", 1))
	assert.Empty(t, ex.Extract("   ", 1))
}

func TestExtract_JapaneseSymbols(t *testing.T) {
	ex := New(config.NewSymbolTable("ja", nil))
	sentences := ex.Extract("これは文です。これも文です。", 1)
	require.Len(t, sentences, 2)
	assert.Equal(t, "これは文です。", sentences[0].Content)
}
