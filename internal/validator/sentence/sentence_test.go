package sentence

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xcorail/redpen/internal/config"
	"github.com/xcorail/redpen/internal/model"
	"github.com/xcorail/redpen/internal/validator"
)

func resolve(t *testing.T, rule config.Rule) validator.SentenceValidator {
	t.Helper()
	v, err := validator.Resolve(rule, config.NewSymbolTable("en", nil))
	require.NoError(t, err)
	sv, ok := v.(validator.SentenceValidator)
	require.True(t, ok)
	return sv
}

func TestSentenceLength(t *testing.T) {
	v := resolve(t, config.Rule{Name: "SentenceLength", Options: map[string]string{"max_len": "10"}})

	errs := v.ValidateSentence(model.NewSentence("short", 1))
	assert.Empty(t, errs)

	errs = v.ValidateSentence(model.NewSentence("this one is clearly too long", 7))
	require.Len(t, errs, 1)
	assert.Equal(t, "SentenceLength", errs[0].Rule)
	assert.Equal(t, 7, errs[0].LineNum)
}

func TestSentenceLength_RejectsNonPositiveMax(t *testing.T) {
	_, err := validator.Resolve(
		config.Rule{Name: "SentenceLength", Options: map[string]string{"max_len": "-1"}},
		config.NewSymbolTable("en", nil),
	)
	var consErr *validator.ConstructionError
	require.ErrorAs(t, err, &consErr)
}

func TestCommaNumber(t *testing.T) {
	v := resolve(t, config.Rule{Name: "CommaNumber", Options: map[string]string{"max_num": "2"}})

	assert.Empty(t, v.ValidateSentence(model.NewSentence("one, two", 1)))

	errs := v.ValidateSentence(model.NewSentence("a, b, c, d", 3))
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "3 commas")
}

func TestCommaNumber_UsesSymbolTable(t *testing.T) {
	v, err := validator.Resolve(
		config.Rule{Name: "CommaNumber", Options: map[string]string{"max_num": "1"}},
		config.NewSymbolTable("ja", nil),
	)
	require.NoError(t, err)
	sv := v.(validator.SentenceValidator)

	errs := sv.ValidateSentence(model.NewSentence("一、二、三", 1))
	require.Len(t, errs, 1)
}

func TestWordNumber_PreprocessCachesTokens(t *testing.T) {
	v := resolve(t, config.Rule{Name: "WordNumber", Options: map[string]string{"max_num": "3"}})
	pp, ok := v.(validator.PreProcessor)
	require.True(t, ok, "WordNumber must expose the PreProcessor capability")

	s := model.NewSentence("this sentence has five words.", 2)
	pp.Preprocess(s)
	assert.Equal(t, []string{"this", "sentence", "has", "five", "words"}, s.Tokens)

	errs := v.ValidateSentence(s)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "5 words")
}

func TestInvalidExpression(t *testing.T) {
	v := resolve(t, config.Rule{Name: "InvalidExpression", Options: map[string]string{"list": "very, you know"}})

	assert.Empty(t, v.ValidateSentence(model.NewSentence("A clean sentence.", 1)))

	errs := v.ValidateSentence(model.NewSentence("This is very bad, you know.", 5))
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0].Message, `"very"`)
	assert.Contains(t, errs[1].Message, `"you know"`)
}

func TestInvalidExpression_RequiresList(t *testing.T) {
	_, err := validator.Resolve(
		config.Rule{Name: "InvalidExpression"},
		config.NewSymbolTable("en", nil),
	)
	var consErr *validator.ConstructionError
	require.ErrorAs(t, err, &consErr)
}

func TestStartWithCapitalLetter(t *testing.T) {
	v := resolve(t, config.Rule{Name: "StartWithCapitalLetter"})

	assert.Empty(t, v.ValidateSentence(model.NewSentence("Proper start.", 1)))
	assert.Empty(t, v.ValidateSentence(model.NewSentence("42 is a number.", 1)))
	assert.Empty(t, v.ValidateSentence(model.NewSentence(strings.Repeat(" ", 3), 1)))

	errs := v.ValidateSentence(model.NewSentence("lowercase start.", 9))
	require.Len(t, errs, 1)
	assert.Equal(t, 9, errs[0].LineNum)
}
