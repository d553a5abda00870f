package section

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xcorail/redpen/internal/config"
	"github.com/xcorail/redpen/internal/model"
	"github.com/xcorail/redpen/internal/validator"
)

func resolve(t *testing.T, rule config.Rule) validator.SectionValidator {
	t.Helper()
	v, err := validator.Resolve(rule, config.NewSymbolTable("en", nil))
	require.NoError(t, err)
	sv, ok := v.(validator.SectionValidator)
	require.True(t, ok)
	return sv
}

func sectionWithParagraphs(texts ...string) *model.Section {
	sec := model.NewSection(1, []*model.Sentence{model.NewSentence("Header", 1)})
	for _, text := range texts {
		p := &model.Paragraph{}
		p.AppendSentence(model.NewSentence(text, 2))
		sec.AppendParagraph(p)
	}
	return sec
}

func TestSectionLength(t *testing.T) {
	v := resolve(t, config.Rule{Name: "SectionLength", Options: map[string]string{"max_num": "20"}})

	assert.Empty(t, v.ValidateSection(sectionWithParagraphs("short text.")))

	errs := v.ValidateSection(sectionWithParagraphs(strings.Repeat("a", 30)))
	require.Len(t, errs, 1)
	assert.Equal(t, "SectionLength", errs[0].Rule)
	assert.Equal(t, 1, errs[0].LineNum)
}

func TestParagraphNumber(t *testing.T) {
	v := resolve(t, config.Rule{Name: "ParagraphNumber", Options: map[string]string{"max_num": "2"}})

	assert.Empty(t, v.ValidateSection(sectionWithParagraphs("one.", "two.")))

	errs := v.ValidateSection(sectionWithParagraphs("one.", "two.", "three."))
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "3 paragraphs")
}

func TestHeaderLength(t *testing.T) {
	v := resolve(t, config.Rule{Name: "HeaderLength", Options: map[string]string{"max_num": "5"}})

	assert.Empty(t, v.ValidateSection(model.NewSection(1, []*model.Sentence{model.NewSentence("Short", 3)})))

	errs := v.ValidateSection(model.NewSection(1, []*model.Sentence{model.NewSentence("A very long header", 3)}))
	require.Len(t, errs, 1)
	assert.Equal(t, 3, errs[0].LineNum)
}
