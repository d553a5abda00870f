package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xcorail/redpen/internal/tokenizer"
)

func TestMarkdownParser_SectionsParagraphsLists(t *testing.T) {
	input := `# Title

Intro sentence one. Intro sentence two.

## Details

Detail text here.

- First item.
- Second item.
`
	p := &MarkdownParser{}
	doc, err := p.Parse(strings.NewReader(input), "doc.md", enExtractor(), &tokenizer.WhiteSpaceTokenizer{})
	require.NoError(t, err)

	require.Len(t, doc.Sections, 2)

	title := doc.Sections[0]
	assert.Equal(t, 1, title.Level)
	require.Len(t, title.HeaderContents, 1)
	assert.Equal(t, "Title", title.HeaderContents[0].Content)
	assert.Equal(t, 1, title.HeaderContents[0].LineNum)
	require.Len(t, title.Paragraphs, 1)
	require.Len(t, title.Paragraphs[0].Sentences, 2)
	assert.Equal(t, "Intro sentence one.", title.Paragraphs[0].Sentences[0].Content)
	assert.Equal(t, 3, title.Paragraphs[0].Sentences[0].LineNum)

	details := doc.Sections[1]
	assert.Equal(t, 2, details.Level)
	require.Len(t, details.Paragraphs, 1)
	require.Len(t, details.ListBlocks, 1)
	block := details.ListBlocks[0]
	require.Len(t, block.Elements, 2)
	require.Len(t, block.Elements[0].Sentences, 1)
	assert.Equal(t, "First item.", block.Elements[0].Sentences[0].Content)
	assert.Equal(t, "Second item.", block.Elements[1].Sentences[0].Content)
}

func TestMarkdownParser_ContentBeforeFirstHeading(t *testing.T) {
	input := `Leading text without a heading.

# Later Heading
`
	p := &MarkdownParser{}
	doc, err := p.Parse(strings.NewReader(input), "doc.md", enExtractor(), &tokenizer.WhiteSpaceTokenizer{})
	require.NoError(t, err)

	require.Len(t, doc.Sections, 2)
	synthetic := doc.Sections[0]
	assert.Equal(t, 0, synthetic.Level)
	assert.Empty(t, synthetic.HeaderContents)
	require.Len(t, synthetic.Paragraphs, 1)
	assert.Equal(t, 1, doc.Sections[1].Level)
}

func TestMarkdownParser_NoContent(t *testing.T) {
	p := &MarkdownParser{}
	doc, err := p.Parse(strings.NewReader(""), "doc.md", enExtractor(), &tokenizer.WhiteSpaceTokenizer{})
	require.NoError(t, err)
	require.Len(t, doc.Sections, 1)
}
