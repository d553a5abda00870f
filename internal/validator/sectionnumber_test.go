package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xcorail/redpen/internal/config"
	"github.com/xcorail/redpen/internal/model"
)

func TestSectionNumber(t *testing.T) {
	v, err := Resolve(config.Rule{Name: "SectionNumber", Options: map[string]string{"max_num": "2"}}, config.NewSymbolTable("en", nil))
	require.NoError(t, err)
	dv := v.(DocumentValidator)

	doc := &model.Document{FileName: "a.md"}
	doc.AppendSection(model.NewSection(1, nil))
	doc.AppendSection(model.NewSection(1, nil))
	assert.Empty(t, dv.ValidateDocument(doc))

	doc.AppendSection(model.NewSection(1, nil))
	errs := dv.ValidateDocument(doc)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "3 sections")
}
