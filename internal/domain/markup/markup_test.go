package markup_test

import (
	"testing"

	"github.com/WojciechSzmit/wcag/internal/domain/markup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:pPr><w:pStyle w:val="Heading1"/></w:pPr><w:r><w:t>Intro</w:t></w:r></w:p>
    <w:p><w:r><w:t xml:space="preserve">Hello </w:t></w:r><w:r><w:t>world</w:t></w:r></w:p>
  </w:body>
</w:document>`

func TestParse_BuildsTree(t *testing.T) {
	root, err := markup.Parse([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, "document", root.Name)
	assert.Equal(t, "http://schemas.openxmlformats.org/wordprocessingml/2006/main", root.Space)
	assert.Empty(t, root.Attrs, "namespace declarations are not attributes")

	body := root.Child("body")
	require.NotNil(t, body)
	assert.Len(t, body.Children, 2)
}

func TestParse_SingleChildIsStillASlice(t *testing.T) {
	root, err := markup.Parse([]byte(`<a><b x="1"/></a>`))
	require.NoError(t, err)
	require.Len(t, root.Children, 1)
	assert.Equal(t, "1", root.Children[0].Attr("x"))
	assert.NotNil(t, root.Children[0].Children)
	assert.Empty(t, root.Children[0].Children)
}

func TestFindAll_DocumentOrder(t *testing.T) {
	root, err := markup.Parse([]byte(sample))
	require.NoError(t, err)

	paras := root.FindAll("p")
	require.Len(t, paras, 2)
	assert.Equal(t, "Heading1", paras[0].Child("pPr").ChildAttr("pStyle", "val"))
	assert.Equal(t, "", paras[1].Child("pPr").ChildAttr("pStyle", "val"), "nil-safe lookups")
	assert.Equal(t, "Hello world", paras[1].InnerText())
}

func TestFind_FirstMatch(t *testing.T) {
	root, err := markup.Parse([]byte(`<r><x id="1"><x id="2"/></x><x id="3"/></r>`))
	require.NoError(t, err)
	assert.Equal(t, "1", root.Find("x").Attr("id"))
	assert.Nil(t, root.Find("missing"))
}

func TestWalk_SkipChildren(t *testing.T) {
	root, err := markup.Parse([]byte(`<r><skip><x/></skip><x/></r>`))
	require.NoError(t, err)

	var seen []string
	root.Walk(func(el *markup.Element) bool {
		seen = append(seen, el.Name)
		return el.Name != "skip"
	})
	assert.Equal(t, []string{"r", "skip", "x"}, seen)
}

func TestParse_Malformed(t *testing.T) {
	_, err := markup.Parse([]byte(`<a><b></a>`))
	assert.Error(t, err)

	_, err = markup.Parse([]byte(``))
	assert.Error(t, err)

	_, err = markup.Parse([]byte(`not xml at all`))
	assert.Error(t, err)
}

func TestNilElementIsSafe(t *testing.T) {
	var el *markup.Element
	assert.Equal(t, "", el.Attr("x"))
	assert.Nil(t, el.Child("x"))
	assert.Equal(t, "", el.InnerText())
	assert.Empty(t, el.FindAll("x"))
}

func TestParse_TextBeforeNestedElements(t *testing.T) {
	doc := "<a>\n  lead\n  <b>\n    <c>deep</c>\n  </b>\n  <d>tail</d>\n</a>"
	root, err := markup.Parse([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, "deep", root.Find("c").Text)
	assert.Equal(t, "tail", root.Find("d").Text)
	assert.Contains(t, root.Text, "lead")
	assert.Equal(t, "deeptail", root.InnerText())
}
