package rules_test

import (
	"errors"
	"testing"

	"github.com/WojciechSzmit/wcag/internal/domain"
	"github.com/WojciechSzmit/wcag/internal/domain/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll_UniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for _, r := range rules.All() {
		assert.False(t, seen[r.ID], "duplicate rule id %s", r.ID)
		seen[r.ID] = true
		assert.NotEmpty(t, r.Criterion)
		assert.NotEmpty(t, r.Help)
		assert.Contains(t, []domain.Impact{domain.ImpactCritical, domain.ImpactSerious, domain.ImpactModerate, domain.ImpactMinor}, r.Impact)
	}
}

func TestForType(t *testing.T) {
	assert.Len(t, rules.ForType(domain.FileTypeDOCX), 5)
	assert.Len(t, rules.ForType(domain.FileTypePDF), 6)
	assert.Empty(t, rules.ForType("odt"))
}

func TestFindingsKeepFixedImpact(t *testing.T) {
	r := rules.ImagesAlt
	for _, v := range []domain.Violation{
		r.Pass("", ""),
		r.Fail("missing", "2 images"),
		r.Warn("unsure", ""),
		r.Manual("", ""),
	} {
		assert.Equal(t, domain.ImpactCritical, v.Impact)
		assert.Equal(t, "images-alt", v.ID)
		assert.Equal(t, "1.1.1", v.WCAGCriterion)
		assert.Equal(t, r.Help, v.Help)
	}
}

func TestFinding_DescriptionFallback(t *testing.T) {
	v := rules.MetaTitle.Pass("", "Quarterly Report")
	assert.Equal(t, rules.MetaTitle.Description, v.Description)
	assert.Equal(t, domain.StatusPass, v.Status)
	assert.Equal(t, "Quarterly Report", v.Details)

	v = rules.MetaTitle.Fail("Title is empty", "")
	assert.Equal(t, "Title is empty", v.Description)
	assert.Equal(t, domain.StatusFail, v.Status)
}

func TestCollect_PreservesOrderAndReportsSkips(t *testing.T) {
	cause := errors.New("boom")
	results := []rules.Result{
		rules.Found(rules.MetaTitle, rules.MetaTitle.Pass("", "")),
		rules.Degraded(rules.MetaLang, "word/styles.xml", cause, rules.MetaLang.Warn("", "")),
		rules.Found(rules.HeadingsPresent, rules.HeadingsPresent.Pass("", ""), rules.HeadingOrder.Pass("", "")),
	}

	var skipped []rules.Result
	out := rules.Collect(func(r rules.Result) { skipped = append(skipped, r) }, results...)

	require.Len(t, out, 4)
	assert.Equal(t, []string{"meta-title", "meta-lang", "headings-present", "heading-order"},
		[]string{out[0].ID, out[1].ID, out[2].ID, out[3].ID})
	require.Len(t, skipped, 1)
	assert.Equal(t, "word/styles.xml", skipped[0].Skip.Part)
	assert.ErrorIs(t, skipped[0].Skip, cause)
	assert.Contains(t, skipped[0].Skip.Error(), "word/styles.xml")
}

func TestCollect_NilCallback(t *testing.T) {
	out := rules.Collect(nil, rules.Degraded(rules.PDFLang, "xmp", errors.New("x"), rules.PDFLang.Warn("", "")))
	assert.Len(t, out, 1)
}
