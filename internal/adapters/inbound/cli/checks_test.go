package cli_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WojciechSzmit/wcag/internal/domain"
	"github.com/WojciechSzmit/wcag/internal/domain/rules"
)

func TestChecksCommand(t *testing.T) {
	out, err := run(t, "checks")
	require.NoError(t, err)
	assert.Contains(t, out, "DOCX")
	assert.Contains(t, out, "meta-title")
	assert.Contains(t, out, "pdf-images-alt")
}

func TestChecksCommand_FilteredJSON(t *testing.T) {
	out, err := run(t, "checks", "pdf", "--json")
	require.NoError(t, err)

	var got []rules.Rule
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, rules.ForType(domain.FileTypePDF), got)
}

func TestChecksCommand_UnknownType(t *testing.T) {
	_, err := run(t, "checks", "xlsx")
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "wcag dev")
}

func TestServeCommandExists(t *testing.T) {
	_, err := run(t, "serve", "--help")
	assert.NoError(t, err)
}
