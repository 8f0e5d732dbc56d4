package cli_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WojciechSzmit/wcag/internal/domain"
)

func TestAnalyzeCommand_RecordAndHistory(t *testing.T) {
	dir, docx, pdf := writeFixtures(t)

	_, err := run(t, "analyze", docx, pdf, "--record", "--state-dir", dir, "--config", dir)
	require.NoError(t, err)

	out, err := run(t, "history", dir, "--json")
	require.NoError(t, err)
	var entries []domain.ScoreEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "report.docx", entries[0].File)
	assert.Equal(t, 100, entries[0].Score)
	assert.Equal(t, "scan.pdf", entries[1].File)

	out, err = run(t, "history", dir, "--file", "scan.pdf")
	require.NoError(t, err)
	assert.Contains(t, out, "Score History")
	assert.Contains(t, out, "scan.pdf")
	assert.NotContains(t, out, "report.docx")
}

func TestHistoryCommand_Empty(t *testing.T) {
	out, err := run(t, "history", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "No score history found.")
}

func TestAnalyzeCommand_CacheAndClear(t *testing.T) {
	dir, docx, _ := writeFixtures(t)

	first, err := run(t, "analyze", docx, "--json", "--cache", "--state-dir", dir, "--config", dir)
	require.NoError(t, err)

	cached, err := filepath.Glob(filepath.Join(dir, ".wcag", "cache", "*.json"))
	require.NoError(t, err)
	assert.Len(t, cached, 1)

	second, err := run(t, "analyze", docx, "--json", "--cache", "--state-dir", dir, "--config", dir)
	require.NoError(t, err)
	assert.JSONEq(t, first, second)

	out, err := run(t, "cache", "clear", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Cache cleared")
	_, err = os.Stat(filepath.Join(dir, ".wcag", "cache"))
	assert.True(t, os.IsNotExist(err))
}
