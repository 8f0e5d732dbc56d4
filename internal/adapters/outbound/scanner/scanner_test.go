package scanner_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WojciechSzmit/wcag/internal/adapters/outbound/scanner"
)

func writeTree(t *testing.T, files ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, f := range files {
		p := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte("x"), 0644))
	}
	return root
}

func TestFileScanner_FindsDocuments(t *testing.T) {
	root := writeTree(t,
		"b.pdf",
		"a.docx",
		"notes.txt",
		"reports/2024/Q1.PDF",
		"reports/old.doc",
	)

	docs, err := scanner.New().Scan(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.docx", "b.pdf", filepath.FromSlash("reports/2024/Q1.PDF")}, docs)
}

func TestFileScanner_SkipsBuiltInDirsAndLockFiles(t *testing.T) {
	root := writeTree(t,
		"keep.pdf",
		".git/objects/x.pdf",
		".wcag/cache/y.pdf",
		"node_modules/pkg/z.docx",
		"~$keep.docx",
	)

	docs, err := scanner.New().Scan(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"keep.pdf"}, docs)
}

func TestFileScanner_ExcludePaths(t *testing.T) {
	root := writeTree(t,
		"drafts/a.docx",
		"archive/2019/b.pdf",
		"archive/2024/c.pdf",
		"final/d.pdf",
	)

	docs, err := scanner.New().Scan(root, "drafts/", "archive/2019")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.FromSlash("archive/2024/c.pdf"), filepath.FromSlash("final/d.pdf")}, docs)
}

func TestFileScanner_MissingRoot(t *testing.T) {
	_, err := scanner.New().Scan(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
