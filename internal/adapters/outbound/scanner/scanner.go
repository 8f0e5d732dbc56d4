package scanner

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var skipDirs = map[string]bool{
	"vendor":       true,
	"node_modules": true,
	".git":         true,
	".wcag":        true,
}

var documentExts = map[string]bool{
	".docx": true,
	".pdf":  true,
}

// FileScanner implements domain.DocumentScanner by walking the filesystem.
type FileScanner struct{}

func New() *FileScanner {
	return &FileScanner{}
}

// Scan returns the DOCX and PDF files under root as paths relative to it,
// sorted. Directories named in excludePaths are skipped at any depth, as are
// Word lock files ("~$name.docx").
func (s *FileScanner) Scan(root string, excludePaths ...string) ([]string, error) {
	absPath, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	// Merge extra excludes with built-in skip dirs.
	extraSkip := make(map[string]bool, len(excludePaths))
	for _, p := range excludePaths {
		extraSkip[strings.TrimSuffix(filepath.ToSlash(p), "/")] = true
	}

	var docs []string
	err = filepath.WalkDir(absPath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relPath, _ := filepath.Rel(absPath, path)
		if d.IsDir() {
			if path != absPath && (skipDirs[d.Name()] || extraSkip[d.Name()] || extraSkip[filepath.ToSlash(relPath)]) {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(d.Name(), "~$") {
			return nil
		}
		if documentExts[strings.ToLower(filepath.Ext(d.Name()))] {
			docs = append(docs, relPath)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(docs)
	return docs, nil
}
