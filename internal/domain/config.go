package domain

import (
	"fmt"
	"strings"
)

// Defaults used when .wcag.yaml is absent or leaves a field unset.
const (
	DefaultTextSamplePages     = 5
	DefaultMinTextChars        = 50
	DefaultMaxListedViolations = 5
	DefaultWorkers             = 4
)

// DefaultPlaceholderTitles are PDF titles treated as missing.
var DefaultPlaceholderTitles = []string{"Untitled"}

// AnalyzerConfig holds configuration loaded from .wcag.yaml. It is built once
// at startup and passed by value into the analyzers.
type AnalyzerConfig struct {
	PDF      PDFConfig     `yaml:"pdf"      json:"pdf"`
	Headings HeadingConfig `yaml:"headings" json:"headings"`
	CI       CIConfig      `yaml:"ci"       json:"ci"`
	Workers  int           `yaml:"workers"  json:"workers"`

	// ExcludePaths names directories skipped when a directory is analyzed.
	ExcludePaths []string `yaml:"exclude_paths,omitempty" json:"exclude_paths,omitempty"`
}

// PDFConfig tunes the PDF text-layer and title heuristics.
type PDFConfig struct {
	TextSamplePages   int      `yaml:"text_sample_pages"  json:"text_sample_pages"`
	MinTextChars      int      `yaml:"min_text_chars"     json:"min_text_chars"`
	PlaceholderTitles []string `yaml:"placeholder_titles" json:"placeholder_titles"`
}

// HeadingConfig tunes how heading-order findings are reported.
type HeadingConfig struct {
	MaxListedViolations int `yaml:"max_listed_violations" json:"max_listed_violations"`
}

// CIConfig holds the minimum score gate used by `wcag analyze --ci`.
type CIConfig struct {
	MinScore int `yaml:"min_score" json:"min_score"`
}

// DefaultConfig returns the configuration matching the documented heuristics.
func DefaultConfig() AnalyzerConfig {
	return AnalyzerConfig{
		PDF: PDFConfig{
			TextSamplePages:   DefaultTextSamplePages,
			MinTextChars:      DefaultMinTextChars,
			PlaceholderTitles: append([]string(nil), DefaultPlaceholderTitles...),
		},
		Headings: HeadingConfig{MaxListedViolations: DefaultMaxListedViolations},
		Workers:  DefaultWorkers,
	}
}

// WithDefaults fills zero-valued fields from DefaultConfig.
func (c AnalyzerConfig) WithDefaults() AnalyzerConfig {
	d := DefaultConfig()
	if c.PDF.TextSamplePages == 0 {
		c.PDF.TextSamplePages = d.PDF.TextSamplePages
	}
	if c.PDF.MinTextChars == 0 {
		c.PDF.MinTextChars = d.PDF.MinTextChars
	}
	if len(c.PDF.PlaceholderTitles) == 0 {
		c.PDF.PlaceholderTitles = d.PDF.PlaceholderTitles
	}
	if c.Headings.MaxListedViolations == 0 {
		c.Headings.MaxListedViolations = d.Headings.MaxListedViolations
	}
	if c.Workers == 0 {
		c.Workers = d.Workers
	}
	return c
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c AnalyzerConfig) Validate() error {
	if c.PDF.TextSamplePages < 0 {
		return fmt.Errorf("pdf.text_sample_pages must be >= 0, 0 uses the default (got %d)", c.PDF.TextSamplePages)
	}
	if c.PDF.MinTextChars < 0 {
		return fmt.Errorf("pdf.min_text_chars must be >= 0 (got %d)", c.PDF.MinTextChars)
	}
	for i, t := range c.PDF.PlaceholderTitles {
		if strings.TrimSpace(t) == "" {
			return fmt.Errorf("pdf.placeholder_titles[%d] must not be empty", i)
		}
	}
	if c.Headings.MaxListedViolations < 0 {
		return fmt.Errorf("headings.max_listed_violations must be >= 0, 0 uses the default (got %d)", c.Headings.MaxListedViolations)
	}
	if c.CI.MinScore < 0 || c.CI.MinScore > 100 {
		return fmt.Errorf("ci.min_score = %d (must be between 0 and 100)", c.CI.MinScore)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, 0 uses the default (got %d)", c.Workers)
	}
	for i, p := range c.ExcludePaths {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("exclude_paths[%d] must not be empty", i)
		}
	}
	return nil
}

// IsPlaceholderTitle reports whether title is one of the configured
// placeholder values, compared case-insensitively.
func (c AnalyzerConfig) IsPlaceholderTitle(title string) bool {
	t := strings.TrimSpace(title)
	for _, p := range c.PDF.PlaceholderTitles {
		if strings.EqualFold(t, strings.TrimSpace(p)) {
			return true
		}
	}
	return false
}
