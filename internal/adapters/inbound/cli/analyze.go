package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/WojciechSzmit/wcag/internal/adapters/outbound/cache"
	"github.com/WojciechSzmit/wcag/internal/adapters/outbound/gitinfo"
	"github.com/WojciechSzmit/wcag/internal/adapters/outbound/history"
	"github.com/WojciechSzmit/wcag/internal/adapters/outbound/mimesniff"
	"github.com/WojciechSzmit/wcag/internal/adapters/outbound/scanner"
	"github.com/WojciechSzmit/wcag/internal/adapters/outbound/tui"
	"github.com/WojciechSzmit/wcag/internal/application"
	"github.com/WojciechSzmit/wcag/internal/domain"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		jsonOutput bool
		ciMode     bool
		minScore   int
		badge      bool
		fileType   string
		configPath string
		workers    int
		useCache   bool
		record     bool
		stateDir   string
	)

	cmd := &cobra.Command{
		Use:   "analyze <file|dir>...",
		Short: "Analyze DOCX and PDF documents",
		Long:  "Run the accessibility checks against one or more documents and print a report per file. Directories are searched recursively for .docx and .pdf files.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			forced, err := mimeForType(fileType)
			if err != nil {
				return err
			}

			log, err := newLogger(cmd)
			if err != nil {
				return err
			}
			defer log.Sync()

			svc, err := newAnalyzeService(configPath, log)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("min") {
				minScore = svc.Config().CI.MinScore
			}
			if !cmd.Flags().Changed("workers") {
				workers = svc.Config().Workers
			}

			if useCache {
				svc.WithCache(cache.New(), stateDir)
			}

			inputs, err := readInputs(args, forced, svc.Config().ExcludePaths)
			if err != nil {
				return err
			}

			outcomes := application.NewBatchService(svc, workers).AnalyzeAll(cmd.Context(), inputs)
			if record {
				if err := application.NewHistoryService(history.New(), gitinfo.New()).Record(stateDir, inputs, outcomes); err != nil {
					log.Warn("recording history failed", "dir", stateDir, "error", err)
				}
			}
			if len(outcomes) == 1 {
				o := outcomes[0]
				if o.Err != nil {
					return fmt.Errorf("analyzing %s: %w", o.Name, o.Err)
				}
				if err := renderReport(cmd, o.Report, jsonOutput, badge); err != nil {
					return err
				}
				return gate(ciMode, o.Report.ComplianceScore, minScore, o.Name)
			}

			summary := application.Summarize(outcomes)
			if err := renderBatch(cmd, outcomes, summary, jsonOutput, badge); err != nil {
				return err
			}
			if summary.Errors > 0 {
				return fmt.Errorf("%d of %d files could not be analyzed", summary.Errors, summary.Files)
			}
			return gate(ciMode, summary.LowestScore, minScore, summary.LowestFile)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output reports as JSON")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 if any score is below --min")
	cmd.Flags().IntVar(&minScore, "min", 0, "Minimum score for CI mode (default: ci.min_score from config)")
	cmd.Flags().BoolVar(&badge, "badge", false, "Output shields.io badge URL")
	cmd.Flags().StringVar(&fileType, "type", "", "Treat every input as this type (pdf, docx) instead of detecting it")
	cmd.Flags().StringVar(&configPath, "config", ".", "Config file or directory containing .wcag.yaml")
	cmd.Flags().IntVar(&workers, "workers", 0, "Documents analyzed concurrently (default: workers from config)")
	cmd.Flags().BoolVar(&useCache, "cache", false, "Reuse reports of unchanged documents from .wcag/cache")
	cmd.Flags().BoolVar(&record, "record", false, "Append the scores to .wcag/history")
	cmd.Flags().StringVar(&stateDir, "state-dir", ".", "Directory holding the .wcag cache and history")

	return cmd
}

func mimeForType(fileType string) (string, error) {
	switch domain.FileType(strings.ToLower(fileType)) {
	case "":
		return "", nil
	case domain.FileTypePDF:
		return domain.MIMETypePDF, nil
	case domain.FileTypeDOCX:
		return domain.MIMETypeDOCX, nil
	default:
		return "", fmt.Errorf("unknown file type %q (valid: pdf, docx)", fileType)
	}
}

// readInputs loads every file argument. A directory argument expands to the
// documents found below it, named by their path relative to that directory.
func readInputs(paths []string, forced string, exclude []string) ([]application.Input, error) {
	detect := mimesniff.New()
	scan := scanner.New()

	var inputs []application.Input
	add := func(path, name string) error {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		mime := forced
		if mime == "" {
			mime = detect.Detect(path, data)
		}
		inputs = append(inputs, application.Input{Name: name, MIME: mime, Data: data})
		return nil
	}

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", p, err)
		}
		if !info.IsDir() {
			if err := add(p, filepath.Base(p)); err != nil {
				return nil, err
			}
			continue
		}

		docs, err := scan.Scan(p, exclude...)
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", p, err)
		}
		if len(docs) == 0 {
			return nil, fmt.Errorf("no .docx or .pdf files found in %s", p)
		}
		for _, rel := range docs {
			if err := add(filepath.Join(p, rel), filepath.ToSlash(rel)); err != nil {
				return nil, err
			}
		}
	}
	return inputs, nil
}

func gate(ciMode bool, score, minScore int, name string) error {
	if ciMode && score < minScore {
		return fmt.Errorf("%s: score %d is below minimum %d", name, score, minScore)
	}
	return nil
}

func renderReport(cmd *cobra.Command, report *domain.Report, jsonOutput, badge bool) error {
	switch {
	case jsonOutput:
		return renderJSON(cmd, report)
	case badge:
		fmt.Fprintln(cmd.OutOrStdout(), badgeURL(report.ComplianceScore))
	default:
		fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report))
	}
	return nil
}

type batchResult struct {
	File   string         `json:"file"`
	Report *domain.Report `json:"report,omitempty"`
	Error  string         `json:"error,omitempty"`
}

func renderBatch(cmd *cobra.Command, outcomes []application.Outcome, summary application.BatchSummary, jsonOutput, badge bool) error {
	switch {
	case jsonOutput:
		results := make([]batchResult, len(outcomes))
		for i, o := range outcomes {
			results[i] = batchResult{File: o.Name, Report: o.Report}
			if o.Err != nil {
				results[i].Error = o.Err.Error()
			}
		}
		return renderJSON(cmd, results)
	case badge:
		fmt.Fprintln(cmd.OutOrStdout(), badgeURL(summary.AverageScore))
	default:
		entries := make([]tui.BatchEntry, len(outcomes))
		for i, o := range outcomes {
			if o.Report != nil {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(o.Report))
			}
			entries[i] = tui.BatchEntry{Name: o.Name, Report: o.Report, Err: o.Err}
		}
		fmt.Fprint(cmd.OutOrStdout(), tui.RenderBatch(entries, summary.AverageScore))
	}
	return nil
}

func renderJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func badgeURL(score int) string {
	return fmt.Sprintf("https://img.shields.io/badge/wcag-%d%%2F100-%s", score, domain.BadgeColor(score))
}
