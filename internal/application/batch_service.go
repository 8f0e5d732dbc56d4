package application

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/WojciechSzmit/wcag/internal/domain"
)

// Input is one document queued for batch analysis.
type Input struct {
	Name string
	MIME string
	Data []byte
}

// Outcome is the result for one Input. Exactly one of Report and Err is set.
type Outcome struct {
	Name   string
	Report *domain.Report
	Err    error
}

// BatchService analyzes many documents with bounded concurrency.
type BatchService struct {
	analyzer *AnalyzeService
	workers  int
}

func NewBatchService(analyzer *AnalyzeService, workers int) *BatchService {
	if workers <= 0 {
		workers = domain.DefaultWorkers
	}
	return &BatchService{analyzer: analyzer, workers: workers}
}

// AnalyzeAll returns one Outcome per input, in input order. A failing
// document does not stop the others.
func (b *BatchService) AnalyzeAll(ctx context.Context, inputs []Input) []Outcome {
	outcomes := make([]Outcome, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.workers)
	for i, in := range inputs {
		g.Go(func() error {
			report, err := b.analyzer.Analyze(gctx, in.Name, in.MIME, in.Data)
			outcomes[i] = Outcome{Name: in.Name, Report: report, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}

// BatchSummary aggregates a batch for display and CI gating.
type BatchSummary struct {
	Files        int
	Analyzed     int
	Errors       int
	AverageScore int
	LowestScore  int
	LowestFile   string
}

// Summarize folds outcomes into a BatchSummary. Scores only count analyzed
// files; LowestScore is 100 when nothing was analyzed.
func Summarize(outcomes []Outcome) BatchSummary {
	s := BatchSummary{Files: len(outcomes), LowestScore: 100}
	total := 0
	for _, o := range outcomes {
		if o.Err != nil {
			s.Errors++
			continue
		}
		s.Analyzed++
		total += o.Report.ComplianceScore
		if o.Report.ComplianceScore < s.LowestScore || s.LowestFile == "" {
			s.LowestScore = o.Report.ComplianceScore
			s.LowestFile = o.Name
		}
	}
	if s.Analyzed > 0 {
		s.AverageScore = domain.ComputeComplianceScore(total, 100*s.Analyzed)
	} else {
		s.AverageScore = 100
	}
	return s
}
