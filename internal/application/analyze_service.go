package application

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/WojciechSzmit/wcag/internal/domain"
	"github.com/WojciechSzmit/wcag/internal/domain/docx"
	"github.com/WojciechSzmit/wcag/internal/domain/pdf"
	"github.com/WojciechSzmit/wcag/internal/domain/rules"
)

// AnalyzeService orchestrates one analysis run:
// resolve type → open container → run checks → reduce into a Report.
type AnalyzeService struct {
	opener domain.PackageOpener
	loader domain.PDFLoader
	cfg    domain.AnalyzerConfig
	log    domain.Logger

	cache    domain.ReportCache
	cacheDir string
}

func NewAnalyzeService(
	opener domain.PackageOpener,
	loader domain.PDFLoader,
	cfg domain.AnalyzerConfig,
	log domain.Logger,
) *AnalyzeService {
	return &AnalyzeService{
		opener: opener,
		loader: loader,
		cfg:    cfg.WithDefaults(),
		log:    log,
	}
}

// WithCache makes Analyze reuse reports stored under dir for identical
// content analyzed with the same configuration.
func (s *AnalyzeService) WithCache(cache domain.ReportCache, dir string) *AnalyzeService {
	s.cache = cache
	s.cacheDir = dir
	return s
}

// Config returns the effective configuration, defaults applied.
func (s *AnalyzeService) Config() domain.AnalyzerConfig { return s.cfg }

// Analyze produces a Report for one document held in memory. Only an
// unsupported type or an unopenable container is an error; anything a check
// cannot read becomes a finding.
func (s *AnalyzeService) Analyze(ctx context.Context, fileName, mime string, data []byte) (*domain.Report, error) {
	ft, err := domain.ParseFileType(mime)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	s.log.Debug("analysis started", "run_id", runID, "file", fileName, "type", string(ft), "bytes", len(data))

	var key string
	if s.cache != nil {
		key = s.cacheKey(ft, data)
		cached, err := s.cache.Load(s.cacheDir, key)
		if err != nil {
			s.log.Warn("reading report cache failed", "run_id", runID, "file", fileName, "error", err)
		}
		if cached != nil {
			s.log.Debug("report cache hit", "run_id", runID, "file", fileName, "key", key)
			cached.FileName = fileName
			return cached, nil
		}
	}

	var (
		results []rules.Result
		meta    domain.Metadata
	)
	switch ft {
	case domain.FileTypeDOCX:
		pkg, err := s.opener.Open(data)
		if err != nil {
			s.log.Error("opening document failed", "run_id", runID, "file", fileName, "error", err)
			return nil, fmt.Errorf("opening %s: %w", fileName, err)
		}
		results, meta = docx.Analyze(pkg, s.cfg)
	case domain.FileTypePDF:
		doc, err := s.loader.Load(data)
		if err != nil {
			s.log.Error("opening document failed", "run_id", runID, "file", fileName, "error", err)
			return nil, fmt.Errorf("opening %s: %w", fileName, err)
		}
		results, meta = pdf.Analyze(doc, s.cfg)
	}

	findings := rules.Collect(func(r rules.Result) {
		s.log.Warn("check degraded",
			"run_id", runID,
			"file", fileName,
			"check", r.Rule.ID,
			"part", r.Skip.Part,
			"error", r.Skip.Err,
		)
	}, results...)

	report := domain.NewReport(fileName, ft, findings, meta)
	s.log.Info("analysis finished",
		"run_id", runID,
		"file", fileName,
		"score", report.ComplianceScore,
		"passed", report.PassedChecks,
		"total", report.TotalChecks,
	)

	if s.cache != nil {
		if err := s.cache.Save(s.cacheDir, key, report); err != nil {
			s.log.Warn("writing report cache failed", "run_id", runID, "file", fileName, "error", err)
		}
	}
	return report, nil
}

// cacheKey digests the file type, the effective configuration and the
// content, so a config change never serves a stale report.
func (s *AnalyzeService) cacheKey(ft domain.FileType, data []byte) string {
	h := sha256.New()
	h.Write([]byte(ft))
	cfg, _ := json.Marshal(s.cfg)
	h.Write(cfg)
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}
