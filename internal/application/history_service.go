package application

import (
	"time"

	"github.com/WojciechSzmit/wcag/internal/domain"
)

// HistoryService records analysis scores so remediation progress can be
// followed across runs.
type HistoryService struct {
	store domain.ScoreHistory
	git   domain.GitInfo
	now   func() time.Time
}

// NewHistoryService creates a HistoryService. git may be nil; otherwise
// entries carry the HEAD commit of the repository holding dir.
func NewHistoryService(store domain.ScoreHistory, git domain.GitInfo) *HistoryService {
	return &HistoryService{store: store, git: git, now: time.Now}
}

// Record appends one entry per successfully analyzed input. inputs and
// outcomes are parallel slices as returned by BatchService.AnalyzeAll.
func (s *HistoryService) Record(dir string, inputs []Input, outcomes []Outcome) error {
	ts := s.now().UTC().Format(time.RFC3339)
	var commit string
	if s.git != nil && s.git.IsGitRepo(dir) {
		commit, _ = s.git.CommitHash(dir) // best-effort
	}

	entries := make([]domain.ScoreEntry, 0, len(outcomes))
	for i, o := range outcomes {
		if o.Err != nil || o.Report == nil {
			continue
		}
		e := domain.NewScoreEntry(ts, domain.ContentDigest(inputs[i].Data), o.Report)
		e.CommitHash = commit
		entries = append(entries, e)
	}
	if len(entries) == 0 {
		return nil
	}
	return s.store.Save(dir, entries...)
}

// Entries returns the recorded history, oldest first, restricted to file
// when it is non-empty.
func (s *HistoryService) Entries(dir, file string) ([]domain.ScoreEntry, error) {
	all, err := s.store.Load(dir)
	if err != nil {
		return nil, err
	}
	if file == "" {
		return all, nil
	}
	var out []domain.ScoreEntry
	for _, e := range all {
		if e.File == file {
			out = append(out, e)
		}
	}
	return out, nil
}
