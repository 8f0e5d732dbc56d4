package domain

import (
	"crypto/sha256"
	"encoding/hex"
)

// ScoreEntry is one recorded analysis of a document, used to track
// remediation progress across runs.
type ScoreEntry struct {
	Timestamp  string   `json:"timestamp"`
	CommitHash string   `json:"commitHash,omitempty"`
	File       string   `json:"file"`
	FileType   FileType `json:"fileType"`
	Digest     string   `json:"digest"`
	Score      int      `json:"score"`
	Grade      string   `json:"grade"`
	Failed     int      `json:"failed"`
}

// NewScoreEntry summarizes report for the history.
func NewScoreEntry(timestamp, digest string, report *Report) ScoreEntry {
	return ScoreEntry{
		Timestamp: timestamp,
		File:      report.FileName,
		FileType:  report.FileType,
		Digest:    digest,
		Score:     report.ComplianceScore,
		Grade:     report.Grade(),
		Failed:    report.Counts()[StatusFail],
	}
}

// ContentDigest returns the hex SHA-256 of data.
func ContentDigest(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
