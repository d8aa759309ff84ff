package analyses

import "time"

// ResumeAnalysis is the persisted record for one scored resume. Records are
// created once and never mutated.
type ResumeAnalysis struct {
	ID         string         `json:"id"`
	FileName   string         `json:"fileName"`
	FileSize   int64          `json:"fileSize"`
	Email      *string        `json:"email,omitempty"`
	ParsedText string         `json:"parsedText"`
	Result     AnalysisResult `json:"analysisResult"`
	CreatedAt  time.Time      `json:"createdAt"`
}
