package analyses

import "context"

// Repo defines persistence for resume analyses. The contract is create and
// read only: records are never updated or deleted.
type Repo interface {
	// Create assigns a fresh unique ID and creation timestamp, inserts the
	// record and returns it in full.
	Create(ctx context.Context, analysis ResumeAnalysis) (ResumeAnalysis, error)
	// GetByID returns a record or ErrNotFound.
	GetByID(ctx context.Context, analysisID string) (ResumeAnalysis, error)
}
