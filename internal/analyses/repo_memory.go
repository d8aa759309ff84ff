package analyses

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepo stores analyses in process memory and is safe for concurrent
// use. Storage is volatile: records vanish on restart.
type MemoryRepo struct {
	mu   sync.RWMutex
	byID map[string]ResumeAnalysis
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byID: make(map[string]ResumeAnalysis),
	}
}

// Create assigns an ID and timestamp and stores the record.
func (r *MemoryRepo) Create(ctx context.Context, analysis ResumeAnalysis) (ResumeAnalysis, error) {
	if err := ctx.Err(); err != nil {
		return ResumeAnalysis{}, err
	}
	analysis.ID = uuid.NewString()
	analysis.CreatedAt = time.Now().UTC()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[analysis.ID] = analysis
	return analysis, nil
}

// GetByID returns an analysis by its ID.
func (r *MemoryRepo) GetByID(ctx context.Context, analysisID string) (ResumeAnalysis, error) {
	if err := ctx.Err(); err != nil {
		return ResumeAnalysis{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	analysis, ok := r.byID[analysisID]
	if !ok {
		return ResumeAnalysis{}, ErrNotFound
	}
	return analysis, nil
}
