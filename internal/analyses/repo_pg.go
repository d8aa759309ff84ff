package analyses

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// PGRepo implements Repo using Postgres. It keeps the same create/read-only
// contract as MemoryRepo.
type PGRepo struct {
	DB *sql.DB
}

// Create assigns an ID and timestamp and inserts the record.
func (r *PGRepo) Create(ctx context.Context, analysis ResumeAnalysis) (ResumeAnalysis, error) {
	analysis.ID = uuid.NewString()
	analysis.CreatedAt = time.Now().UTC()

	resultPayload, err := json.Marshal(analysis.Result)
	if err != nil {
		return ResumeAnalysis{}, err
	}

	const query = `
INSERT INTO resume_analyses (id, file_name, file_size, email, parsed_text, analysis_result, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = r.DB.ExecContext(ctx, query,
		analysis.ID,
		analysis.FileName,
		analysis.FileSize,
		analysis.Email,
		analysis.ParsedText,
		resultPayload,
		analysis.CreatedAt,
	)
	if err != nil {
		return ResumeAnalysis{}, err
	}
	return analysis, nil
}

// GetByID returns an analysis by ID.
func (r *PGRepo) GetByID(ctx context.Context, analysisID string) (ResumeAnalysis, error) {
	const query = `
SELECT id, file_name, file_size, email, parsed_text, analysis_result, created_at
FROM resume_analyses
WHERE id = $1
LIMIT 1`

	var (
		a             ResumeAnalysis
		email         sql.NullString
		resultPayload []byte
	)
	err := r.DB.QueryRowContext(ctx, query, analysisID).Scan(
		&a.ID,
		&a.FileName,
		&a.FileSize,
		&email,
		&a.ParsedText,
		&resultPayload,
		&a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ResumeAnalysis{}, ErrNotFound
		}
		return ResumeAnalysis{}, err
	}
	if email.Valid {
		a.Email = &email.String
	}
	if err := json.Unmarshal(resultPayload, &a.Result); err != nil {
		return ResumeAnalysis{}, err
	}
	return a, nil
}
