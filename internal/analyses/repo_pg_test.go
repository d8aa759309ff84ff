package analyses

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPGRepoCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO resume_analyses")).
		WithArgs(sqlmock.AnyArg(), "resume.pdf", int64(2048), nil, "parsed text body", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := &PGRepo{DB: db}
	created, err := repo.Create(context.Background(), ResumeAnalysis{
		FileName:   "resume.pdf",
		FileSize:   2048,
		ParsedText: "parsed text body",
		Result:     NormalizeResult(nil),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPGRepoGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	result := NormalizeResult(json.RawMessage(`{"atsScore": 91, "overallGrade": "A"}`))
	payload, err := json.Marshal(result)
	require.NoError(t, err)

	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "file_name", "file_size", "email", "parsed_text", "analysis_result", "created_at"}).
		AddRow("abc-123", "resume.pdf", int64(2048), nil, "parsed text body", payload, createdAt)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, file_name, file_size, email, parsed_text, analysis_result, created_at")).
		WithArgs("abc-123").
		WillReturnRows(rows)

	repo := &PGRepo{DB: db}
	got, err := repo.GetByID(context.Background(), "abc-123")
	require.NoError(t, err)

	assert.Equal(t, "abc-123", got.ID)
	assert.Equal(t, "resume.pdf", got.FileName)
	assert.Nil(t, got.Email)
	assert.Equal(t, 91, got.Result.ATSScore)
	assert.Equal(t, "A", got.Result.OverallGrade)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, file_name")).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	repo := &PGRepo{DB: db}
	_, err = repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPGRepoCreatePropagatesDBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	dbErr := errors.New("connection reset")
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO resume_analyses")).
		WillReturnError(dbErr)

	repo := &PGRepo{DB: db}
	_, err = repo.Create(context.Background(), ResumeAnalysis{FileName: "resume.pdf"})
	assert.ErrorIs(t, err, dbErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}
