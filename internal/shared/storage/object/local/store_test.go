package local

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreSaveAndOpen(t *testing.T) {
	store := New(t.TempDir())
	ctx := context.Background()

	key, size, err := store.Save(ctx, "resume.pdf", "application/pdf", strings.NewReader("pdf bytes"))
	require.NoError(t, err)
	assert.EqualValues(t, 9, size)
	assert.Contains(t, key, "resume.pdf")

	rc, err := store.Open(ctx, key)
	require.NoError(t, err)
	defer rc.Close()

	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "pdf bytes", string(body))
}

func TestStoreSaveWithKey(t *testing.T) {
	store := New(t.TempDir())
	ctx := context.Background()

	size, err := store.SaveWithKey(ctx, "abc_resume.pdf.extracted.txt", "text/plain", strings.NewReader("parsed"))
	require.NoError(t, err)
	assert.EqualValues(t, 6, size)

	rc, err := store.Open(ctx, "abc_resume.pdf.extracted.txt")
	require.NoError(t, err)
	defer rc.Close()

	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "parsed", string(body))
}

func TestStoreRejectsTraversalKeys(t *testing.T) {
	store := New(t.TempDir())
	ctx := context.Background()

	_, err := store.SaveWithKey(ctx, "../escape.txt", "", strings.NewReader("x"))
	assert.Error(t, err)

	_, err = store.Open(ctx, "/etc/passwd")
	assert.Error(t, err)
}

func TestStoreSaveRejectsBadFileName(t *testing.T) {
	store := New(t.TempDir())

	_, _, err := store.Save(context.Background(), "../../evil.pdf", "", strings.NewReader("x"))
	assert.Error(t, err)
}
