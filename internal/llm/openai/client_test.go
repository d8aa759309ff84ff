package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-checker/internal/llm"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient("test-key", "test-model")
	require.NoError(t, err)
	client.apiURL = srv.URL
	return client
}

func TestNewClientRequiresKeyAndModel(t *testing.T) {
	_, err := NewClient("", "model")
	assert.Error(t, err)

	_, err = NewClient("key", "  ")
	assert.Error(t, err)
}

func TestScoreResumeReturnsRawJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req["model"])
		assert.Equal(t, map[string]any{"type": "json_object"}, req["response_format"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": `{"atsScore": 82}`}},
			},
		})
	})

	raw, err := client.ScoreResume(context.Background(), llm.ScoreInput{
		ResumeText: "text",
		FileName:   "resume.pdf",
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"atsScore": 82}`, string(raw))
}

func TestScoreResumeStripsMarkdownFences(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "```json\n{\"overallGrade\":\"B\"}\n```"}},
			},
		})
	})

	raw, err := client.ScoreResume(context.Background(), llm.ScoreInput{ResumeText: "text", FileName: "r.pdf"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"overallGrade":"B"}`, string(raw))
}

func TestScoreResumeAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "bad key", "type": "invalid_request_error"},
		})
	})

	_, err := client.ScoreResume(context.Background(), llm.ScoreInput{ResumeText: "text", FileName: "r.pdf"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad key")
}

func TestScoreResumeRejectsNonJSONReply(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "sorry, I cannot help"}},
			},
		})
	})

	_, err := client.ScoreResume(context.Background(), llm.ScoreInput{ResumeText: "text", FileName: "r.pdf"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JSON")
}

func TestStripFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripFences("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripFences(`{"a":1}`))
}
