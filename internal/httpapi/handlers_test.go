package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tamtam-chat/tokenizer/internal/telemetry"

	tokenizer "github.com/tamtam-chat/tokenizer"
)

func nopLoggerForTest() *zap.Logger {
	return telemetry.NewNop()
}

func TestHandleTokenize(t *testing.T) {
	logger := nopLoggerForTest()
	handler := handleTokenize(tokenizer.DefaultOptions(), nil, logger)

	body, err := json.Marshal(tokenizeRequest{Text: "hi @bob"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/v1/tokenize", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp tokenizeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Tokens, 2)
	assert.Equal(t, tokenizer.KindText, resp.Tokens[0].Kind)
	assert.Equal(t, tokenizer.KindMention, resp.Tokens[1].Kind)
}

func TestHandleTokenizeBadBody(t *testing.T) {
	logger := nopLoggerForTest()
	handler := handleTokenize(tokenizer.DefaultOptions(), nil, logger)

	req := httptest.NewRequest(http.MethodPost, "/v1/tokenize", bytes.NewReader([]byte("not json")))
	rec := httptest.NewRecorder()
	handler(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleHealthz(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	handleHealthz(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleStatsUnavailable(t *testing.T) {
	handler := handleStats(nil)
	req := httptest.NewRequest(http.MethodGet, "/v1/stats", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandleStatsWithCounter(t *testing.T) {
	counter, mr := setupTestCounter(t)
	defer mr.Close()

	require.NoError(t, counter.Incr(context.Background(), tokenizer.KindLink, 4))

	handler := handleStats(counter)
	req := httptest.NewRequest(http.MethodGet, "/v1/stats", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var snap map[string]int64
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.Equal(t, int64(4), snap["link"])
}
