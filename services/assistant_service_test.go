package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"dbhotel-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGemini returns an httptest server that answers every generateContent
// call with the given candidate text, and the client pointed at it.
func fakeGemini(t *testing.T, text string) (*httptest.Server, *GeminiClient) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		reply := map[string]any{
			"candidates": []map[string]any{{
				"content": map[string]any{
					"parts": []map[string]any{{"text": text}},
				},
			}},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(reply)
	}))
	t.Cleanup(srv.Close)
	return srv, NewGeminiClient(srv.URL, "test-key")
}

func brokenGemini(t *testing.T) *GeminiClient {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "quota exceeded"}`, http.StatusTooManyRequests)
	}))
	t.Cleanup(srv.Close)
	return NewGeminiClient(srv.URL, "test-key")
}

func TestAskRecordsAnswerAndSnapshot(t *testing.T) {
	db := newTestDB(t)
	_, client := fakeGemini(t, "Rooms A101 and A201 are free.")
	svc := NewAssistantService(db, client)

	seedRoom(t, db, "A101", 400, models.RoomAvailable)
	seedRoom(t, db, "A201", 500, models.RoomOccupied)

	entry, err := svc.Ask("Which rooms are free?")
	require.NoError(t, err)

	assert.Equal(t, "Which rooms are free?", entry.Question)
	assert.Equal(t, "Rooms A101 and A201 are free.", entry.Answer)
	assert.Equal(t, models.AssistantSucceeded, entry.Status)

	var snap assistantSnapshot
	require.NoError(t, json.Unmarshal(entry.Context, &snap))
	assert.Len(t, snap.Rooms, 2)
	assert.Equal(t, 2, snap.Summary.TotalRooms)
	assert.Equal(t, 1, snap.Summary.Occupied)
	assert.Equal(t, 1, snap.Summary.Available)
}

func TestAskFallsBackWhenModelUnavailable(t *testing.T) {
	db := newTestDB(t)
	svc := NewAssistantService(db, brokenGemini(t))

	entry, err := svc.Ask("What is total revenue?")
	require.NoError(t, err, "external failures must not surface as errors")

	assert.Equal(t, assistantFallbackAnswer, entry.Answer)
	assert.Equal(t, models.AssistantFailed, entry.Status)

	logs, err := svc.History(10)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, models.AssistantFailed, logs[0].Status)
}

func TestAskRejectsConcurrentQuestion(t *testing.T) {
	db := newTestDB(t)
	_, client := fakeGemini(t, "ok")
	svc := NewAssistantService(db, client)

	svc.pending.Store(true)
	_, err := svc.Ask("second question while the first is in flight")
	assert.ErrorIs(t, err, ErrAssistantBusy)

	svc.pending.Store(false)
	_, err = svc.Ask("retry after the first completes")
	assert.NoError(t, err)
}

func TestHistoryNewestFirstWithLimit(t *testing.T) {
	db := newTestDB(t)
	_, client := fakeGemini(t, "ok")
	svc := NewAssistantService(db, client)

	for _, q := range []string{"first", "second", "third"} {
		_, err := svc.Ask(q)
		require.NoError(t, err)
	}

	logs, err := svc.History(2)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "third", logs[0].Question)
	assert.Equal(t, "second", logs[1].Question)
}
