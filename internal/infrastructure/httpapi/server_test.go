package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tifan9/termfolio/internal/application/ask"
	"github.com/tifan9/termfolio/internal/application/contact"
	"github.com/tifan9/termfolio/internal/domain"
	"github.com/tifan9/termfolio/internal/infrastructure/ai"
	"github.com/tifan9/termfolio/internal/infrastructure/storage"
	"github.com/tifan9/termfolio/internal/pkg/logger"
)

func seededStore(t *testing.T) *storage.MemoryStore {
	t.Helper()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Seed(context.Background(), domain.Portfolio{
		CV: domain.CV{Name: "Sophie Uwase"},
		Journal: []domain.JournalEntry{
			{ID: "1", Title: "My Journey into Web Development", Date: "2024-01-15"},
		},
		Profiles: domain.ProfileSet{
			{Label: "Kaggle", URL: "https://kaggle.com/x"},
			{Label: "GitHub", URL: "https://github.com/x"},
			{Label: "Behance", URL: "https://behance.net/x"},
		},
	}))
	return store
}

func newTestServer(t *testing.T, store *storage.MemoryStore, asker Asker) *httptest.Server {
	t.Helper()
	if asker == nil {
		asker = &ask.Service{Answerer: ai.NewRuleAnswerer(domain.AnswerRules{})}
	}
	settings := domain.ServerSettings{CORSOrigin: "*", AskRatePerMinute: 100, ContactRatePerMinute: 100}
	srv := NewServer(settings, store, &contact.Service{Repository: store}, asker, logger.NewNop())
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func do(t *testing.T, method, url, body string) (*http.Response, string) {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(raw)
}

func TestGetCV(t *testing.T) {
	ts := newTestServer(t, seededStore(t), nil)
	resp, body := do(t, http.MethodGet, ts.URL+"/api/cv", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var cv domain.CV
	require.NoError(t, json.Unmarshal([]byte(body), &cv))
	assert.Equal(t, "Sophie Uwase", cv.Name)
}

func TestGetCVNotFound(t *testing.T) {
	ts := newTestServer(t, storage.NewMemoryStore(), nil)
	resp, body := do(t, http.MethodGet, ts.URL+"/api/cv", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"message":"CV data not found"}`, body)
}

func TestGetProfilesPreservesOrder(t *testing.T) {
	ts := newTestServer(t, seededStore(t), nil)
	resp, body := do(t, http.MethodGet, ts.URL+"/api/profiles", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	kaggle := strings.Index(body, "Kaggle")
	github := strings.Index(body, "GitHub")
	behance := strings.Index(body, "Behance")
	assert.True(t, kaggle < github && github < behance, "profiles out of order: %s", body)
}

func TestGetJournalEmptyIsArray(t *testing.T) {
	store := storage.NewMemoryStore()
	ts := newTestServer(t, store, nil)
	_, body := do(t, http.MethodGet, ts.URL+"/api/journal", "")
	assert.JSONEq(t, `[]`, body)
}

func TestPostContact(t *testing.T) {
	store := seededStore(t)
	ts := newTestServer(t, store, nil)

	resp, body := do(t, http.MethodPost, ts.URL+"/api/contact", `{"name":"Ana","email":"ana@example.com","message":"Hello"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var receipt domain.ContactReceipt
	require.NoError(t, json.Unmarshal([]byte(body), &receipt))
	assert.Equal(t, "Message sent successfully!", receipt.Message)
	assert.NotEmpty(t, receipt.ID)

	contacts, err := store.Contacts(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, contacts, 1)
}

func TestPostContactValidation(t *testing.T) {
	ts := newTestServer(t, seededStore(t), nil)
	resp, body := do(t, http.MethodPost, ts.URL+"/api/contact", `{"name":"","email":"nope","message":"Hi"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var parsed errorResponse
	require.NoError(t, json.Unmarshal([]byte(body), &parsed))
	assert.Equal(t, "Validation error", parsed.Message)
	assert.Len(t, parsed.Errors, 2)
}

func TestPostAsk(t *testing.T) {
	ts := newTestServer(t, seededStore(t), nil)
	resp, body := do(t, http.MethodPost, ts.URL+"/api/ask", `{"question":"Tell me about your experience"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var parsed domain.AskResponse
	require.NoError(t, json.Unmarshal([]byte(body), &parsed))
	assert.Contains(t, parsed.Response, "Field Support Officer")
}

func TestPostAskRejectsBadQuestion(t *testing.T) {
	ts := newTestServer(t, seededStore(t), nil)
	for _, payload := range []string{`{}`, `{"question":42}`, `{"question":"   "}`, `not json`} {
		resp, body := do(t, http.MethodPost, ts.URL+"/api/ask", payload)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, payload)
		assert.JSONEq(t, `{"message":"Question is required"}`, body, payload)
	}
}

type failingAsker struct{ panic bool }

func (f failingAsker) Ask(context.Context, string) (domain.Answer, error) {
	if f.panic {
		panic("boom")
	}
	return domain.Answer{}, errors.New("provider exploded")
}

func TestPostAskInternalError(t *testing.T) {
	ts := newTestServer(t, seededStore(t), failingAsker{})
	resp, body := do(t, http.MethodPost, ts.URL+"/api/ask", `{"question":"hi"}`)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.JSONEq(t, `{"message":"Failed to process question"}`, body)
}

func TestRecoveryMiddleware(t *testing.T) {
	ts := newTestServer(t, seededStore(t), failingAsker{panic: true})
	resp, body := do(t, http.MethodPost, ts.URL+"/api/ask", `{"question":"hi"}`)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.JSONEq(t, `{"message":"Internal server error"}`, body)
}

func TestUnknownEndpointAndMethod(t *testing.T) {
	ts := newTestServer(t, seededStore(t), nil)

	resp, body := do(t, http.MethodGet, ts.URL+"/api/unknown", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"message":"Endpoint not found"}`, body)

	resp, body = do(t, http.MethodDelete, ts.URL+"/api/cv", "")
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.JSONEq(t, `{"message":"Method not allowed"}`, body)

	resp, _ = do(t, http.MethodGet, ts.URL+"/api/ask", "")
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestCORSPreflight(t *testing.T) {
	ts := newTestServer(t, seededStore(t), nil)
	resp, _ := do(t, http.MethodOptions, ts.URL+"/api/contact", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Methods"), "POST")
}

func TestRateLimitOnAsk(t *testing.T) {
	store := seededStore(t)
	settings := domain.ServerSettings{AskRatePerMinute: 2}
	srv := NewServer(settings, store, &contact.Service{Repository: store}, &ask.Service{Answerer: ai.NewRuleAnswerer(domain.AnswerRules{})}, logger.NewNop())
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	for i := 0; i < 2; i++ {
		resp, _ := do(t, http.MethodPost, ts.URL+"/api/ask", `{"question":"skills"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}
	resp, _ := do(t, http.MethodPost, ts.URL+"/api/ask", `{"question":"skills"}`)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)

	resp, _ = do(t, http.MethodGet, ts.URL+"/api/cv", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode, "GET routes are not limited")
}

func TestRateLimiterRefills(t *testing.T) {
	limiter := NewRateLimiter(60)
	clock := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return clock }

	for i := 0; i < 60; i++ {
		require.True(t, limiter.Allow("10.0.0.1"))
	}
	assert.False(t, limiter.Allow("10.0.0.1"))
	assert.True(t, limiter.Allow("10.0.0.2"), "limits are per client")

	clock = clock.Add(time.Second)
	assert.True(t, limiter.Allow("10.0.0.1"))
}

func TestServeShutsDownOnCancel(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := NewServer(domain.ServerSettings{}, seededStore(t), &contact.Service{}, &ask.Service{}, logger.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, listener) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + listener.Addr().String() + "/api/cv")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
