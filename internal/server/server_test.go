package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/hyoaru/ghost-as-a-service/internal/agent"
	"github.com/hyoaru/ghost-as-a-service/internal/repository"
	"github.com/hyoaru/ghost-as-a-service/internal/service"
)

func TestMain(m *testing.M) {
	// go.opencensus.io (a transitive dependency of google.golang.org/genai)
	// starts a background worker in package init that never exits.
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"))
}

// stubClient satisfies agent.LLMClient for handler tests.
type stubClient struct {
	completion agent.Completion
	err        error
}

func (s *stubClient) Complete(ctx context.Context, prompt string) (agent.Completion, error) {
	return s.CompleteWithSystem(ctx, "", prompt)
}

func (s *stubClient) CompleteWithSystem(ctx context.Context, systemPrompt, userPrompt string) (agent.Completion, error) {
	if s.err != nil {
		return agent.Completion{}, s.err
	}
	return s.completion, nil
}

func newAgentBackedServer(t *testing.T, client agent.LLMClient) *Server {
	t.Helper()
	a, err := agent.NewExcuseAgentWithClient(agent.Config{APIKey: "test-key"}, client)
	require.NoError(t, err)
	svc := service.NewExcuseService(repository.NewAgentRepository(a), nil)
	return New(svc, nil, Options{RequestTimeout: time.Second})
}

func postExcuse(t *testing.T, handler http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/excuse", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleGenerate_Success(t *testing.T) {
	srv := newAgentBackedServer(t, &stubClient{completion: agent.Completion{
		Text:   "I'm buried in Q3 planning.",
		Model:  "gemini-1.5-flash",
		Tokens: 18,
	}})

	rec := postExcuse(t, srv.Routes(), `{"request": "Can you help me move this weekend?"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Excuse   string `json:"excuse"`
		Metadata *struct {
			Model  string `json:"model"`
			Tokens int    `json:"tokens"`
		} `json:"metadata"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "I'm buried in Q3 planning.", resp.Excuse)
	require.NotNil(t, resp.Metadata)
	assert.Equal(t, "gemini-1.5-flash", resp.Metadata.Model)
	assert.Equal(t, 18, resp.Metadata.Tokens)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestHandleGenerate_EmptyRequest(t *testing.T) {
	srv := newAgentBackedServer(t, &stubClient{})

	for _, body := range []string{`{"request": ""}`, `{"request": "   "}`, `{}`} {
		rec := postExcuse(t, srv.Routes(), body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)

		var resp struct {
			Kind string `json:"kind"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "invalid_request", resp.Kind)
	}
}

func TestHandleGenerate_MalformedJSON(t *testing.T) {
	srv := newAgentBackedServer(t, &stubClient{})

	rec := postExcuse(t, srv.Routes(), `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleGenerate_BackendFailure(t *testing.T) {
	srv := newAgentBackedServer(t, &stubClient{err: errors.New("upstream quota exceeded")})

	rec := postExcuse(t, srv.Routes(), `{"request": "dinner friday"}`)
	assert.Equal(t, http.StatusBadGateway, rec.Code)

	var resp struct {
		Kind string `json:"kind"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ai_service", resp.Kind)
}

func TestHandleGenerate_StaticProviderOmitsMetadata(t *testing.T) {
	repo, err := repository.NewStaticRepository([]string{"canned excuse"})
	require.NoError(t, err)
	svc := service.NewExcuseService(repo, nil)
	srv := New(svc, nil, Options{})

	rec := postExcuse(t, srv.Routes(), `{"request": "come to my party"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "canned excuse", resp["excuse"])
	_, hasMetadata := resp["metadata"]
	assert.False(t, hasMetadata, "static provider must omit metadata")
}

func TestHandleHealth(t *testing.T) {
	srv := newAgentBackedServer(t, &stubClient{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListenAndServe_GracefulShutdown(t *testing.T) {
	srv := newAgentBackedServer(t, &stubClient{})
	srv.httpServer.Addr = "127.0.0.1:0"

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.ListenAndServe(ctx) }()

	// Give the listener a moment, then trigger shutdown.
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
