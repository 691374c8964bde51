package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"concierge-router/internal/chat"
	chatUC "concierge-router/internal/chat/usecase"
	"concierge-router/internal/middleware"
	"concierge-router/internal/mode"
	"concierge-router/internal/router"
	"concierge-router/pkg/log"
)

func newTestServer(t *testing.T) *HTTPServer {
	t.Helper()
	l := log.New(zap.NewNop())
	reg := prometheus.NewRegistry()
	modes := mode.NewRegistry(nil)

	uc := chatUC.New(l, router.New(nil, nil, modes), modes, nil, nil, chatUC.Config{}, reg)
	srv, err := New(l, Config{
		Port:        8080,
		Mode:        gin.TestMode,
		Environment: "test",
		ChatUseCase: uc,
		Middleware:  middleware.Config{RateLimitPerMin: 600},
		Gatherer:    reg,
	})
	require.NoError(t, err)
	return srv
}

func serve(srv *HTTPServer, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := serve(srv, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), ServiceName, path)
	}
}

func TestUnknownRoute(t *testing.T) {
	srv := newTestServer(t)

	w := serve(srv, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"error_code":404`)
}

func TestReadyWithoutModes(t *testing.T) {
	srv := newTestServer(t)
	srv.chatUC = noModesUseCase{srv.chatUC}

	w := serve(srv, http.MethodGet, "/ready", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"error_code":503`)
}

type noModesUseCase struct{ chat.UseCase }

func (noModesUseCase) Modes(context.Context) []mode.Mode { return nil }

func TestRouteAndMetrics(t *testing.T) {
	srv := newTestServer(t)

	w := serve(srv, http.MethodPost, "/api/v1/chat/route",
		`{"message":"Search for available Gulfstream aircraft for charter"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"strategy":"workflow-only"`)
	assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))

	w = serve(srv, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `concierge_router_decisions_total{strategy="workflow-only"} 1`)
}

func TestCORS(t *testing.T) {
	l := log.New(zap.NewNop())
	modes := mode.NewRegistry(nil)
	uc := chatUC.New(l, router.New(nil, nil, modes), modes, nil, nil, chatUC.Config{}, prometheus.NewRegistry())
	srv, err := New(l, Config{
		Port:           8080,
		Mode:           gin.TestMode,
		ChatUseCase:    uc,
		AllowedOrigins: []string{"https://app.example.com"},
	})
	require.NoError(t, err)

	preflight := func(origin string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/api/v1/chat/route", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		srv.Handler().ServeHTTP(w, req)
		return w
	}

	w := preflight("https://app.example.com")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	w = preflight("https://evil.example.com")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

type countingTelegram struct {
	calls  int
	waited bool
}

func (h *countingTelegram) HandleWebhook(c *gin.Context) {
	h.calls++
	c.Status(http.StatusOK)
}

func (h *countingTelegram) Wait(ctx context.Context) error {
	h.waited = true
	return nil
}

func TestTelegramWebhookNotRateLimited(t *testing.T) {
	l := log.New(zap.NewNop())
	modes := mode.NewRegistry(nil)
	uc := chatUC.New(l, router.New(nil, nil, modes), modes, nil, nil, chatUC.Config{}, prometheus.NewRegistry())
	tg := &countingTelegram{}
	srv, err := New(l, Config{
		Port:            8080,
		Mode:            gin.TestMode,
		ChatUseCase:     uc,
		Middleware:      middleware.Config{RateLimitPerMin: 1, RateLimitBurst: 1},
		TelegramHandler: tg,
	})
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		w := serve(srv, http.MethodPost, "/webhook/telegram", `{}`)
		assert.Equal(t, http.StatusOK, w.Code)
	}
	assert.Equal(t, 5, tg.calls)
}

func TestMessageWithoutCollaborators(t *testing.T) {
	srv := newTestServer(t)

	w := serve(srv, http.MethodPost, "/api/v1/chat/message", `{"message":"hello there"}`)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestNew_Validation(t *testing.T) {
	l := log.New(zap.NewNop())
	uc := chatUC.New(l, router.New(nil, nil, nil), mode.NewRegistry(nil), nil, nil, chatUC.Config{}, prometheus.NewRegistry())

	tests := []struct {
		name string
		l    log.Logger
		cfg  Config
	}{
		{"no logger", nil, Config{Port: 1, Mode: gin.TestMode, ChatUseCase: uc}},
		{"no mode", l, Config{Port: 1, ChatUseCase: uc}},
		{"no port", l, Config{Mode: gin.TestMode, ChatUseCase: uc}},
		{"no use case", l, Config{Port: 1, Mode: gin.TestMode}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.l, tt.cfg)
			assert.Error(t, err)
		})
	}
}

func TestRun_StopsOnCancel(t *testing.T) {
	srv := newTestServer(t)
	srv.port = 0 // any free port

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	cancel()
	assert.NoError(t, <-done)
}

func TestRun_WaitsForTelegramReplies(t *testing.T) {
	srv := newTestServer(t)
	srv.port = 0
	tg := &countingTelegram{}
	srv.telegramHandler = tg

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	cancel()
	require.NoError(t, <-done)
	assert.True(t, tg.waited)
}
