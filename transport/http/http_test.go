package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"daily/config"
	"daily/infras/otel/mocks"
	memoService "daily/internal/domains/memo/service/mocks"
	"daily/internal/handlers/memo"
	"daily/shared/constant"
	"daily/shared/envelope"
	"daily/transport/http/middleware"
	"daily/transport/http/router"
)

func newServer(t *testing.T, conf *config.Config) (*HTTP, *memoService.MockMemo) {
	t.Helper()

	svc := memoService.NewMockMemo(gomock.NewController(t))
	ot := mocks.NewOtel()

	r := router.New(router.DomainHandlers{Memo: memo.New(svc, ot)})

	return New(conf, r, middleware.NewAppMiddleware(ot, conf, nil)), svc
}

func serve(h *HTTP, method, url string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handler().ServeHTTP(rec, httptest.NewRequest(method, url, nil))

	return rec
}

func TestHealth(t *testing.T) {
	h, _ := newServer(t, &config.Config{})

	tests := []struct {
		name       string
		state      ServerState
		wantStatus int
		wantBody   string
	}{
		{name: "ready", state: ServerStateReady, wantStatus: http.StatusOK, wantBody: constant.ResponseHealthy},
		{name: "grace", state: ServerStateInGracePeriod, wantStatus: http.StatusServiceUnavailable, wantBody: constant.ResponseErrorPrepareShutdown},
		{name: "cleanup", state: ServerStateInCleanupPeriod, wantStatus: http.StatusServiceUnavailable, wantBody: constant.ResponseErrorUnhealthy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h.Handler()
			h.setState(tt.state)

			rec := serve(h, http.MethodGet, healthPath)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, `{"message":"`+tt.wantBody+`"}`, rec.Body.String())
		})
	}
}

func TestRoutesMountedUnderAPI(t *testing.T) {
	h, svc := newServer(t, &config.Config{})
	svc.EXPECT().GetAll(gomock.Any()).Return(envelope.New(envelope.Success, "fetched all memos", []any{}))

	rec := serve(h, http.MethodGet, "/api/Memo/GetAllMemoList")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"resultCode":1,"msg":"fetched all memos","resultData":[]}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(constant.RequestHeaderRequestID))

	assert.Equal(t, http.StatusNotFound, serve(h, http.MethodGet, "/Memo/GetAllMemoList").Code)
}

func TestRateLimitedAPI(t *testing.T) {
	conf := &config.Config{}
	conf.App.RateLimiter.Enable = true
	conf.App.RateLimiter.Backend = constant.RateLimiterBackendMemory
	conf.App.RateLimiter.MaxRequests = 1
	conf.App.RateLimiter.WindowSeconds = 60

	h, svc := newServer(t, conf)
	svc.EXPECT().GetAll(gomock.Any()).Return(envelope.New(envelope.Success, "fetched all memos", nil)).Times(1)

	assert.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/api/Memo/GetAllMemoList").Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(h, http.MethodGet, "/api/Memo/GetAllMemoList").Code)

	// health checks are not rate limited
	assert.Equal(t, http.StatusOK, serve(h, http.MethodGet, healthPath).Code)
}

func TestMetricsEndpoint(t *testing.T) {
	conf := &config.Config{}
	conf.App.Metrics.Enable = true

	h, _ := newServer(t, conf)

	rec := serve(h, http.MethodGet, defaultMetricsPath)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "daily_http_inflight_requests")
}
