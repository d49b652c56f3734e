package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/storecraft/storefront/internal/adapters/inbound/http/middleware"
	"github.com/storecraft/storefront/internal/config"
	"github.com/storecraft/storefront/pkg/logger"
	"github.com/stretchr/testify/suite"
	"github.com/throttled/throttled/v2/store/memstore"
)

type RateLimitingTestSuite struct {
	suite.Suite
	log    logger.Logger
	config config.ThrottledRateLimiting
}

func TestRateLimitingTestSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(RateLimitingTestSuite))
}

func (s *RateLimitingTestSuite) SetupTest() {
	s.log = logger.NewTestLogger()
	s.config = config.ThrottledRateLimiting{
		Enabled:           true,
		RequestsPerSecond: 10,
		BurstSize:         5,
		MaxKeys:           100,
		CleanupInterval:   time.Minute,
		SkipPaths:         []string{"/v1/health", "/v1/liveness", "/v1/readiness"},
	}
}

func (s *RateLimitingTestSuite) TestAllowsRequestsUnderLimit() {
	s.T().Parallel()

	store, err := memstore.NewCtx(100)
	s.Require().NoError(err)

	handler := middleware.ThrottledRateLimitingMiddleware(s.config, store, s.log)(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
	)

	req := httptest.NewRequest(http.MethodGet, "/v1/products", nil)
	req.RemoteAddr = "192.168.1.1:12345"
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	s.Require().Equal(http.StatusOK, rec.Code)
}

func (s *RateLimitingTestSuite) TestBlocksRequestsOverLimit() {
	s.T().Parallel()

	store, err := memstore.NewCtx(100)
	s.Require().NoError(err)

	cfg := s.config
	cfg.RequestsPerSecond = 1
	cfg.BurstSize = 0

	handler := middleware.ThrottledRateLimitingMiddleware(cfg, store, s.log)(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
	)

	req := httptest.NewRequest(http.MethodGet, "/v1/products", nil)
	req.RemoteAddr = "192.168.1.2:12345"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	s.Require().Equal(http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/v1/products", nil)
	req.RemoteAddr = "192.168.1.2:12345"
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	s.Require().Equal(http.StatusTooManyRequests, rec.Code)
	s.Require().NotEmpty(rec.Header().Get("Retry-After"))
}

func (s *RateLimitingTestSuite) TestSeparateClientsLimitedIndependently() {
	s.T().Parallel()

	store, err := memstore.NewCtx(100)
	s.Require().NoError(err)

	cfg := s.config
	cfg.RequestsPerSecond = 1
	cfg.BurstSize = 0

	handler := middleware.ThrottledRateLimitingMiddleware(cfg, store, s.log)(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
	)

	first := httptest.NewRequest(http.MethodGet, "/v1/products", nil)
	first.RemoteAddr = "192.168.1.3:12345"
	firstRec := httptest.NewRecorder()
	handler.ServeHTTP(firstRec, first)
	s.Require().Equal(http.StatusOK, firstRec.Code)

	second := httptest.NewRequest(http.MethodGet, "/v1/products", nil)
	second.RemoteAddr = "192.168.1.4:12345"
	secondRec := httptest.NewRecorder()
	handler.ServeHTTP(secondRec, second)
	s.Require().Equal(http.StatusOK, secondRec.Code)
}

func (s *RateLimitingTestSuite) TestSkipPathsBypassRateLimiting() {
	s.T().Parallel()

	store, err := memstore.NewCtx(100)
	s.Require().NoError(err)

	cfg := s.config
	cfg.RequestsPerSecond = 1
	cfg.BurstSize = 0

	handler := middleware.ThrottledRateLimitingMiddleware(cfg, store, s.log)(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
	)

	for index := 0; index < 5; index++ {
		req := httptest.NewRequest(http.MethodGet, "/v1/health", nil)
		req.RemoteAddr = "192.168.1.100:12345"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		s.Require().Equal(http.StatusOK, rec.Code, "request %d should not be rate limited", index+1)
	}
}

func (s *RateLimitingTestSuite) TestRateLimitHeadersAreSet() {
	s.T().Parallel()

	store, err := memstore.NewCtx(100)
	s.Require().NoError(err)

	handler := middleware.ThrottledRateLimitingMiddleware(s.config, store, s.log)(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
	)

	req := httptest.NewRequest(http.MethodGet, "/v1/products", nil)
	req.RemoteAddr = "192.168.1.5:12345"
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	s.Require().NotEmpty(rec.Header().Get(middleware.RateLimitLimitHeader))
	s.Require().NotEmpty(rec.Header().Get(middleware.RateLimitRemainingHeader))
	s.Require().NotEmpty(rec.Header().Get(middleware.RateLimitResetHeader))
}
