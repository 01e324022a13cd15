package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRateLimit(t *testing.T) {
	rl := NewRateLimiter(1, 2)

	r := gin.New()
	r.Use(rl.RateLimit())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	do := func() int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		return w.Code
	}

	// Bucket of 2: first two pass, third is rejected.
	if code := do(); code != http.StatusOK {
		t.Errorf("request 1: got %d", code)
	}
	if code := do(); code != http.StatusOK {
		t.Errorf("request 2: got %d", code)
	}
	if code := do(); code != http.StatusTooManyRequests {
		t.Errorf("request 3: got %d, want 429", code)
	}
}

func TestRateLimitPerIP(t *testing.T) {
	rl := NewRateLimiter(1, 1)

	r := gin.New()
	r.Use(rl.RateLimit())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	do := func(addr string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		r.ServeHTTP(w, req)
		return w.Code
	}

	if code := do("10.0.0.1:1"); code != http.StatusOK {
		t.Errorf("first IP: got %d", code)
	}
	if code := do("10.0.0.2:1"); code != http.StatusOK {
		t.Errorf("second IP should have its own bucket: got %d", code)
	}
}

func TestRateLimiterPrune(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	rl.tokens["10.0.0.1"] = 1
	rl.lastRefill["10.0.0.1"] = time.Now().Add(-time.Hour)

	rl.Prune(30 * time.Minute)

	if _, exists := rl.tokens["10.0.0.1"]; exists {
		t.Error("stale bucket not pruned")
	}
}

func TestErrorHandlerRecovers(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("got %d, want 500", w.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	r := gin.New()
	r.Use(CORS())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/", nil))

	if w.Code != http.StatusNoContent {
		t.Errorf("preflight: got %d, want 204", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Allow-Origin = %q", got)
	}
}
