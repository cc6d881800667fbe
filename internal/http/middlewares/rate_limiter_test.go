package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/codecpt/portfolio-api/internal/http/middlewares"
)

func limitedRouter(limit int, window time.Duration) *gin.Engine {
	rl := middlewares.NewRateLimiter(limit, window)

	r := gin.New()
	r.POST("/login", rl.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return r
}

func TestRateLimiterBlocksPastTheLimit(t *testing.T) {
	r := limitedRouter(3, time.Minute)

	hit := func() int {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "10.0.0.1:1234"

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		return w.Code
	}

	for i := 0; i < 3; i++ {
		if code := hit(); code != http.StatusOK {
			t.Fatalf("request %d: got %d, want 200", i+1, code)
		}
	}

	if code := hit(); code != http.StatusTooManyRequests {
		t.Fatalf("over limit: got %d, want 429", code)
	}
}

func TestRateLimiterKeysByClient(t *testing.T) {
	r := limitedRouter(1, time.Minute)

	hit := func(addr string) int {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = addr

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		return w.Code
	}

	if code := hit("10.0.0.1:1234"); code != http.StatusOK {
		t.Fatalf("first client: got %d", code)
	}

	if code := hit("10.0.0.1:1234"); code != http.StatusTooManyRequests {
		t.Fatalf("first client second hit: got %d, want 429", code)
	}

	// a different client has its own window
	if code := hit("10.0.0.2:1234"); code != http.StatusOK {
		t.Fatalf("second client: got %d", code)
	}
}

func TestRateLimiterSetsRetryAfter(t *testing.T) {
	r := limitedRouter(1, time.Minute)

	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	req = httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("got %d, want 429", w.Code)
	}

	if w.Header().Get("Retry-After") == "" {
		t.Fatal("missing Retry-After header")
	}
}
