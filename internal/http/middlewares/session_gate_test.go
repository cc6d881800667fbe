package middlewares_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/codecpt/portfolio-api/internal/http/middlewares"
	"github.com/codecpt/portfolio-api/internal/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeSessions struct {
	sess  session.Session
	found bool
	err   error
}

func (f *fakeSessions) Get(ctx context.Context, token string) (session.Session, bool, error) {
	return f.sess, f.found, f.err
}

func gatedRouter(sessions middlewares.SessionReader) *gin.Engine {
	gate := middlewares.NewSessionGate(sessions)

	r := gin.New()
	r.GET("/admin", gate.RequireAdmin(), func(c *gin.Context) {
		id, _ := middlewares.UserIDFromContext(c)
		name, _ := middlewares.UsernameFromContext(c)

		c.JSON(http.StatusOK, gin.H{"id": id, "username": name})
	})

	return r
}

func TestRequireAdmin(t *testing.T) {
	liveAdmin := session.Session{
		UserID:    1,
		Username:  "admin",
		Role:      "admin",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	tests := []struct {
		name       string
		cookie     string
		sessions   *fakeSessions
		wantStatus int
	}{
		{
			name:       "no cookie",
			sessions:   &fakeSessions{},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unknown token",
			cookie:     "deadbeef",
			sessions:   &fakeSessions{},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "non-admin session",
			cookie: "deadbeef",
			sessions: &fakeSessions{
				sess:  session.Session{UserID: 2, Username: "guest", Role: "user", ExpiresAt: liveAdmin.ExpiresAt},
				found: true,
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "admin session",
			cookie:     "deadbeef",
			sessions:   &fakeSessions{sess: liveAdmin, found: true},
			wantStatus: http.StatusOK,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := gatedRouter(tc.sessions)

			req := httptest.NewRequest(http.MethodGet, "/admin", nil)

			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: middlewares.CookieName, Value: tc.cookie})
			}

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.wantStatus {
				t.Fatalf("got status %d, want %d, body=%s", w.Code, tc.wantStatus, w.Body.String())
			}
		})
	}
}

func TestRequireAdminExpiryViaManager(t *testing.T) {
	store := session.NewMemoryStore()
	manager := session.NewManager(store, time.Hour)

	token, err := manager.Create(context.Background(), 1, "admin", "admin")

	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// backdate the record so the manager treats it as expired
	sess, _, _ := store.Get(context.Background(), token)
	sess.ExpiresAt = time.Now().Add(-time.Minute)
	_ = store.Save(context.Background(), token, sess)

	r := gatedRouter(manager)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: middlewares.CookieName, Value: token})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expired session: got %d, want 401", w.Code)
	}
}
