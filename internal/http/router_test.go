package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/codecpt/portfolio-api/internal/config"
	"github.com/codecpt/portfolio-api/internal/domain/blog"
	httpx "github.com/codecpt/portfolio-api/internal/http"
	"github.com/codecpt/portfolio-api/internal/http/middlewares"
	"github.com/codecpt/portfolio-api/internal/session"
	"github.com/codecpt/portfolio-api/internal/store"
	"github.com/codecpt/portfolio-api/internal/store/memory"
)

func newTestServer(t *testing.T) (http.Handler, *memory.Store) {
	t.Helper()

	mem := memory.NewStore()
	mem.Seed()

	err := store.EnsureAdminUser(context.Background(), mem, "admin", "Sup3rSecret")

	if err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	sessions := session.NewManager(session.NewMemoryStore(), time.Hour)

	router := httpx.NewRouter(httpx.Deps{
		Log:      slog.New(slog.DiscardHandler),
		Store:    mem,
		Sessions: sessions,
		Cfg: config.Config{
			Env:             "test",
			MaxBodyBytes:    1 << 20,
			RateLimit:       100,
			RateLimitWindow: time.Minute,
		},
	})

	return router, mem
}

func doJSON(t *testing.T, h http.Handler, method, path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf *bytes.Buffer

	if body != "" {
		buf = bytes.NewBufferString(body)
	} else {
		buf = &bytes.Buffer{}
	}

	req := httptest.NewRequest(method, path, buf)

	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	if cookie != nil {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	return w
}

func login(t *testing.T, h http.Handler) *http.Cookie {
	t.Helper()

	w := doJSON(t, h, http.MethodPost, "/api/auth/login", `{"username":"admin","password":"Sup3rSecret"}`, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", w.Code, w.Body.String())
	}

	for _, c := range w.Result().Cookies() {
		if c.Name == middlewares.CookieName {
			return c
		}
	}

	t.Fatal("no session cookie")

	return nil
}

func TestAdminGateBlocksThenAllowsAfterLogin(t *testing.T) {
	h, _ := newTestServer(t)

	body := `{"title":"New post","slug":"new-post","excerpt":"e","content":"c","category":"dev"}`

	// anonymous mutation is rejected before the handler runs
	w := doJSON(t, h, http.MethodPost, "/api/blog-posts", body, nil)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous create: got %d, want 401, body=%s", w.Code, w.Body.String())
	}

	var errResp struct {
		Message string `json:"message"`
	}

	if err := json.Unmarshal(w.Body.Bytes(), &errResp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if errResp.Message != "Unauthorized - Please login" {
		t.Fatalf("unexpected message: %q", errResp.Message)
	}

	// same call with a session succeeds
	cookie := login(t, h)

	w = doJSON(t, h, http.MethodPost, "/api/blog-posts", body, cookie)

	if w.Code != http.StatusCreated {
		t.Fatalf("authenticated create: got %d, body=%s", w.Code, w.Body.String())
	}

	var created blog.Post

	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if created.Slug != "new-post" || created.ID == 0 {
		t.Fatalf("unexpected post: %+v", created)
	}

	// and the public listing now contains it
	w = doJSON(t, h, http.MethodGet, "/api/blog-posts/new-post", "", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("public get: got %d", w.Code)
	}
}

func TestPublicReadsNeedNoSession(t *testing.T) {
	h, _ := newTestServer(t)

	paths := []string{
		"/api/blog-posts",
		"/api/projects",
		"/api/tech-stacks",
		"/healthz",
		"/readyz",
	}

	for _, path := range paths {
		w := doJSON(t, h, http.MethodGet, path, "", nil)

		if w.Code != http.StatusOK {
			t.Fatalf("%s: got %d", path, w.Code)
		}
	}
}

func TestContactFormIsPublicAndMessagesAreGated(t *testing.T) {
	h, _ := newTestServer(t)

	w := doJSON(t, h, http.MethodPost, "/api/contact",
		`{"name":"Jo","email":"jo@example.com","subject":"Hi","message":"Hello"}`, nil)

	if w.Code != http.StatusCreated {
		t.Fatalf("contact submit: got %d, body=%s", w.Code, w.Body.String())
	}

	w = doJSON(t, h, http.MethodGet, "/api/contact-messages", "", nil)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous inbox read: got %d, want 401", w.Code)
	}

	cookie := login(t, h)

	w = doJSON(t, h, http.MethodGet, "/api/contact-messages", "", cookie)

	if w.Code != http.StatusOK {
		t.Fatalf("admin inbox read: got %d", w.Code)
	}

	var msgs []json.RawMessage

	if err := json.Unmarshal(w.Body.Bytes(), &msgs); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if len(msgs) != 1 {
		t.Fatalf("got %d messages, want 1", len(msgs))
	}
}

func TestWritesRequireJSONContentType(t *testing.T) {
	h, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewBufferString("name=Jo"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("got %d, want 415", w.Code)
	}
}

func TestLogoutEndsAdminAccess(t *testing.T) {
	h, _ := newTestServer(t)

	cookie := login(t, h)

	w := doJSON(t, h, http.MethodPost, "/api/auth/logout", "", cookie)

	if w.Code != http.StatusOK {
		t.Fatalf("logout: got %d", w.Code)
	}

	w = doJSON(t, h, http.MethodDelete, "/api/tech-stacks/1", "", cookie)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("stale session delete: got %d, want 401", w.Code)
	}
}
