package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/codecpt/portfolio-api/internal/domain/user"
	"github.com/codecpt/portfolio-api/internal/http/middlewares"
	"github.com/codecpt/portfolio-api/internal/observability"
	"github.com/codecpt/portfolio-api/internal/security"
	"github.com/codecpt/portfolio-api/internal/session"
	"github.com/codecpt/portfolio-api/internal/store"
)

type UserGetter interface {
	GetUserByUsername(ctx context.Context, username string) (user.User, error)
}

type AuthHandler struct {
	users    UserGetter
	sessions *session.Manager
	log      *slog.Logger
	prom     *observability.Prom
	secure   bool
}

func NewAuthHandler(users UserGetter, sessions *session.Manager, log *slog.Logger, prom *observability.Prom, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		users:    users,
		sessions: sessions,
		log:      log,
		prom:     prom,
		secure:   secureCookies,
	}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type sessionUser struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Login verifies credentials and issues the session cookie. Unknown users
// and bad passwords produce the same response so usernames can't be probed.
func (h *AuthHandler) Login(ctx *gin.Context) {
	var req loginRequest

	if !BindJSON(ctx, &req) {
		h.countLogin("invalid_input")
		return
	}

	u, err := h.users.GetUserByUsername(ctx.Request.Context(), req.Username)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			h.countLogin("invalid_credentials")
			RespondUnauthorized(ctx, "Invalid credentials")
			return
		}

		h.log.ErrorContext(ctx.Request.Context(), "login user lookup failed", "error", err)
		h.countLogin("error")
		RespondInternal(ctx, "Login failed")
		return
	}

	if err := security.CheckPassword(u.PasswordHash, req.Password); err != nil {
		h.countLogin("invalid_credentials")
		RespondUnauthorized(ctx, "Invalid credentials")
		return
	}

	// only admins get sessions; there is nothing else to log in to
	if u.Role != user.RoleAdmin {
		h.countLogin("forbidden")
		RespondForbidden(ctx, "Access denied - Admin only")
		return
	}

	token, err := h.sessions.Create(ctx.Request.Context(), u.ID, u.Username, u.Role)

	if err != nil {
		h.log.ErrorContext(ctx.Request.Context(), "session create failed", "error", err)
		h.countLogin("error")
		RespondInternal(ctx, "Login failed")
		return
	}

	h.setSessionCookie(ctx, token, int(h.sessions.TTL().Seconds()))
	h.countLogin("ok")

	h.log.InfoContext(ctx.Request.Context(), "user logged in",
		"user_id", u.ID,
		"username", u.Username,
	)

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    sessionUser{ID: u.ID, Username: u.Username, Role: u.Role},
	})
}

// Logout destroys the server-side session and clears the cookie. Always
// succeeds: a missing or stale cookie leaves nothing to do.
func (h *AuthHandler) Logout(ctx *gin.Context) {
	token, err := ctx.Cookie(middlewares.CookieName)

	if err == nil && token != "" {
		if err := h.sessions.Destroy(ctx.Request.Context(), token); err != nil {
			h.log.ErrorContext(ctx.Request.Context(), "session destroy failed", "error", err)
		}
	}

	h.setSessionCookie(ctx, "", -1)

	ctx.JSON(http.StatusOK, gin.H{"success": true})
}

// Status reports whether the caller holds a live session. It is public and
// never errors toward the client.
func (h *AuthHandler) Status(ctx *gin.Context) {
	token, err := ctx.Cookie(middlewares.CookieName)

	if err != nil || token == "" {
		ctx.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}

	sess, ok, err := h.sessions.Get(ctx.Request.Context(), token)

	if err != nil {
		h.log.ErrorContext(ctx.Request.Context(), "session lookup failed", "error", err)
	}

	if err != nil || !ok {
		ctx.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"user": gin.H{
			"id":       sess.UserID,
			"username": sess.Username,
		},
	})
}

func (h *AuthHandler) setSessionCookie(ctx *gin.Context, token string, maxAge int) {
	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     middlewares.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		Expires:  cookieExpiry(maxAge),
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteStrictMode,
	})
}

func cookieExpiry(maxAge int) time.Time {
	if maxAge < 0 {
		return time.Unix(0, 0)
	}

	return time.Now().Add(time.Duration(maxAge) * time.Second)
}

func (h *AuthHandler) countLogin(result string) {
	if h.prom != nil {
		h.prom.LoginsTotal.WithLabelValues(result).Inc()
	}
}
