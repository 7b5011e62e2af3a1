package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/mesa-app/mesa/internal/config"
	"github.com/mesa-app/mesa/internal/database"
)

const (
	CookieName = "mesa_session"
	contextKey = "session"
)

var ErrInvalidCookie = errors.New("invalid session cookie")

type cookieClaims struct {
	SID string `json:"sid"`
	jwt.RegisteredClaims
}

// Manager loads sessions from signed cookies and persists them in a store
type Manager struct {
	store  database.SessionStore
	secret []byte
	ttl    time.Duration
	secure bool
	logger *slog.Logger
}

// NewManager creates a session manager. Cookies are marked Secure in production.
func NewManager(store database.SessionStore, cfg *config.Config, logger *slog.Logger) *Manager {
	return &Manager{
		store:  store,
		secret: []byte(cfg.SecretKey),
		ttl:    cfg.SessionTTL(),
		secure: cfg.IsProduction(),
		logger: logger,
	}
}

func newID() string {
	return uuid.NewString()
}

// Load returns the session named by the request cookie. Missing, forged,
// expired or unknown cookies all yield a fresh anonymous session.
func (m *Manager) Load(ctx context.Context, r *http.Request) *Session {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return newSession(newID())
	}

	sid, err := m.parseToken(cookie.Value)
	if err != nil {
		m.logger.Debug("🍪 [Session] Ignoring session cookie", "error", err)
		return newSession(newID())
	}

	raw, err := m.store.Load(ctx, sid)
	if err != nil {
		if !errors.Is(err, database.ErrSessionNotFound) {
			m.logger.Error("❌ [Session] Failed to load session", "error", err)
		}
		return newSession(newID())
	}

	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		m.logger.Warn("⚠️ [Session] Discarding unreadable session", "error", err)
		return newSession(newID())
	}

	return &Session{id: sid, data: data, stored: true}
}

// Commit persists the session and writes its cookie. It must run before the
// response body is written. An empty session is removed from the store and
// its cookie expired.
func (m *Manager) Commit(ctx context.Context, w http.ResponseWriter, s *Session) error {
	s.committed = true
	hadCookie := s.stored || s.previousID != ""

	if s.previousID != "" {
		if err := m.store.Delete(ctx, s.previousID); err != nil {
			return fmt.Errorf("failed to drop rotated session: %w", err)
		}
		s.previousID = ""
	}

	if !s.dirty {
		return nil
	}

	if s.data.empty() {
		if s.stored {
			if err := m.store.Delete(ctx, s.id); err != nil {
				return fmt.Errorf("failed to delete session: %w", err)
			}
			s.stored = false
		}
		if hadCookie {
			http.SetCookie(w, m.cookie("", -1))
		}
		s.dirty = false
		return nil
	}

	raw, err := json.Marshal(s.data)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := m.store.Save(ctx, s.id, raw, m.ttl); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	token, err := m.signToken(s.id)
	if err != nil {
		return fmt.Errorf("failed to sign session cookie: %w", err)
	}

	http.SetCookie(w, m.cookie(token, int(m.ttl.Seconds())))
	s.stored = true
	s.dirty = false
	return nil
}

func (m *Manager) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func (m *Manager) signToken(sid string) (string, error) {
	now := time.Now()
	claims := cookieClaims{
		SID: sid,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *Manager) parseToken(value string) (string, error) {
	var claims cookieClaims
	token, err := jwt.ParseWithClaims(value, &claims, func(token *jwt.Token) (any, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return "", ErrInvalidCookie
	}
	if _, err := uuid.Parse(claims.SID); err != nil {
		return "", ErrInvalidCookie
	}
	return claims.SID, nil
}

// Middleware loads the session for every request and exposes it through FromContext
func (m *Manager) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		s := m.Load(c.Request.Context(), c.Request)
		c.Set(contextKey, s)

		c.Next()

		if s.dirty && !s.committed {
			m.logger.Warn("⚠️ [Session] Session changed but was never committed",
				"path", c.FullPath(),
			)
		}
	}
}

// FromContext returns the request session loaded by Middleware
func FromContext(c *gin.Context) *Session {
	if v, ok := c.Get(contextKey); ok {
		if s, ok := v.(*Session); ok {
			return s
		}
	}
	return newSession(newID())
}
