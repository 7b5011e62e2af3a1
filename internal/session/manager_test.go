package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesa-app/mesa/internal/config"
	"github.com/mesa-app/mesa/internal/database"
	"github.com/mesa-app/mesa/internal/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestManager(t *testing.T) (*Manager, *database.MemoryStore) {
	t.Helper()
	store := database.NewMemoryStore()
	cfg := &config.Config{
		AppEnv:          "development",
		SecretKey:       "test-secret",
		SessionLifetime: 3600,
	}
	return NewManager(store, cfg, logger.Discard()), store
}

// roundTrip commits s and returns a request carrying the resulting cookie
func roundTrip(t *testing.T, m *Manager, s *Session) (*http.Request, *http.Cookie) {
	t.Helper()

	w := httptest.NewRecorder()
	require.NoError(t, m.Commit(context.Background(), w, s))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		return req, nil
	}
	req.AddCookie(cookies[0])
	return req, cookies[0]
}

func TestManager_PersistsIdentity(t *testing.T) {
	m, store := newTestManager(t)
	ctx := context.Background()

	s := m.Load(ctx, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.False(t, s.LoggedIn())

	s.Apply(SetIdentity(1, "Juan Perez"))
	req, cookie := roundTrip(t, m, s)

	require.NotNil(t, cookie)
	assert.Equal(t, CookieName, cookie.Name)
	assert.True(t, cookie.HttpOnly)
	assert.False(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, 3600, cookie.MaxAge)
	assert.Equal(t, 1, store.Len())

	loaded := m.Load(ctx, req)
	assert.True(t, loaded.LoggedIn())
	assert.Equal(t, uint(1), loaded.UserID())
	assert.Equal(t, "Juan Perez", loaded.UserName())
	assert.Equal(t, s.ID(), loaded.ID())
}

func TestManager_SecureCookieInProduction(t *testing.T) {
	store := database.NewMemoryStore()
	m := NewManager(store, &config.Config{AppEnv: "production", SecretKey: "k", SessionLifetime: 60}, logger.Discard())

	s := New()
	s.AddFlash(Flash{Category: FlashInfo, Message: "hola"})
	_, cookie := roundTrip(t, m, s)

	require.NotNil(t, cookie)
	assert.True(t, cookie.Secure)
}

func TestManager_AnonymousWithoutDataSetsNoCookie(t *testing.T) {
	m, store := newTestManager(t)

	s := m.Load(context.Background(), httptest.NewRequest(http.MethodGet, "/", nil))
	_, cookie := roundTrip(t, m, s)

	assert.Nil(t, cookie)
	assert.Zero(t, store.Len())
}

func TestManager_FlashesAreOneShot(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	s := New()
	s.AddFlash(Flash{Category: FlashSuccess, Message: "¡Bienvenido de vuelta!"})
	req, _ := roundTrip(t, m, s)

	next := m.Load(ctx, req)
	flashes := next.PopFlashes()
	require.Len(t, flashes, 1)
	assert.Equal(t, "¡Bienvenido de vuelta!", flashes[0].Message)

	req, cookie := roundTrip(t, m, next)
	require.NotNil(t, cookie)
	assert.Equal(t, -1, cookie.MaxAge, "emptied session expires its cookie")

	assert.Empty(t, m.Load(ctx, req).PopFlashes())
}

func TestManager_RotatesIDOnIdentityChange(t *testing.T) {
	m, store := newTestManager(t)
	ctx := context.Background()

	s := New()
	s.AddFlash(Flash{Category: FlashInfo, Message: "x"})
	req, _ := roundTrip(t, m, s)
	anonymousID := s.ID()

	loaded := m.Load(ctx, req)
	loaded.Apply(SetIdentity(5, "Ana García"))
	assert.NotEqual(t, anonymousID, loaded.ID())
	req, _ = roundTrip(t, m, loaded)

	_, err := store.Load(ctx, anonymousID)
	assert.ErrorIs(t, err, database.ErrSessionNotFound, "pre-login session is dropped")

	loggedIn := m.Load(ctx, req)
	loggedInID := loggedIn.ID()
	loggedIn.Apply(Clear())
	loggedIn.AddFlash(Flash{Category: FlashInfo, Message: "Has cerrado sesión correctamente."})
	req, _ = roundTrip(t, m, loggedIn)

	_, err = store.Load(ctx, loggedInID)
	assert.ErrorIs(t, err, database.ErrSessionNotFound)

	after := m.Load(ctx, req)
	assert.False(t, after.LoggedIn())
	assert.Len(t, after.PopFlashes(), 1)
}

func TestManager_RejectsBadCookies(t *testing.T) {
	m, store := newTestManager(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "00000000-0000-0000-0000-000000000001", []byte(`{"user_id":1,"user_name":"Juan Perez"}`), time.Hour))

	sign := func(key string, method jwt.SigningMethod, sid string, exp time.Time) string {
		claims := cookieClaims{SID: sid, RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(exp)}}
		token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(key))
		require.NoError(t, err)
		return token
	}
	sid := "00000000-0000-0000-0000-000000000001"
	later := time.Now().Add(time.Hour)

	tests := []struct {
		name   string
		value  string
		wantIn bool
	}{
		{name: "valid", value: sign("test-secret", jwt.SigningMethodHS256, sid, later), wantIn: true},
		{name: "garbage", value: "not-a-token"},
		{name: "forged signature", value: sign("other-secret", jwt.SigningMethodHS256, sid, later)},
		{name: "wrong algorithm", value: sign("test-secret", jwt.SigningMethodHS512, sid, later)},
		{name: "expired", value: sign("test-secret", jwt.SigningMethodHS256, sid, time.Now().Add(-time.Minute))},
		{name: "unknown session", value: sign("test-secret", jwt.SigningMethodHS256, "00000000-0000-0000-0000-000000000002", later)},
		{name: "malformed sid", value: sign("test-secret", jwt.SigningMethodHS256, "session:other", later)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.AddCookie(&http.Cookie{Name: CookieName, Value: tt.value})

			s := m.Load(ctx, req)
			assert.Equal(t, tt.wantIn, s.LoggedIn())
			if !tt.wantIn {
				assert.NotEqual(t, sid, s.ID())
			}
		})
	}
}

func TestManager_UnreadablePayload(t *testing.T) {
	m, store := newTestManager(t)
	ctx := context.Background()

	sid := "00000000-0000-0000-0000-0000000000aa"
	require.NoError(t, store.Save(ctx, sid, []byte("{broken"), time.Hour))
	token, err := m.signToken(sid)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})

	s := m.Load(ctx, req)
	assert.False(t, s.LoggedIn())
	assert.NotEqual(t, sid, s.ID())
}

func TestManager_Middleware(t *testing.T) {
	m, _ := newTestManager(t)

	router := gin.New()
	router.Use(m.Middleware())
	router.GET("/login", func(c *gin.Context) {
		s := FromContext(c)
		s.Apply(SetIdentity(9, "Juan Perez"))
		require.NoError(t, m.Commit(c.Request.Context(), c.Writer, s))
		c.Status(http.StatusNoContent)
	})
	router.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, FromContext(c).UserName())
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/login", nil))
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(cookies[0])
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "Juan Perez", w.Body.String())
}

func TestSession_ApplyZeroDelta(t *testing.T) {
	s := New()
	id := s.ID()
	s.Apply(Delta{})

	assert.Equal(t, id, s.ID())
	assert.False(t, s.Dirty())
	assert.True(t, Delta{}.IsZero())
	assert.False(t, Clear().IsZero())
}
