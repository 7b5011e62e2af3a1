package api

import (
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mesa-app/mesa/internal/config"
	"github.com/mesa-app/mesa/internal/database"
	"github.com/mesa-app/mesa/internal/database/models"
	"github.com/mesa-app/mesa/internal/database/repository"
	"github.com/mesa-app/mesa/internal/database/service"
	"github.com/mesa-app/mesa/internal/handler"
	"github.com/mesa-app/mesa/internal/logger"
	"github.com/mesa-app/mesa/internal/middleware"
	"github.com/mesa-app/mesa/internal/session"
	"github.com/mesa-app/mesa/internal/testutil"
	"github.com/mesa-app/mesa/internal/views"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testApp struct {
	server *httptest.Server
	client *http.Client
	db     *gorm.DB
	store  *database.MemoryStore
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	db := testutil.NewTestDB(t)
	log := logger.Discard()
	cfg := &config.Config{AppEnv: "development", SecretKey: "test-secret", SessionLifetime: 3600}

	store := database.NewMemoryStore()
	sessions := session.NewManager(store, cfg, log)
	metrics := middleware.NewMetrics()
	authService := service.NewAuthService(repository.NewUserRepository(db), nil, log)

	tmpl, err := views.Load()
	require.NoError(t, err)

	router := SetupRouter(
		handler.NewAuthHandler(authService, sessions, metrics, log),
		handler.NewHealthHandler(db, log),
		sessions,
		metrics,
		tmpl,
		log,
	)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &testApp{
		server: server,
		client: &http.Client{Jar: jar},
		db:     db,
		store:  store,
	}
}

func (a *testApp) post(t *testing.T, path string, form url.Values) (int, string) {
	t.Helper()
	resp, err := a.client.PostForm(a.server.URL+path, form)
	require.NoError(t, err)
	return readBody(t, resp)
}

func (a *testApp) get(t *testing.T, path string) (int, string) {
	t.Helper()
	resp, err := a.client.Get(a.server.URL + path)
	require.NoError(t, err)
	return readBody(t, resp)
}

func readBody(t *testing.T, resp *http.Response) (int, string) {
	t.Helper()
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func juanForm() url.Values {
	return url.Values{
		"nombre":   {"Juan"},
		"apellido": {"Perez"},
		"email":    {"juan@test.com"},
		"password": {"123456"},
	}
}

func TestAccountFlow_EndToEnd(t *testing.T) {
	app := newTestApp(t)

	// Register: redirected home with a welcome notice, not logged in
	status, body := app.post(t, "/register", juanForm())
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "¡Bienvenido Juan! Tu cuenta ha sido creada exitosamente.")
	assert.NotContains(t, body, "Cerrar sesión")

	var user models.User
	require.NoError(t, app.db.Where("email = ?", "juan@test.com").First(&user).Error)
	assert.True(t, user.CheckPassword("123456"))
	assert.False(t, user.CheckPassword("wrong"))
	assert.Equal(t, models.StatusActive, user.Status)

	// The notice is shown once
	_, body = app.get(t, "/")
	assert.NotContains(t, body, "¡Bienvenido Juan!")

	// Wrong password: no session identity
	status, body = app.post(t, "/login", url.Values{"email": {"juan@test.com"}, "password": {"wrong"}})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Contains(t, body, "Credenciales incorrectas. Inténtalo de nuevo.")
	assert.NotContains(t, body, "Hola, Juan Perez")

	// Correct password
	status, body = app.post(t, "/login", url.Values{"email": {"juan@test.com"}, "password": {"123456"}})
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "¡Bienvenido de vuelta!")
	assert.Contains(t, body, "Hola, Juan Perez")

	_, body = app.get(t, "/")
	assert.Contains(t, body, "Hola, Juan Perez")

	// Logout, twice
	for range 2 {
		status, body = app.get(t, "/logout")
		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, "Has cerrado sesión correctamente.")
		assert.NotContains(t, body, "Hola, Juan Perez")
	}

	_, body = app.get(t, "/")
	assert.NotContains(t, body, "Hola, Juan Perez")
}

func TestAccountFlow_DuplicateRegistration(t *testing.T) {
	app := newTestApp(t)
	form := url.Values{"nombre": {"A"}, "apellido": {"B"}, "email": {"a@b.com"}, "password": {"x"}}

	status, _ := app.post(t, "/register", form)
	assert.Equal(t, http.StatusOK, status)

	status, body := app.post(t, "/register", form)
	assert.Equal(t, http.StatusConflict, status)
	assert.Contains(t, body, "Este correo electrónico ya está registrado.")

	assert.Equal(t, int64(1), testutil.CountRows(t, app.db, "users"))
}

func TestAccountFlow_SessionRotatesOnLogin(t *testing.T) {
	app := newTestApp(t)
	app.client.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}

	serverURL, err := url.Parse(app.server.URL)
	require.NoError(t, err)

	// The welcome notice is held in an anonymous session until the next page
	status, _ := app.post(t, "/register", juanForm())
	require.Equal(t, http.StatusSeeOther, status)
	before := app.client.Jar.Cookies(serverURL)
	require.Len(t, before, 1)
	assert.Equal(t, 1, app.store.Len())

	status, _ = app.post(t, "/login", url.Values{"email": {"juan@test.com"}, "password": {"123456"}})
	require.Equal(t, http.StatusSeeOther, status)
	after := app.client.Jar.Cookies(serverURL)
	require.Len(t, after, 1)

	assert.NotEqual(t, before[0].Value, after[0].Value)
	assert.Equal(t, 1, app.store.Len(), "the pre-login session is dropped")
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)

	status, body := app.get(t, "/health")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"status":"ok","database":"up"}`, body)

	require.NoError(t, database.Close(app.db))
	status, _ = app.get(t, "/health")
	assert.Equal(t, http.StatusServiceUnavailable, status)
}

func TestMetricsEndpoint(t *testing.T) {
	app := newTestApp(t)
	app.post(t, "/login", url.Values{"email": {"nadie@test.com"}, "password": {"x"}})

	status, body := app.get(t, "/metrics")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `mesa_account_events_total{event="login",result="failure"} 1`)
	assert.Contains(t, body, "mesa_http_requests_total")
}

func TestUnknownRoute(t *testing.T) {
	app := newTestApp(t)
	status, _ := app.get(t, "/nope")
	assert.Equal(t, http.StatusNotFound, status)
}
