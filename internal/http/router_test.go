package http

import (
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"promptcraft/backend/internal/handler"
	"promptcraft/backend/internal/repository"
	"promptcraft/backend/internal/repository/testutil"
	"promptcraft/backend/internal/service"
)

func newTestRouter(t *testing.T, staticDir string) *echo.Echo {
	t.Helper()
	db := testutil.NewTestDB(t)
	folders := repository.NewFolderRepository(db)
	prompts := repository.NewPromptRepository(db)
	users := repository.NewUserRepository(db)
	tx := repository.NewTxManager(db)

	trash := service.NewTrashService(folders, prompts)
	subtree := service.NewSubtreeService(folders, prompts)
	engine := service.NewFolderService(tx, folders, prompts, trash, subtree)
	scoper := service.NewScoper(engine, trash, subtree)
	promptService := service.NewPromptService(tx, prompts, folders)
	authService := service.NewAuthService(tx, users, trash, "router-test-secret", time.Hour)

	return NewRouter(
		authService,
		handler.NewAuthHandler(authService, time.Hour),
		handler.NewFolderHandler(scoper),
		handler.NewPromptHandler(promptService, scoper),
		handler.NewTagHandler(promptService),
		handler.NewAIHandler(service.NewSuggestionService(nil, subtree)),
		handler.NewHealthHandler(db),
		staticDir,
	)
}

func serve(e *echo.Echo, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func register(t *testing.T, e *echo.Echo, username string) string {
	t.Helper()
	rec := serve(e, nethttp.MethodPost, "/api/auth/register", `{"username":"`+username+`","password":"secret123"}`, "")
	require.Equal(t, nethttp.StatusCreated, rec.Code, rec.Body.String())
	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestRouter_Health(t *testing.T) {
	e := newTestRouter(t, "")
	rec := serve(e, nethttp.MethodGet, "/health", "", "")
	require.Equal(t, nethttp.StatusOK, rec.Code)
	require.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestRouter_Swagger(t *testing.T) {
	e := newTestRouter(t, "")
	rec := serve(e, nethttp.MethodGet, "/swagger/doc.json", "", "")
	require.Equal(t, nethttp.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "PromptCraft API")
}

func TestRouter_RequiresToken(t *testing.T) {
	e := newTestRouter(t, "")

	require.Equal(t, nethttp.StatusUnauthorized, serve(e, nethttp.MethodGet, "/api/folders", "", "").Code)
	require.Equal(t, nethttp.StatusUnauthorized, serve(e, nethttp.MethodGet, "/api/folders", "", "not-a-jwt").Code)
	require.Equal(t, nethttp.StatusUnauthorized, serve(e, nethttp.MethodGet, "/api/tags/top", "", "").Code)
}

func TestRouter_RegisterThenUseAPI(t *testing.T) {
	e := newTestRouter(t, "")
	token := register(t, e, "alice")

	rec := serve(e, nethttp.MethodPost, "/api/folders", `{"name":"Work"}`, token)
	require.Equal(t, nethttp.StatusCreated, rec.Code, rec.Body.String())

	rec = serve(e, nethttp.MethodGet, "/api/folders", "", token)
	require.Equal(t, nethttp.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"name":"Work"`)

	// Registration provisioned the Trash folder.
	rec = serve(e, nethttp.MethodGet, "/api/folders/trash", "", token)
	require.Equal(t, nethttp.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"isSystem":true`)

	rec = serve(e, nethttp.MethodPost, "/api/ai/suggest-title", `{"content":"x"}`, token)
	require.Equal(t, nethttp.StatusServiceUnavailable, rec.Code)
}

func TestRouter_OwnersAreIsolated(t *testing.T) {
	e := newTestRouter(t, "")
	alice := register(t, e, "alice")
	bob := register(t, e, "bob")

	rec := serve(e, nethttp.MethodPost, "/api/folders", `{"name":"Private"}`, alice)
	require.Equal(t, nethttp.StatusCreated, rec.Code)
	var folder struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &folder))

	require.Equal(t, nethttp.StatusNotFound, serve(e, nethttp.MethodPut, "/api/folders/"+folder.ID, `{"name":"Mine"}`, bob).Code)
	require.Equal(t, nethttp.StatusNotFound, serve(e, nethttp.MethodDelete, "/api/folders/"+folder.ID, "", bob).Code)

	rec = serve(e, nethttp.MethodGet, "/api/folders", "", bob)
	require.Equal(t, nethttp.StatusOK, rec.Code)
	require.NotContains(t, rec.Body.String(), "Private")
}

func TestRouter_CookieAuth(t *testing.T) {
	e := newTestRouter(t, "")
	token := register(t, e, "alice")

	req := httptest.NewRequest(nethttp.MethodGet, "/api/folders", nil)
	req.AddCookie(&nethttp.Cookie{Name: handler.AuthCookieName, Value: token})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, nethttp.StatusOK, rec.Code)
}

func TestRouter_Static(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>app</html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0o644))
	e := newTestRouter(t, dir)

	rec := serve(e, nethttp.MethodGet, "/", "", "")
	require.Equal(t, nethttp.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "app</html>")

	rec = serve(e, nethttp.MethodGet, "/app.js", "", "")
	require.Equal(t, nethttp.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "console.log")

	rec = serve(e, nethttp.MethodGet, "/folders/123", "", "")
	require.Equal(t, nethttp.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "app</html>")

	rec = serve(e, nethttp.MethodGet, "/api/unknown", "", "")
	require.NotEqual(t, nethttp.StatusOK, rec.Code)
}

func TestBearerToken(t *testing.T) {
	require.Equal(t, "abc", bearerToken("Bearer abc"))
	require.Equal(t, "abc", bearerToken("bearer abc"))
	require.Empty(t, bearerToken("Basic abc"))
	require.Empty(t, bearerToken("abc"))
	require.Empty(t, bearerToken(""))
}
