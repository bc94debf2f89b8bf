package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/niko9090/glos-italy-website-sub000/internal/config"
)

func editorRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RequireEditor(cfg))
	router.GET("/guarded", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestRequireEditor_ValidHeaderToken(t *testing.T) {
	router := editorRouter(&config.Config{EditorToken: "secret-token"})

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("X-Editor-Token", "secret-token")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200 with valid token, got %d", recorder.Code)
	}
}

func TestRequireEditor_QueryTokenFallback(t *testing.T) {
	router := editorRouter(&config.Config{EditorToken: "secret-token"})

	req := httptest.NewRequest(http.MethodGet, "/guarded?editor_token=secret-token", nil)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200 with query token, got %d", recorder.Code)
	}
}

func TestRequireEditor_WrongTokenRejected(t *testing.T) {
	router := editorRouter(&config.Config{EditorToken: "secret-token"})

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("X-Editor-Token", "wrong")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with wrong token, got %d", recorder.Code)
	}
}

func TestRequireEditor_EmptyConfiguredTokenDisablesEditing(t *testing.T) {
	router := editorRouter(&config.Config{EditorToken: ""})

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("X-Editor-Token", "")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 when no token is configured, got %d", recorder.Code)
	}

	// Even a lucky empty-string match must not grant access.
	req = httptest.NewRequest(http.MethodGet, "/guarded", nil)
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 when no token is configured, got %d", recorder.Code)
	}
}
