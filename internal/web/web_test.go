package web

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func buildDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "assets"), 0o755); err != nil {
		t.Fatal(err)
	}
	files := map[string]string{
		"index.html":    "<html><body>RadioAI</body></html>",
		"assets/app.js": "console.log('radio')",
		"manifest.json": `{"name":"RadioAI"}`,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func newSPARouter(t *testing.T, enabled bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/articles", func(c *gin.Context) { c.JSON(http.StatusOK, []string{}) })
	NewSPAServer(enabled, buildDir(t), nil).RegisterRoutes(router)
	return router
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", path, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestSPAServer_ServesIndexForClientRoutes(t *testing.T) {
	router := newSPARouter(t, true)

	for _, path := range []string{"/", "/browse", "/player/queue"} {
		w := get(router, path)
		if w.Code != http.StatusOK {
			t.Errorf("%s: expected status 200, got %d", path, w.Code)
		}
		if !strings.Contains(w.Body.String(), "RadioAI") {
			t.Errorf("%s: expected index.html body, got %q", path, w.Body.String())
		}
	}
}

func TestSPAServer_ServesStaticFiles(t *testing.T) {
	router := newSPARouter(t, true)

	if w := get(router, "/assets/app.js"); w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "radio") {
		t.Errorf("Expected asset, got %d %q", w.Code, w.Body.String())
	}
	if w := get(router, "/manifest.json"); !strings.Contains(w.Body.String(), `"name"`) {
		t.Errorf("Expected root file, got %q", w.Body.String())
	}
}

func TestSPAServer_UnknownAPIRoute(t *testing.T) {
	router := newSPARouter(t, true)

	w := get(router, "/api/unknown")
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "message") {
		t.Errorf("Expected JSON error body, got %q", w.Body.String())
	}

	if w := get(router, "/api/articles"); w.Code != http.StatusOK {
		t.Errorf("Expected API route to be untouched, got %d", w.Code)
	}
}

func TestSPAServer_PathTraversal(t *testing.T) {
	router := newSPARouter(t, true)

	w := get(router, "/../../etc/passwd")
	if strings.Contains(w.Body.String(), "root:") {
		t.Error("Expected traversal to stay inside the build directory")
	}
}

func TestSPAServer_Disabled(t *testing.T) {
	router := newSPARouter(t, false)

	if w := get(router, "/browse"); w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404 when disabled, got %d", w.Code)
	}
}

func TestSwaggerServer_RegisterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	NewSwaggerServer(true).RegisterRoutes(router)
	found := false
	for _, route := range router.Routes() {
		if route.Path == "/swagger/*any" {
			found = true
		}
	}
	if !found {
		t.Error("Expected swagger route to be registered")
	}

	disabled := gin.New()
	NewSwaggerServer(false).RegisterRoutes(disabled)
	if len(disabled.Routes()) != 0 {
		t.Errorf("Expected no routes when disabled, got %d", len(disabled.Routes()))
	}
}
