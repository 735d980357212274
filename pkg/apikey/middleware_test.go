package apikey

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter(cfg Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware(cfg))
	r.GET("/things", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })
	r.POST("/things", func(c *gin.Context) { c.JSON(http.StatusCreated, gin.H{"ok": true}) })
	return r
}

func TestMiddlewareAllowsGetWithoutKey(t *testing.T) {
	r := newTestRouter(Config{WriteKey: "secret"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/things", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("GET sem chave deve passar, status %d", w.Code)
	}
}

func TestMiddlewareRejectsWriteWithoutKey(t *testing.T) {
	r := newTestRouter(Config{WriteKey: "secret"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/things", strings.NewReader("{}"))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("POST sem chave deve ser 401, status %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Unauthorized") {
		t.Fatalf("corpo deve conter Unauthorized: %s", w.Body.String())
	}
}

func TestMiddlewareAcceptsWriteWithKey(t *testing.T) {
	r := newTestRouter(Config{WriteKey: "secret"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/things", strings.NewReader("{}"))
	req.Header.Set(HeaderName, "secret")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("POST com chave deve passar, status %d", w.Code)
	}
}

func TestMiddlewareFailClosedWhenUnconfigured(t *testing.T) {
	r := newTestRouter(Config{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/things", strings.NewReader("{}"))
	req.Header.Set(HeaderName, "whatever")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("sem chave configurada toda escrita deve ser 401, status %d", w.Code)
	}
}
