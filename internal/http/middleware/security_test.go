package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func securityEngine(opt SecurityOptions) *gin.Engine {
	r := gin.New()
	r.Use(SecurityHeaders(opt))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestSecurityHeaders_Baseline(t *testing.T) {
	r := securityEngine(SecurityOptions{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	h := w.Header()
	if h.Get("X-Content-Type-Options") != "nosniff" ||
		h.Get("X-Frame-Options") != "DENY" ||
		h.Get("Referrer-Policy") != "no-referrer" {
		t.Fatalf("baseline headers missing: %v", h)
	}
	if h.Get("Strict-Transport-Security") != "" {
		t.Fatalf("HSTS must be off by default")
	}
	if h.Get("Cache-Control") != "" {
		t.Fatalf("no-store must be off by default")
	}
}

func TestSecurityHeaders_PolicyAndNoStore(t *testing.T) {
	r := securityEngine(SecurityOptions{NoStore: true, EnablePolicy: true})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	h := w.Header()
	if h.Get("Permissions-Policy") == "" {
		t.Fatalf("expected Permissions-Policy")
	}
	if h.Get("Cache-Control") != "no-store" {
		t.Fatalf("Cache-Control = %q", h.Get("Cache-Control"))
	}
}

func TestSecurityHeaders_HSTSOnlyOverHTTPS(t *testing.T) {
	r := securityEngine(SecurityOptions{EnableHSTS: true, HSTSMaxAge: 24 * time.Hour})

	// Plain HTTP: no HSTS.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	if w.Header().Get("Strict-Transport-Security") != "" {
		t.Fatalf("HSTS set on plain HTTP")
	}

	// Forwarded HTTPS: HSTS with the configured max-age.
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	hsts := w.Header().Get("Strict-Transport-Security")
	if !strings.Contains(hsts, "max-age=86400") {
		t.Fatalf("HSTS = %q", hsts)
	}
}

func TestIsHTTPS(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if isHTTPS(req) {
		t.Fatalf("plain request reported as HTTPS")
	}
	req.Header.Set("X-Forwarded-Proto", "HTTPS")
	if !isHTTPS(req) {
		t.Fatalf("forwarded proto not recognized case-insensitively")
	}
}
