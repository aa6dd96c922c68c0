package config

import (
	"reflect"
	"testing"
	"time"
)

// --- MustLoad ---

func TestMustLoad_PanicsOnInvalidConfig(t *testing.T) {
	t.Setenv("LOG_LEVEL", "verbose") // invalid -> Load() error
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("MustLoad should panic on invalid config")
		}
	}()
	_ = MustLoad()
}

// --- Load success + normalization + parsing ---

func TestLoad_Success_DefaultsAndOverrides(t *testing.T) {
	// Server timeouts / sizes (valid)
	t.Setenv("PORT", "8088")
	t.Setenv("READ_TIMEOUT", "2s")
	t.Setenv("READ_HEADER_TIMEOUT", "1s")
	t.Setenv("WRITE_TIMEOUT", "3s")
	t.Setenv("IDLE_TIMEOUT", "4s")
	t.Setenv("MAX_HEADER_BYTES", "8192")
	t.Setenv("GIN_MODE", "weird") // will normalize to "release"

	// Logging
	t.Setenv("LOG_LEVEL", "warning") // will normalize to "warn"
	t.Setenv("LOG_PRETTY", "yes")
	t.Setenv("DEBUG", "on")
	t.Setenv("API_BASE_PATH", "api/") // no leading slash + trailing slash -> "/api"

	// App
	t.Setenv("DB_PATH", "catalog.db")

	// Rate limiting (use invalids for parse to fall back to defaults)
	t.Setenv("RATE_RPS", "x")      // -> default 5.0
	t.Setenv("RATE_BURST", "nope") // -> default 10

	// Web protection
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.com , , http://b ")
	t.Setenv("ENABLE_HSTS", "TRUE")
	t.Setenv("HSTS_MAX_AGE", "24h")

	// OTEL
	t.Setenv("OTEL_ENABLED", "1")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "otel:4317")
	t.Setenv("OTEL_EXPORTER_OTLP_INSECURE", "0")
	t.Setenv("OTEL_SERVICE_NAME", "svc")
	t.Setenv("OTEL_TRACES_SAMPLER_ARG", "0.75")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	// Server
	if cfg.Port != "8088" ||
		cfg.ReadTimeout != 2*time.Second ||
		cfg.ReadHeaderTimeout != 1*time.Second ||
		cfg.WriteTimeout != 3*time.Second ||
		cfg.IdleTimeout != 4*time.Second ||
		cfg.MaxHeaderBytes != 8192 ||
		cfg.GinMode != "release" {
		t.Fatalf("server fields unexpected: %+v", cfg)
	}

	// Logging
	if cfg.LogLevel != "warn" || !cfg.LogPretty || !cfg.Debug || cfg.APIBasePath != "/api" {
		t.Fatalf("logging fields unexpected: %+v", cfg)
	}

	// App
	if cfg.DBPath != "catalog.db" {
		t.Fatalf("db path unexpected: %q", cfg.DBPath)
	}

	// Rate limiting (parse fallback to defaults)
	if cfg.RateRPS != 5.0 || cfg.RateBurst != 10 {
		t.Fatalf("rate limiting unexpected: %+v", cfg)
	}

	// Web protection
	if !reflect.DeepEqual(cfg.CORS.AllowedOrigins, []string{"https://a.com", "http://b"}) {
		t.Fatalf("cors origins unexpected: %#v", cfg.CORS.AllowedOrigins)
	}
	if !cfg.Security.EnableHSTS || cfg.Security.HSTSMaxAge != 24*time.Hour {
		t.Fatalf("security unexpected: %+v", cfg.Security)
	}

	// OTEL
	if !cfg.OTEL.Enabled || cfg.OTEL.Endpoint != "otel:4317" || cfg.OTEL.Insecure || cfg.OTEL.ServiceName != "svc" || cfg.OTEL.SampleRatio != 0.75 {
		t.Fatalf("otel unexpected: %+v", cfg.OTEL)
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Port != "8080" || cfg.GinMode != "release" || cfg.LogLevel != "info" {
		t.Fatalf("defaults unexpected: %+v", cfg)
	}
	if cfg.APIBasePath != "/api" {
		t.Fatalf("APIBasePath default = %q; want /api", cfg.APIBasePath)
	}
	if cfg.DBPath != "recipes.db" {
		t.Fatalf("DBPath default = %q; want recipes.db", cfg.DBPath)
	}
	if cfg.Debug {
		t.Fatalf("Debug should default to false")
	}
	if cfg.OTEL.Enabled || cfg.OTEL.ServiceName != "go-recipe-backend" {
		t.Fatalf("otel defaults unexpected: %+v", cfg.OTEL)
	}
}

// --- Load validations (each case triggers exactly one validation error) ---

func TestLoad_ValidationErrors(t *testing.T) {
	cases := []struct {
		name string
		key  string
		val  string
	}{
		{"invalid LOG_LEVEL", "LOG_LEVEL", "verbose"},
		{"empty PORT", "PORT", "   "},
		{"non-positive READ_TIMEOUT", "READ_TIMEOUT", "-1s"},
		{"non-positive WRITE_TIMEOUT", "WRITE_TIMEOUT", "0s"},
		{"non-positive MAX_HEADER_BYTES", "MAX_HEADER_BYTES", "-1"},
		{"empty DB_PATH", "DB_PATH", "  "},
		{"negative RATE_RPS", "RATE_RPS", "-0.1"},
		{"zero RATE_BURST", "RATE_BURST", "0"},
		{"negative HSTS_MAX_AGE", "HSTS_MAX_AGE", "-1h"},
		{"sampler out of range", "OTEL_TRACES_SAMPLER_ARG", "1.5"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.val)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", tc.key, tc.val)
			}
		})
	}
}

// --- helpers ---

func TestNormalizeBasePath(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "/"},
		{"/", "/"},
		{"api", "/api"},
		{"/api/", "/api"},
		{"  /api/v2  ", "/api/v2"},
	}
	for _, tc := range cases {
		if got := normalizeBasePath(tc.in); got != tc.want {
			t.Fatalf("normalizeBasePath(%q) = %q; want %q", tc.in, got, tc.want)
		}
	}
}

func TestGetBool(t *testing.T) {
	t.Setenv("B1", "On")
	t.Setenv("B2", "off")
	t.Setenv("B3", "definitely")
	if !getbool("B1", false) {
		t.Fatalf("getbool(On) = false")
	}
	if getbool("B2", true) {
		t.Fatalf("getbool(off) = true")
	}
	if !getbool("B3", true) {
		t.Fatalf("getbool(garbage) should fall back to default")
	}
}

func TestSplitCSV(t *testing.T) {
	if got := splitCSV(""); got != nil {
		t.Fatalf("splitCSV(\"\") = %#v; want nil", got)
	}
	want := []string{"a", "b"}
	if got := splitCSV(" a ,, b "); !reflect.DeepEqual(got, want) {
		t.Fatalf("splitCSV = %#v; want %#v", got, want)
	}
}
