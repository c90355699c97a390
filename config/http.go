package config

import (
	"fmt"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// HTTPConfig contains HTTP server configuration.
type HTTPConfig struct {
	// Addr is the address to bind the HTTP server to.
	Addr string `env:"HTTP_ADDR" envDefault:":8080"`

	// BaseURL is the base URL of the application (e.g., "https://app.example.com").
	// Dev and prod deployments differ only here.
	BaseURL string `env:"APP_BASE_URL" envDefault:"http://localhost:8080"`

	// CookieDomain is the domain for session cookies.
	// Leave empty to use the request domain.
	CookieDomain string `env:"APP_COOKIE_DOMAIN" envDefault:""`
}

// Sanitize applies guardrails to HTTP configuration values.
func (h *HTTPConfig) Sanitize() {
	h.BaseURL = strings.TrimRight(h.BaseURL, "/")
	h.CookieDomain = strings.TrimSpace(h.CookieDomain)
}

// Validate rejects cookie domains that are bare public suffixes: a cookie
// scoped to e.g. "co.uk" or "github.io" would leak across unrelated sites,
// and browsers silently drop it anyway.
func (h *HTTPConfig) Validate() error {
	if h.CookieDomain == "" {
		return nil
	}
	domain := strings.TrimPrefix(h.CookieDomain, ".")
	if suffix, _ := publicsuffix.PublicSuffix(domain); suffix == domain {
		return fmt.Errorf("APP_COOKIE_DOMAIN %q is a public suffix and cannot scope cookies", h.CookieDomain)
	}
	return nil
}
