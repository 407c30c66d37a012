package config

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"time"
)

// HTTPClient is the shared client for all upstream calls. Listing fetches
// must reflect the latest backend state, so no caching transport is layered
// on top of it.
var HTTPClient = &http.Client{
	Timeout: 15 * time.Second,
}

var ErrBackendNotConfigured = errors.New("BE_API environment variable is not set")

// BackendAPI returns the upstream API base URL from BE_API, normalized with a
// trailing slash.
func BackendAPI() (string, error) {
	base := os.Getenv("BE_API")
	if base == "" {
		return "", ErrBackendNotConfigured
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base, nil
}

// BackendURL joins an upstream path (e.g. "member/product/category") onto the
// configured base URL.
func BackendURL(path string) (string, error) {
	base, err := BackendAPI()
	if err != nil {
		return "", err
	}
	return base + strings.TrimPrefix(path, "/"), nil
}

// SiteURL is the public origin of this BFF, used by server-side fetchers.
func SiteURL() string {
	return getEnv("SITE_URL", "http://localhost:3000")
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
