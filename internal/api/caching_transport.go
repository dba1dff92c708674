package api

import (
	"net/http"

	"github.com/gregjones/httpcache"
	"github.com/gregjones/httpcache/diskcache"
)

// NewCachingHTTPClient creates an HTTP client with response caching for GET
// endpoints that send Cache-Control headers (course lists, featured courses).
// With an empty cacheDir the cache lives in memory only.
func NewCachingHTTPClient(cacheDir string) *http.Client {
	if cacheDir == "" {
		return &http.Client{
			Transport: httpcache.NewTransport(httpcache.NewMemoryCache()),
		}
	}

	// Disk-backed cache persists across CLI invocations
	cache := diskcache.New(cacheDir)

	return &http.Client{
		Transport: httpcache.NewTransport(cache),
	}
}
