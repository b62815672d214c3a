package middleware

import (
	"net/http"
	"strings"

	"github.com/go-http-utils/headers"
)

const (
	permissionsPolicy = "camera=(), geolocation=(), magnetometer=(), microphone=(), payment=(), usb=()"
	noStore           = "no-store, no-cache, must-revalidate, proxy-revalidate, max-age=0"
)

// SecurityHeadersMiddleware adds the security headers every response carries.
//
// Only the start page may be indexed, and only it and the static assets below assetPath may be cached,
// so the back button cannot show admin data after signing out.
func SecurityHeadersMiddleware(assetPath string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			path := r.URL.Path

			if path != "/" {
				h.Set("X-Robots-Tag", "noindex, nofollow")
			}
			h.Set("Cross-Origin-Opener-Policy", "same-origin")
			h.Set("Cross-Origin-Embedder-Policy", "require-corp")
			h.Set("Cross-Origin-Resource-Policy", "same-site")
			h.Set("Referrer-Policy", "same-origin")
			h.Set("Permissions-Policy", permissionsPolicy)

			h.Set(headers.StrictTransportSecurity, "max-age=31536000; includeSubDomains; preload")
			h.Set(headers.XXSSProtection, "1; mode=block")
			h.Set(headers.XContentTypeOptions, "nosniff")
			h.Set(headers.XFrameOptions, "DENY")

			if path != "/" && !isAsset(path, assetPath) {
				h.Set(headers.CacheControl, noStore)
				h.Set(headers.Pragma, "no-cache")
				h.Set(headers.Expires, "0")
			}

			next.ServeHTTP(w, r)
		})
	}
}

func isAsset(path string, assetPath string) bool {
	if assetPath == "" {
		return false
	}
	return path == assetPath || strings.HasPrefix(path, strings.TrimSuffix(assetPath, "/")+"/")
}
