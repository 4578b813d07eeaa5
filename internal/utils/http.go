package utils

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// ContentTypeContains reports whether the Content-Type header contains the given media type,
// ignoring case. It accepts values that are not valid media types, like "application/pdf;;" or
// "application/pdf, application/octet-stream".
func ContentTypeContains(header http.Header, mediaType string) bool {
	if header == nil || mediaType == "" {
		return false
	}

	return strings.Contains(strings.ToLower(header.Get("Content-Type")), strings.ToLower(mediaType))
}

// GetRoutePattern returns the chi route pattern matching the request, like
// "/verify/{reference}/{account_suffix}", or "undefined" when no route matches. The pattern never
// carries the path parameters themselves.
func GetRoutePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return "undefined"
	}
	if pattern := rctx.RoutePattern(); pattern != "" {
		return pattern
	}

	routePath := r.URL.Path
	if r.URL.RawPath != "" {
		routePath = r.URL.RawPath
	}

	tctx := chi.NewRouteContext()
	if rctx.Routes == nil || !rctx.Routes.Match(tctx, r.Method, routePath) {
		return "undefined"
	}

	// Match fills tctx with the pattern.
	return tctx.RoutePattern()
}
