package http

import "net/http"

// withCORS grants cross-origin access to the single configured origin.
//
// Requests whose Origin header matches the allowed origin receive the
// Access-Control-Allow-* headers; OPTIONS preflights are answered with 204
// without reaching the handlers. Requests from other origins pass through
// untouched — the browser enforces the rejection. Disabled entirely when no
// origin is configured.
func (h *Handler) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		if h.corsAllowedOrigin != "" && origin == h.corsAllowedOrigin {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, x-access-token")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}
