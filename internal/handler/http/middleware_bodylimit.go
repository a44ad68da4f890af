package http

import "net/http"

// withBodyLimit caps the size of inbound request bodies at the configured
// Server.MaxBodyBytes. Reads past the cap fail with [http.MaxBytesError],
// which decodeJSON translates into a 413 response.
func (h *Handler) withBodyLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil && h.serverCfg.MaxBodyBytes > 0 {
			r.Body = http.MaxBytesReader(w, r.Body, h.serverCfg.MaxBodyBytes)
		}
		next.ServeHTTP(w, r)
	})
}
