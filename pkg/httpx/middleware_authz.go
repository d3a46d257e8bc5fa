package httpx

import "net/http"

// RequireRole lets the request through only when the authenticated token
// carries one of the listed roles. Must run after AuthnMiddleware.
func RequireRole(allowed ...string) Middleware {
	want := make(map[string]struct{}, len(allowed))
	for _, r := range allowed {
		want[r] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := want[RoleFromCtx(r.Context())]; !ok {
				w.WriteHeader(http.StatusForbidden)
				_, _ = w.Write([]byte("access denied"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
