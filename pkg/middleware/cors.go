package middleware

import (
	"net/http"
	"strings"
)

var defaultAllowedOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
}

var (
	corsMethods = strings.Join([]string{
		http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions,
	}, ", ")
	corsAllowHeaders  = strings.Join([]string{"Accept", "Authorization", "Content-Type", "X-Requested-With", RequestIDHeader}, ", ")
	corsExposeHeaders = strings.Join([]string{"Content-Disposition", RequestIDHeader}, ", ")
)

// originPolicy decide quais origens recebem os cabeçalhos de CORS
type originPolicy struct {
	any     bool
	origins map[string]bool
}

func newOriginPolicy(allowed []string) originPolicy {
	if len(allowed) == 0 {
		allowed = defaultAllowedOrigins
	}

	policy := originPolicy{origins: make(map[string]bool, len(allowed))}
	for _, origin := range allowed {
		if origin == "*" {
			policy.any = true
			continue
		}
		policy.origins[strings.TrimSuffix(origin, "/")] = true
	}
	return policy
}

func (p originPolicy) allows(origin string) bool {
	return origin != "" && (p.any || p.origins[origin])
}

// Cors libera as origens configuradas; sem configuração usa as origens locais do frontend
func Cors(allowedOrigins []string) func(http.Handler) http.Handler {
	policy := newOriginPolicy(allowedOrigins)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			h := w.Header()
			h.Add("Vary", "Origin")

			if policy.allows(origin) {
				// credenciais exigem a origem explícita, nunca "*"
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Methods", corsMethods)
				h.Set("Access-Control-Allow-Headers", corsAllowHeaders)
				h.Set("Access-Control-Expose-Headers", corsExposeHeaders)
				h.Set("Access-Control-Allow-Credentials", "true")
				h.Set("Access-Control-Max-Age", "86400")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
