package middleware

import (
	"net/http"
	"net/url"
	"strings"
)

// CORSMiddleware implements the deployment's allow-list: requests without an
// Origin header (curl, health checks, same-origin) pass untouched; browser
// origins are allowed only for the tunnel suffix and the two hosting domains.
type CORSMiddleware struct {
}

func NewCORSMiddleware() *CORSMiddleware {
	return &CORSMiddleware{}
}

func originAllowed(origin string) bool {
	parsed, err := url.Parse(origin)
	if err != nil {
		return false
	}
	host := parsed.Hostname()
	return strings.HasSuffix(host, ".ngrok-free.app") ||
		strings.Contains(origin, "onrender.com") ||
		strings.Contains(origin, "mapeo-frontend.vercel.app")
}

func (m *CORSMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		origin := req.Header.Get("Origin")

		if origin != "" {
			if !originAllowed(origin) {
				http.Error(w, "No permitido por CORS", http.StatusForbidden)
				return
			}
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			w.Header().Set("Vary", "Origin")
		}

		if req.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, req)
	})
}
