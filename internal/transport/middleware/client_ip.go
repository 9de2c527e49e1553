package middleware

import (
	"net"
	"net/http"

	"github.com/gearbin/gearbin-backend/pkg/ctxutil"
)

// ClientIP stores the remote host of the connection in the context.
// Forwarding headers are not trusted.
func ClientIP() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(ctxutil.WithClientIP(r.Context(), remoteHost(r))))
		})
	}
}

func remoteHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
