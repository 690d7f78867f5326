package middleware

import (
	"net"
	"net/http"
	"strings"
)

// WithSubnet lets through only requests whose X-Real-IP belongs to the
// trusted CIDR. An empty or unparsable subnet rejects everything.
func WithSubnet(subnet string) func(next http.Handler) http.Handler {
	var trusted *net.IPNet
	if subnet != "" {
		if _, n, err := net.ParseCIDR(subnet); err == nil {
			trusted = n
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if trusted == nil {
				writeError(w, http.StatusForbidden, "forbidden")
				return
			}

			ip := net.ParseIP(strings.TrimSpace(r.Header.Get("X-Real-IP")))
			if ip == nil || !trusted.Contains(ip) {
				writeError(w, http.StatusForbidden, "forbidden")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
