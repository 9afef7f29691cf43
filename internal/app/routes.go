package app

import (
	"math"
	"net"
	"net/http"
	"strconv"

	"commit-assistant/internal/observability"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) routes() http.Handler {

	observability.InitMetrics()

	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.health)
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.Handle("POST /v1/message", s.limit(http.HandlerFunc(s.message)))
	mux.Handle("POST /v1/chat", s.limit(http.HandlerFunc(s.chat)))

	return mux
}

func (s *Server) limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		if ok, wait := s.limiter.Admit(clientKey(r)); !ok {
			observability.RateLimited.Inc()
			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
