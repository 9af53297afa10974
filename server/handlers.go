package server

import (
	"fmt"
	"net/http"

	"github.com/ctfsh/flagserv/config"
	"github.com/ctfsh/flagserv/metrics"
)

// Handler returns the root handler for the serving port.
func (s *Server) Handler() http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		metrics.GlobalMetrics.RequestsNow.Inc()
		defer metrics.GlobalMetrics.RequestsNow.Dec()
		defer metrics.GlobalMetrics.Requests.Inc()

		if req.URL.Path == FlagPath {
			s.flagHandler(rw, req)
			return
		}
		s.files.ServeHTTP(rw, req)
	})
}

// flagHandler writes the flag from the environment. The value is looked
// up on every request, so the route always reflects the current state.
func (s *Server) flagHandler(rw http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		s.logger.Warn("Unsupported method on the flag route", "method", req.Method)
		http.Error(rw, "Only GET requests are supported", http.StatusMethodNotAllowed)
		return
	}
	metrics.GlobalMetrics.FlagRequests.Inc()

	value, ok := s.lookup(config.FlagVar)
	if !ok {
		value = config.FlagFallback
	}
	fmt.Fprintf(rw, "FLAG=%s", value)
}
