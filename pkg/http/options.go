package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

const (
	HealthPath  = "/healthz"
	MetricsPath = "/metrics"
)

func WithErrorMapping(mapper ErrorMapper) ServerOption {
	return func(s *server) {
		if mapper != nil {
			s.errorMapper = mapper
		}
	}
}

func WithHealthCheck(customHandler http.HandlerFunc) ServerOption {
	defaultHandler := func(w http.ResponseWriter, _ *http.Request) {
		encoded, _ := json.Marshal(struct {
			Status string `json:"status"`
		}{
			Status: "OK",
		})
		writeJSON(w, http.StatusOK, encoded)
	}

	return func(s *server) {
		handler := defaultHandler
		if customHandler != nil {
			handler = customHandler
		}

		s.router.
			Name(getRouteName(http.MethodGet, HealthPath)).
			Methods(http.MethodGet).
			Path(HealthPath).
			HandlerFunc(handler)
	}
}

func WithMetricsHandler(handler http.Handler) ServerOption {
	return func(s *server) {
		if handler == nil {
			return
		}

		s.router.
			Name(getRouteName(http.MethodGet, MetricsPath)).
			Methods(http.MethodGet).
			Path(MetricsPath).
			Handler(handler)
	}
}

func WithCORSHandler() ServerOption {
	return func(s *server) {
		s.router.Use(mux.CORSMethodMiddleware(s.router))
	}
}

func WithMW(mw HandlerMiddleware) ServerOption {
	return func(s *server) {
		s.router.Use(mux.MiddlewareFunc(mw))
	}
}

func WithHandlerMW(mw HandlerMiddleware) HandlerOption {
	return func(router *mux.Router) {
		router.Use(mux.MiddlewareFunc(mw))
	}
}
