package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode"

	"github.com/gorilla/mux"
)

const (
	DefaultServerAddress = ":8080"

	defaultReadTimeout       = 10 * time.Second
	defaultReadHeaderTimeout = 5 * time.Second
	defaultShutdownTimeout   = 10 * time.Second
)

type (
	ServerOption      func(*server)
	HandlerOption     func(*mux.Router)
	HandlerMiddleware func(http.Handler) http.Handler
)

type HandlerRegistry interface {
	Register(handler Handler, opts ...HandlerOption)
}

type Server interface {
	HandlerRegistry
	http.Handler
	Listener(context.Context) error
}

type server struct {
	srv         *http.Server
	router      *mux.Router
	errorMapper ErrorMapper
}

func NewServer(
	address string,
	opts ...ServerOption,
) Server {
	router := mux.NewRouter()
	s := &server{
		srv: &http.Server{
			Addr:              address,
			Handler:           router,
			ReadTimeout:       defaultReadTimeout,
			ReadHeaderTimeout: defaultReadHeaderTimeout,
		},
		router:      router,
		errorMapper: DefaultErrorMapper,
	}

	withHandlerMetadata(router, func() ErrorMapper { return s.errorMapper })
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *server) Listener(ctx context.Context) error {
	serverDoneChan := make(chan error, 1)
	go func() {
		err := s.srv.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		serverDoneChan <- err
	}()

	var err error
	select {
	case err = <-serverDoneChan:
	case <-ctx.Done():
		err = s.shutdown()
	}
	if err != nil {
		return fmt.Errorf("http listener %s: %w", s.srv.Addr, err)
	}

	return nil
}

func (s *server) Register(handler Handler, opts ...HandlerOption) {
	router := s.router
	if len(opts) > 0 {
		router = s.router.NewRoute().Subrouter()
		for _, opt := range opts {
			opt(router)
		}
	}

	router.
		Name(getRouteName(handler.Method(), handler.Path())).
		Methods(handler.Method()).
		Path(handler.Path()).
		Handler(httpHandlerWrapper(handler))
}

func (s *server) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
	defer cancel()

	err := s.srv.Shutdown(ctx)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}

func getRouteName(method, path string) string {
	path = strings.Map(func(r rune) rune {
		if unicode.Is(unicode.Latin, r) || unicode.IsDigit(r) {
			return r
		}

		if r == '{' || r == '}' {
			return -1
		}

		return '_'
	}, strings.Trim(path, "/"))
	return fmt.Sprintf("%s_%s", strings.ToUpper(method), path)
}

func routeName(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil || route.GetName() == "" {
		return getRouteName(r.Method, r.URL.Path)
	}

	return route.GetName()
}
