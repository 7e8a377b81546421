package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/klwxsrx/project-manager/pkg/auth"
)

type (
	Handler interface {
		Method() string
		Path() string
		Handle(w ResponseWriter, r *http.Request) error
	}

	ResponseWriter interface {
		SetHeader(key, value string) ResponseWriter
		SetStatusCode(httpCode int) ResponseWriter
		SetJSONBody(data any) ResponseWriter
	}

	// ErrorMapper translates a handler error into a status code and an optional JSON body.
	ErrorMapper func(error) (httpCode int, body any)
)

func DefaultErrorMapper(err error) (int, any) {
	switch {
	case errors.Is(err, ErrParsingError):
		return http.StatusBadRequest, nil
	case errors.Is(err, auth.ErrUnauthenticated):
		return http.StatusUnauthorized, nil
	case errors.Is(err, auth.ErrPermissionDenied):
		return http.StatusForbidden, nil
	default:
		return http.StatusInternalServerError, nil
	}
}

type responseWriter struct {
	impl     http.ResponseWriter
	body     any
	hasBody  bool
	httpCode int
}

func (w *responseWriter) SetHeader(key, value string) ResponseWriter {
	w.impl.Header().Set(key, value)
	return w
}

func (w *responseWriter) SetStatusCode(httpCode int) ResponseWriter {
	w.httpCode = httpCode
	return w
}

func (w *responseWriter) SetJSONBody(data any) ResponseWriter {
	w.body = data
	w.hasBody = true
	return w
}

func (w *responseWriter) Write(ctx context.Context, err error) {
	if err != nil {
		writeHandlerResult(ctx, w.impl, err)
		return
	}

	meta := getHandlerMetadata(ctx)
	if !w.hasBody {
		meta.Code = w.httpCode
		w.impl.WriteHeader(w.httpCode)
		return
	}

	encoded, err := json.Marshal(w.body)
	if err != nil {
		writeHandlerResult(ctx, w.impl, fmt.Errorf("encode body: %w", err))
		return
	}

	meta.Code = w.httpCode
	writeJSON(w.impl, w.httpCode, encoded)
}

func (w *responseWriter) WritePanic(ctx context.Context, p Panic) {
	meta := getHandlerMetadata(ctx)
	meta.Panic = &p
	writeHandlerResult(ctx, w.impl, fmt.Errorf("panic: %s", p.Message))
}

func writeHandlerResult(ctx context.Context, w http.ResponseWriter, err error) {
	meta := getHandlerMetadata(ctx)
	mapper := meta.ErrorMapper
	if mapper == nil {
		mapper = DefaultErrorMapper
	}

	httpCode, body := mapper(err)
	meta.Code = httpCode
	meta.Error = err

	if body == nil {
		w.WriteHeader(httpCode)
		return
	}

	encoded, encodeErr := json.Marshal(body)
	if encodeErr != nil {
		w.WriteHeader(httpCode)
		return
	}

	writeJSON(w, httpCode, encoded)
}

func writeJSON(w http.ResponseWriter, httpCode int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpCode)
	_, _ = w.Write(body)
}

func httpHandlerWrapper(handler Handler) http.HandlerFunc {
	recoverPanic := func(r *http.Request, respWriter *responseWriter) {
		msg := recover()
		if msg == nil {
			return
		}

		respWriter.WritePanic(r.Context(), Panic{
			Message:    fmt.Sprintf("%v", msg),
			Stacktrace: debug.Stack(),
		})
	}

	return func(w http.ResponseWriter, r *http.Request) {
		respWriter := &responseWriter{
			impl:     w,
			httpCode: http.StatusOK,
		}

		defer recoverPanic(r, respWriter)
		err := handler.Handle(respWriter, r)
		respWriter.Write(r.Context(), err)
	}
}
