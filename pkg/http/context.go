package http

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
)

type contextKey int

const handlerMetaContextKey contextKey = iota

type Panic struct {
	Message    string
	Stacktrace []byte
}

type handlerMetadata struct {
	Code          int
	Error         error
	Panic         *Panic
	Authenticated bool
	ErrorMapper   ErrorMapper
}

func withHandlerMetadata(router *mux.Router, errorMapper func() ErrorMapper) {
	router.Use(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), handlerMetaContextKey, &handlerMetadata{
				Code:        http.StatusOK,
				ErrorMapper: errorMapper(),
			})
			handler.ServeHTTP(w, r.WithContext(ctx))
		})
	})
}

func getHandlerMetadata(ctx context.Context) *handlerMetadata {
	meta, ok := ctx.Value(handlerMetaContextKey).(*handlerMetadata)
	if ok {
		return meta
	}

	return &handlerMetadata{}
}
