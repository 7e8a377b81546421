package http

import (
	"net/http"

	"github.com/klwxsrx/project-manager/pkg/log"
)

func WithLogging(logger log.Logger, infoLevel, errorLevel log.Level) ServerOption {
	excludedPaths := map[string]struct{}{
		HealthPath:  {},
		MetricsPath: {},
	}

	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handler.ServeHTTP(w, r)
			if _, ok := excludedPaths[r.URL.Path]; ok {
				return
			}

			meta := getHandlerMetadata(r.Context())
			entry := logger.With(log.Fields{
				"route_name":    routeName(r),
				"method":        r.Method,
				"path":          r.URL.Path,
				"response_code": meta.Code,
				"authenticated": meta.Authenticated,
			})

			switch {
			case meta.Panic != nil:
				entry.
					WithField("panic", log.Fields{
						"message": meta.Panic.Message,
						"stack":   string(meta.Panic.Stacktrace),
					}).
					Log(r.Context(), errorLevel, "request handled with panic")
			case meta.Code >= http.StatusInternalServerError:
				entry.WithError(meta.Error).Log(r.Context(), errorLevel, "request handled with internal error")
			case meta.Error != nil:
				entry.WithField("reason", meta.Error.Error()).Log(r.Context(), infoLevel, "request rejected")
			default:
				entry.Log(r.Context(), infoLevel, "request handled")
			}
		})
	})
}
