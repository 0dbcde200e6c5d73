// Package middleware holds HTTP middleware for the seqmatch API.
package middleware

import (
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/aria-lang/seqmatch-go/pkg/logger"
)

// RequestLogger logs one line per request with its status and duration.
func RequestLogger(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			defer func() {
				status := ww.Status()
				if status == 0 {
					status = http.StatusOK
				}
				line := "%s %s %d %dB %s id=%s"
				args := []any{r.Method, r.URL.Path, status, ww.BytesWritten(),
					time.Since(start).Round(time.Microsecond), chimiddleware.GetReqID(r.Context())}
				if status >= http.StatusInternalServerError {
					log.Warnf(line, args...)
					return
				}
				log.Infof(line, args...)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
