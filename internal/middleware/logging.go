package middleware

import (
	"net/http"
	"runtime/debug"

	"fleet-management/fleetboard/internal/logging"
)

// RecoverMiddleware turns a handler panic into a 500 and logs it with the
// request id.
func RecoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil || rec == http.ErrAbortHandler {
				if rec != nil {
					panic(rec)
				}
				return
			}

			logging.WithRequest(GetRequestID(r.Context()), r.URL.Path).Errorw("handler panicked",
				"method", r.Method,
				"panic", rec,
				"stack", string(debug.Stack()),
			)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}
