package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/storecraft/storefront/pkg/logger"
)

// Recovery converts handler panics into a JSON 500 response and logs
// the stack. http.ErrAbortHandler is re-raised so aborted responses
// keep net/http's semantics.
func Recovery(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rvr := recover()
				if rvr == nil {
					return
				}

				if err, ok := rvr.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rvr)
				}

				log.Error().
					Str("error", panicMessage(rvr)).
					Str("stack", string(debug.Stack())).
					Str("path", r.URL.Path).
					Str("method", r.Method).
					Msg("panic recovered")

				w.Header().Set("Content-Type", "application/json")

				// Writing a status on an upgraded connection would corrupt it.
				if r.Header.Get("Connection") != "Upgrade" {
					w.WriteHeader(http.StatusInternalServerError)
				}

				_, _ = w.Write([]byte(`{"code":"INTERNAL_ERROR","message":"internal server error"}`))
			}()

			next.ServeHTTP(w, r)
		})
	}
}

func panicMessage(rvr any) string {
	switch v := rvr.(type) {
	case string:
		return v
	case error:
		return v.Error()
	default:
		return fmt.Sprintf("%v", v)
	}
}
