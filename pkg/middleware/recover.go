package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/IAmGigabyteSpeed/simple-e-commerceapi/pkg/logger"
	"github.com/IAmGigabyteSpeed/simple-e-commerceapi/pkg/response"
)

// Recovery turns a downstream panic into a logged 500 instead of a dropped
// connection. Mount it before Logger so the access line still gets written.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if v := recover(); v != nil {
				logger.Error("panic recovered",
					"error", fmt.Sprintf("%v", v),
					"stack", string(debug.Stack()),
					"method", r.Method,
					"path", r.URL.Path,
				)
				response.Error(w, http.StatusInternalServerError, "Internal Server Error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
