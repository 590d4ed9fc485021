package middleware

import (
	"net/http"

	"movie-theater/pkg/utils"
)

const RequestIDHeader = "X-Request-ID"

// RequestID reuses the caller's X-Request-ID or generates one, stores it in
// the request context and echoes it back.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(RequestIDHeader)
			if requestID == "" || len(requestID) > 64 {
				requestID = utils.GenerateRequestID()
			}

			w.Header().Set(RequestIDHeader, requestID)
			next.ServeHTTP(w, r.WithContext(utils.SetRequestIDContext(r.Context(), requestID)))
		})
	}
}
