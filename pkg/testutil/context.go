package testutil

import (
	"net/http"
	"time"

	"attesto/pkg/requestcontext"
)

// WithRequestTime pins the request-scoped evaluation time on a request.
// This simulates what the request-time middleware does, so handler tests get
// deterministic expiry and age arithmetic.
func WithRequestTime(req *http.Request, t time.Time) *http.Request {
	ctx := requestcontext.WithTime(req.Context(), t)
	return req.WithContext(ctx)
}

// WithRequestID injects a request ID, mirroring the request-ID middleware.
func WithRequestID(req *http.Request, requestID string) *http.Request {
	ctx := requestcontext.WithRequestID(req.Context(), requestID)
	return req.WithContext(ctx)
}
