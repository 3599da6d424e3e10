package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"todotrack/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	CORSOrigins []string
	Timeout     time.Duration
	SlowRequest time.Duration
	// Heartbeat is the full request path answered with 200 "." (default "/ping")
	Heartbeat string
}

// CommonStack is the middleware chain every API route runs behind
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	if o.Heartbeat == "" {
		o.Heartbeat = "/ping"
	}
	return []func(http.Handler) http.Handler{
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.RecoverJSON,
		middleware.NoCache(),
		middleware.AccessLog(middleware.AccessLogOptions{Slow: o.SlowRequest}),
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins}),
		middleware.Compress(flate.BestSpeed),
		middleware.Heartbeat(o.Heartbeat),
		middleware.StripSlashes(),
		middleware.Timeout(o.Timeout),
	}
}
