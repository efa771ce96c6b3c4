// Package middleware provides the inbound request pipeline of the task API.
//
// cmd/server installs the middleware on the router in this order:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → RateLimit → Timeout → Handler
//
// Recovery is outermost so a panic anywhere below still produces a problem
// response. RateLimit runs after Logging so rejected requests are logged and
// counted with a 429 status.
package middleware
