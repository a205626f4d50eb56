// Package controller holds the HTTP middlewares that wrap the drills API,
// from the open /v1/halving and /v1/exponentiation calculators to the
// bearer-protected /v1/evaluations routes.
//
// Middlewares:
//   - WithCORS: CORS headers for browser clients and OPTIONS preflight.
//   - WithLogger: request ID plus a request-scoped zap logger; one access log line per request.
//   - WithMetrics: request latency per matched route pattern.
//
// PprofMux exposes net/http/pprof under PprofPath.
package controller
