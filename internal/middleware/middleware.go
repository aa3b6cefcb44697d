// Package middleware holds the Echo middleware stack: request
// correlation, request-scoped logging, CORS/recovery/secure headers,
// the global error funnel, tracing, and rate limiting.
package middleware
