package server

import "time"

// HTTP server timeouts
const (
	ReadTimeout     = 10 * time.Second
	WriteTimeout    = 30 * time.Second
	IdleTimeout     = 120 * time.Second
	ShutdownTimeout = 15 * time.Second
)

// Header names
const (
	HeaderAPIKey    = "X-API-Key"
	HeaderRequestID = "X-Request-ID"
)

// Suspicious activity thresholds. A client that fails authentication this
// many times inside the window gets flagged in the logs.
const (
	suspiciousFailureThreshold = 5
	suspiciousFailureWindow    = time.Minute
)
