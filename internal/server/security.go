package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/pitchside/pitchside/internal/auth"
	"github.com/pitchside/pitchside/internal/logger"
)

// SuspiciousActivityDetector tracks repeated authentication failures per
// client address so operators can spot key guessing.
type SuspiciousActivityDetector struct {
	mu       sync.Mutex
	failures map[string][]time.Time
}

// NewSuspiciousActivityDetector creates an empty detector
func NewSuspiciousActivityDetector() *SuspiciousActivityDetector {
	return &SuspiciousActivityDetector{
		failures: make(map[string][]time.Time),
	}
}

// RecordFailure notes a failed attempt and reports whether the client has
// crossed the threshold inside the window.
func (d *SuspiciousActivityDetector) RecordFailure(addr string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := time.Now()
	cutoff := now.Add(-suspiciousFailureWindow)

	recent := d.failures[addr][:0]
	for _, t := range d.failures[addr] {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}
	recent = append(recent, now)
	d.failures[addr] = recent

	return len(recent) >= suspiciousFailureThreshold
}

func clientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// rejectAuthFailure records the failure and answers 401, or 429 once the
// client has crossed the suspicious threshold.
func (s *Server) rejectAuthFailure(w http.ResponseWriter, r *http.Request, message string) {
	addr := clientAddr(r)
	w.Header().Set("Content-Type", "application/json")
	if s.detector.RecordFailure(addr) {
		logger.FromContext(r.Context()).Warn("repeated authentication failures",
			slog.String("remote_addr", addr))
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":"too many failed attempts"}`))
		return
	}
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"` + message + `"}`))
}

// apiKeyMiddleware guards the admin surface with a shared key compared in
// constant time.
func (s *Server) apiKeyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		provided := r.Header.Get(HeaderAPIKey)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(s.apiKey)) != 1 {
			s.rejectAuthFailure(w, r, "unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// bearerAuthMiddleware resolves the bearer credential to a player ID and
// stores it on the request context.
func (s *Server) bearerAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := auth.BearerToken(r)
		if !ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"authentication required"}`))
			return
		}

		playerID, err := auth.VerifyToken(s.jwtSecret, token)
		if err != nil {
			s.rejectAuthFailure(w, r, "invalid credentials")
			return
		}

		next.ServeHTTP(w, r.WithContext(auth.WithPlayerID(r.Context(), playerID)))
	})
}

// securityHeaders sets the standard hardening headers on every response.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "no-referrer")
		next.ServeHTTP(w, r)
	})
}

// requestLogger logs one line per completed request.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		logger.FromContext(r.Context()).Info("request completed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("duration", time.Since(start)))
	})
}

// requestIDMiddleware attaches a request ID to the context and echoes it
// back in the response headers.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}
		w.Header().Set(HeaderRequestID, requestID)
		next.ServeHTTP(w, r.WithContext(logger.WithRequestID(r.Context(), requestID)))
	})
}
