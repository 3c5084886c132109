package handlers

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/SathiraDM/septic-cheetah-website-sub000/internal/infra/http/middleware"
	"github.com/SathiraDM/septic-cheetah-website-sub000/internal/usecase"
)

type ContactHandler struct {
	submitUC    *usecase.SubmitContactUseCase
	rateLimiter *RateLimiter
	log         *zap.SugaredLogger
}

func NewContactHandler(submitUC *usecase.SubmitContactUseCase, log *zap.SugaredLogger) *ContactHandler {
	return &ContactHandler{
		submitUC:    submitUC,
		rateLimiter: NewRateLimiter(10, time.Minute), // 10 req/min per IP
		log:         log,
	}
}

type contactErrorResponse struct {
	Error string `json:"error"`
}

// Handle is POST /api/contact. Validation failures come back as 400
// with a specific reason; anything unexpected (including a body that
// does not parse) is a generic 500 so no internal detail leaks.
func (h *ContactHandler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientIP := getClientIP(r)
	if !h.rateLimiter.Allow(clientIP) {
		writeJSON(w, http.StatusTooManyRequests, contactErrorResponse{
			Error: "Too many requests. Please try again later.",
		})
		return
	}

	var input usecase.SubmitContactInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.log.Errorw("contact request body unreadable", "ip", clientIP, "error", err)
		writeJSON(w, http.StatusInternalServerError, contactErrorResponse{Error: "Internal server error"})
		return
	}

	output, err := h.submitUC.Execute(ctx, input)
	if err != nil {
		if verr, ok := err.(*usecase.ValidationError); ok {
			middleware.RecordValidationFailure(verr.Field)
			writeJSON(w, http.StatusBadRequest, contactErrorResponse{Error: verr.Message})
			return
		}
		if usecase.IsTechnicalError(err) {
			h.log.Errorw("contact submission failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, contactErrorResponse{Error: err.Error()})
			return
		}
		h.log.Errorw("contact submission failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, contactErrorResponse{Error: "Internal server error"})
		return
	}

	middleware.RecordSubmission(input.Service, input.Urgency)
	writeJSON(w, http.StatusOK, output)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}

type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
}

type visitor struct {
	count     int
	lastReset time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
	}

	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	now := time.Now()

	if !exists {
		rl.visitors[ip] = &visitor{count: 1, lastReset: now}
		return true
	}

	if now.Sub(v.lastReset) > rl.window {
		v.count = 1
		v.lastReset = now
		return true
	}

	v.count++
	return v.count <= rl.limit
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for ip, v := range rl.visitors {
			if now.Sub(v.lastReset) > rl.window*2 {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}
