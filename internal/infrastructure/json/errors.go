package json

import (
	"math"
	"net/http"
	"strconv"
	"time"
)

const RateLimitedMessage = "Too many requests from this IP, please try again later."

// FaultResponse is the body for centrally intercepted handler faults.
// Detail is populated only in development mode.
type FaultResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// NotFoundResponse is the body for unmatched routes.
type NotFoundResponse struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

func WriteInternalError(w http.ResponseWriter, detail string) {
	Write(w, http.StatusInternalServerError, FaultResponse{
		Message: "Something went wrong!",
		Error:   detail,
	})
}

func WriteNotFound(w http.ResponseWriter) {
	Write(w, http.StatusNotFound, NotFoundResponse{
		Message:   "Route not found",
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	})
}

func WriteRateLimited(w http.ResponseWriter, retryAfter time.Duration) {
	if retryAfter > 0 {
		w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
	}
	http.Error(w, RateLimitedMessage, http.StatusTooManyRequests)
}
