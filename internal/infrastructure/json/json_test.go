package json

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestWrite_SetsContentType(t *testing.T) {
	rr := httptest.NewRecorder()
	Write(rr, 200, map[string]string{"status": "online"})

	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type: got %q, want application/json", ct)
	}
	if rr.Code != 200 {
		t.Errorf("status: got %d, want 200", rr.Code)
	}
}

func TestWriteNotFound(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteNotFound(rr)

	if rr.Code != 404 {
		t.Fatalf("status: got %d, want 404", rr.Code)
	}

	var body NotFoundResponse
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Message != "Route not found" {
		t.Errorf("message: got %q", body.Message)
	}
	if _, err := time.Parse(time.RFC3339Nano, body.Timestamp); err != nil {
		t.Errorf("timestamp %q: %v", body.Timestamp, err)
	}
}

func TestWriteInternalError_WithDetail(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteInternalError(rr, "kaboom")

	if rr.Code != 500 {
		t.Fatalf("status: got %d, want 500", rr.Code)
	}

	var body map[string]interface{}
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["message"] != "Something went wrong!" {
		t.Errorf("message: got %v", body["message"])
	}
	if body["error"] != "kaboom" {
		t.Errorf("error: got %v, want kaboom", body["error"])
	}
}

func TestWriteInternalError_WithoutDetail(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteInternalError(rr, "")

	var body map[string]interface{}
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, present := body["error"]; present {
		t.Error("error field present, want omitted")
	}
}

func TestWriteRateLimited(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteRateLimited(rr, 90*time.Second)

	if rr.Code != 429 {
		t.Fatalf("status: got %d, want 429", rr.Code)
	}
	if got := rr.Header().Get("Retry-After"); got != "90" {
		t.Errorf("Retry-After: got %q, want 90", got)
	}
	if !strings.Contains(rr.Body.String(), RateLimitedMessage) {
		t.Errorf("body: got %q, want rate-limited message", rr.Body.String())
	}
}
