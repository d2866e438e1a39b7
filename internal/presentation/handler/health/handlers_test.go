package health_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"runtime"
	"testing"
	"time"

	"github.com/pulsekit/pulsed/internal/presentation/handler/health"
)

func getHealth(t *testing.T) map[string]interface{} {
	t.Helper()

	h := health.NewHandler(time.Now().Add(-time.Second))
	rr := httptest.NewRecorder()
	h.GetHealth(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rr.Code)
	}

	var body map[string]interface{}
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decode JSON: %v (body: %s)", err, rr.Body.String())
	}
	return body
}

func TestGetHealth_Document(t *testing.T) {
	body := getHealth(t)

	if body["status"] != "healthy" {
		t.Errorf("status: got %v, want healthy", body["status"])
	}
	if body["uptimeSeconds"].(float64) <= 0 {
		t.Errorf("uptimeSeconds: got %v, want > 0", body["uptimeSeconds"])
	}
	if _, err := time.Parse(time.RFC3339Nano, body["timestamp"].(string)); err != nil {
		t.Errorf("timestamp: %v", err)
	}
}

func TestGetHealth_ProcessMemory(t *testing.T) {
	body := getHealth(t)

	process := body["process"].(map[string]interface{})
	memory := process["memory"].(map[string]interface{})

	used := memory["usedMB"].(float64)
	total := memory["totalMB"].(float64)
	if used < 0 {
		t.Errorf("usedMB: got %v, want >= 0", used)
	}
	if total < 0 {
		t.Errorf("totalMB: got %v, want >= 0", total)
	}
	if used > total {
		t.Errorf("usedMB %v exceeds totalMB %v", used, total)
	}
}

func TestGetHealth_ProcessIdentity(t *testing.T) {
	body := getHealth(t)

	process := body["process"].(map[string]interface{})
	if int(process["pid"].(float64)) != os.Getpid() {
		t.Errorf("pid: got %v, want %d", process["pid"], os.Getpid())
	}
	if process["runtimeVersion"] != runtime.Version() {
		t.Errorf("runtimeVersion: got %v", process["runtimeVersion"])
	}
	if process["goroutines"].(float64) < 1 {
		t.Errorf("goroutines: got %v, want >= 1", process["goroutines"])
	}
}

func TestGetHealth_SystemMetrics(t *testing.T) {
	body := getHealth(t)

	system := body["system"].(map[string]interface{})
	if system["cpuCount"].(float64) < 1 {
		t.Errorf("cpuCount: got %v, want >= 1", system["cpuCount"])
	}

	loads := system["loadAverage"].([]interface{})
	if len(loads) != 3 {
		t.Fatalf("loadAverage: got %d entries, want 3", len(loads))
	}
	for i, load := range loads {
		if load.(float64) < 0 {
			t.Errorf("loadAverage[%d]: got %v, want >= 0", i, load)
		}
	}
}
