package health

import (
	"math"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/pulsekit/pulsed/internal/infrastructure/json"
	"github.com/pulsekit/pulsed/internal/infrastructure/sysinfo"
)

type Handler struct {
	startTime time.Time
}

func NewHandler(startTime time.Time) *Handler {
	return &Handler{startTime: startTime}
}

// GetHealth godoc
// @Summary      Health check
// @Description  Returns liveness plus host and process resource utilization
// @Tags         health
// @Produce      json
// @Success      200 {object} healthResponse "Service is healthy"
// @Router       /health [get]
// @Router       /healthz [get]
func (h *Handler) GetHealth(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC()
	host := sysinfo.Read()

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	json.Write(w, http.StatusOK, healthResponse{
		Status:        "healthy",
		UptimeSeconds: now.Sub(h.startTime).Seconds(),
		Timestamp:     now.Format(time.RFC3339Nano),
		System: systemInfo{
			LoadAverage:      host.LoadAverage,
			TotalMemoryBytes: host.TotalMemoryBytes,
			FreeMemoryBytes:  host.FreeMemoryBytes,
			CPUCount:         host.CPUCount,
		},
		Process: processInfo{
			Memory: processMemory{
				UsedMB:  roundMB(mem.HeapAlloc),
				TotalMB: roundMB(mem.Sys),
			},
			PID:            os.Getpid(),
			RuntimeVersion: runtime.Version(),
			Goroutines:     runtime.NumGoroutine(),
		},
	})
}

func roundMB(bytes uint64) float64 {
	return math.Round(float64(bytes)/1024/1024*100) / 100
}
