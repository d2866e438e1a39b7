package status

import (
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/pulsekit/pulsed/internal/infrastructure/configs"
	"github.com/pulsekit/pulsed/internal/infrastructure/json"
)

type Handler struct {
	cfg        configs.Config
	startTime  time.Time
	instanceID string
}

// NewHandler builds the root-route handler. startTime and instanceID are
// process-scoped: fixed at launch, never reset except by restart.
func NewHandler(cfg configs.Config, startTime time.Time, instanceID string) *Handler {
	return &Handler{
		cfg:        cfg,
		startTime:  startTime,
		instanceID: instanceID,
	}
}

// GetStatus godoc
// @Summary      Service status
// @Description  Returns service identity and status metadata, including uptime, memory and rate-limit settings
// @Tags         status
// @Produce      json
// @Success      200 {object} serviceInfoResponse "Service info"
// @Router       / [get]
func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC()

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	hostname, _ := os.Hostname()

	json.Write(w, http.StatusOK, serviceInfoResponse{
		Message:   h.cfg.Service.Message,
		Status:    "online",
		Timestamp: now.Format(time.RFC3339Nano),
		Server: serverInfo{
			UptimeSeconds: now.Sub(h.startTime).Seconds(),
			StartTime:     h.startTime.UTC().Format(time.RFC3339Nano),
			Memory: memoryStats{
				AllocBytes:      mem.Alloc,
				TotalAllocBytes: mem.TotalAlloc,
				SysBytes:        mem.Sys,
				HeapAllocBytes:  mem.HeapAlloc,
				HeapSysBytes:    mem.HeapSys,
				NumGC:           mem.NumGC,
			},
			RuntimeVersion: runtime.Version(),
			Platform:       runtime.GOOS + "/" + runtime.GOARCH,
			Hostname:       hostname,
		},
		Environment: h.cfg.Environment,
		InstanceID:  h.instanceID,
		RateLimit: rateLimitInfo{
			WindowMs: h.cfg.RateLimiter.Window.Milliseconds(),
			Max:      h.cfg.RateLimiter.MaxRequests,
		},
	})
}
