package status

// serviceInfoResponse is the identity/status document served at the root
// route.
type serviceInfoResponse struct {
	Message     string        `json:"message"`
	Status      string        `json:"status" example:"online"`
	Timestamp   string        `json:"timestamp" example:"2024-01-01T12:00:00Z"` // Current server timestamp in RFC3339 format
	Server      serverInfo    `json:"server"`
	Environment string        `json:"environment" example:"development"`
	InstanceID  string        `json:"instanceId"`
	RateLimit   rateLimitInfo `json:"rateLimit"`
}

type serverInfo struct {
	UptimeSeconds  float64     `json:"uptimeSeconds"`
	StartTime      string      `json:"startTime"` // Fixed once at process launch
	Memory         memoryStats `json:"memory"`
	RuntimeVersion string      `json:"runtimeVersion" example:"go1.25.3"`
	Platform       string      `json:"platform" example:"linux/amd64"`
	Hostname       string      `json:"hostname"`
}

// memoryStats exposes the Go runtime memory counters.
type memoryStats struct {
	AllocBytes      uint64 `json:"allocBytes"`
	TotalAllocBytes uint64 `json:"totalAllocBytes"`
	SysBytes        uint64 `json:"sysBytes"`
	HeapAllocBytes  uint64 `json:"heapAllocBytes"`
	HeapSysBytes    uint64 `json:"heapSysBytes"`
	NumGC           uint32 `json:"numGC"`
}

type rateLimitInfo struct {
	WindowMs int64 `json:"windowMs"`
	Max      int   `json:"max"`
}
