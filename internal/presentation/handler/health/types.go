package health

// healthResponse represents the liveness and resource-utilization document
type healthResponse struct {
	Status        string      `json:"status" example:"healthy"`
	UptimeSeconds float64     `json:"uptimeSeconds"`
	Timestamp     string      `json:"timestamp" example:"2024-01-01T12:00:00Z"` // Current server timestamp in RFC3339 format
	System        systemInfo  `json:"system"`
	Process       processInfo `json:"process"`
}

type systemInfo struct {
	LoadAverage      [3]float64 `json:"loadAverage"`
	TotalMemoryBytes uint64     `json:"totalMemoryBytes"`
	FreeMemoryBytes  uint64     `json:"freeMemoryBytes"`
	CPUCount         int        `json:"cpuCount"`
}

type processInfo struct {
	Memory         processMemory `json:"memory"`
	PID            int           `json:"pid"`
	RuntimeVersion string        `json:"runtimeVersion" example:"go1.25.3"`
	Goroutines     int           `json:"goroutines"`
}

// processMemory reports heap usage in megabytes, rounded to 2 decimals.
type processMemory struct {
	UsedMB  float64 `json:"usedMB"`
	TotalMB float64 `json:"totalMB"`
}
