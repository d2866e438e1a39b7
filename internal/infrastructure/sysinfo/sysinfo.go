// Package sysinfo reads host-level resource metrics for the health document.
package sysinfo

// HostInfo holds a point-in-time snapshot of host resources. On platforms
// without a sysinfo syscall only CPUCount is populated.
type HostInfo struct {
	LoadAverage      [3]float64
	TotalMemoryBytes uint64
	FreeMemoryBytes  uint64
	CPUCount         int
}
