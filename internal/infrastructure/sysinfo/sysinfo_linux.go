//go:build linux

package sysinfo

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// loadScale is the fixed-point scale of Sysinfo load averages
// (SI_LOAD_SHIFT = 16).
const loadScale = 1 << 16

func Read() HostInfo {
	info := HostInfo{CPUCount: runtime.NumCPU()}

	var si unix.Sysinfo_t
	if err := unix.Sysinfo(&si); err != nil {
		return info
	}

	unitBytes := uint64(si.Unit)
	info.TotalMemoryBytes = uint64(si.Totalram) * unitBytes
	info.FreeMemoryBytes = uint64(si.Freeram) * unitBytes

	for i, load := range si.Loads {
		info.LoadAverage[i] = float64(load) / loadScale
	}

	return info
}
