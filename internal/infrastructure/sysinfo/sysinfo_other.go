//go:build !linux

package sysinfo

import "runtime"

func Read() HostInfo {
	return HostInfo{CPUCount: runtime.NumCPU()}
}
