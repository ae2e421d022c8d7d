// Package system probes the host and process environment a simulation runs
// under. All probes are pure queries: where the platform cannot answer they
// return a documented fallback instead of failing.
package system

import (
	"os"
	"time"

	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/load"
	"github.com/shirou/gopsutil/process"
)

// Communicator is the minimal process-group contract the probes need. The
// runtime package's communicators satisfy it; accepting a local interface
// keeps the two packages independent.
type Communicator interface {
	Size() int
	Rank() int
}

// CPULoad returns the one-minute load average. Interpreting the number still
// requires knowing the machine's processor count. Returns 0 on platforms
// without a load average.
func CPULoad() float64 {
	avg, err := load.Avg()
	if err != nil {
		return 0
	}
	return avg.Load1
}

// Hostname returns the name of the host this process runs on, or "unknown"
// when the platform will not say.
func Hostname() string {
	if info, err := host.Info(); err == nil && info.Hostname != "" {
		return info.Hostname
	}
	if name, err := os.Hostname(); err == nil && name != "" {
		return name
	}
	return "unknown"
}

// TimeHMS returns the present wall-clock time formatted HH:MM:SS.
func TimeHMS() string {
	return TimeHMSAt(time.Now())
}

func TimeHMSAt(t time.Time) string {
	return t.Format("15:04:05")
}

// MemoryRSS returns the resident set size of the current process in bytes,
// or 0 where unsupported.
func MemoryRSS() uint64 {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return 0
	}
	mem, err := p.MemoryInfo()
	if err != nil {
		return 0
	}
	return mem.RSS
}

// ProcessCount returns the number of cooperating processes in c's group. A
// nil communicator means a run without a distributed runtime and degrades
// to 1.
func ProcessCount(c Communicator) int {
	if c == nil {
		return 1
	}
	return c.Size()
}

// ProcessRank returns this process's zero-based index within c's group,
// unique in [0, ProcessCount(c)). A nil communicator degrades to 0.
func ProcessRank(c Communicator) int {
	if c == nil {
		return 0
	}
	return c.Rank()
}
