// Package memreport reports system and per-program memory usage read from
// a procfs mount.
package memreport

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/prometheus/procfs"
)

// Stats is a snapshot of system memory in KiB
type Stats struct {
	TotalKiB     uint64
	AvailableKiB uint64
}

// UsedKiB returns memory in use
func (s Stats) UsedKiB() uint64 {
	if s.AvailableKiB > s.TotalKiB {
		return 0
	}
	return s.TotalKiB - s.AvailableKiB
}

// UsedFraction returns used memory as a fraction of total
func (s Stats) UsedFraction() float64 {
	if s.TotalKiB == 0 {
		return 0
	}
	return float64(s.UsedKiB()) / float64(s.TotalKiB)
}

// Source reads memory statistics from a procfs mount
type Source struct {
	fs procfs.FS
}

// NewSource creates a Source for the procfs mounted at procPath
func NewSource(procPath string) (*Source, error) {
	fs, err := procfs.NewFS(procPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open procfs at %s: %w", procPath, err)
	}
	return &Source{fs: fs}, nil
}

// SystemMemory returns total and available memory. Available memory falls
// back to MemFree + SwapFree on kernels without MemAvailable.
func (s *Source) SystemMemory() (Stats, error) {
	info, err := s.fs.Meminfo()
	if err != nil {
		return Stats{}, fmt.Errorf("failed to read meminfo: %w", err)
	}
	if info.MemTotal == nil || *info.MemTotal == 0 {
		return Stats{}, errors.New("meminfo has no MemTotal")
	}

	stats := Stats{TotalKiB: *info.MemTotal}
	if info.MemAvailable != nil && *info.MemAvailable > 0 {
		stats.AvailableKiB = *info.MemAvailable
		return stats, nil
	}
	stats.AvailableKiB = value(info.MemFree) + value(info.SwapFree)
	return stats, nil
}

func value(v *uint64) uint64 {
	if v == nil {
		return 0
	}
	return *v
}

// PIDsOf returns the sorted PIDs of processes whose command name or
// executable basename equals program.
func (s *Source) PIDsOf(program string) ([]int, error) {
	procs, err := s.fs.AllProcs()
	if err != nil {
		return nil, fmt.Errorf("failed to list processes: %w", err)
	}

	var pids []int
	for _, p := range procs {
		if matches(p, program) {
			pids = append(pids, p.PID)
		}
	}
	sort.Ints(pids)
	return pids, nil
}

func matches(p procfs.Proc, program string) bool {
	// Processes may exit while we look at them; treat that as no match.
	if comm, err := p.Comm(); err == nil && comm == program {
		return true
	}
	if exe, err := p.Executable(); err == nil && exe != "" && filepath.Base(exe) == program {
		return true
	}
	return false
}

// RSS returns the resident set size of pid in KiB. A process that no longer
// exists uses no memory.
func (s *Source) RSS(pid int) (uint64, error) {
	proc, err := s.fs.Proc(pid)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to open process %d: %w", pid, err)
	}

	rollup, err := proc.ProcSMapsRollup()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read smaps for process %d: %w", pid, err)
	}

	return rollup.Rss / 1024, nil
}
