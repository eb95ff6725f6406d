package memreport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const maxConcurrentReads = 8

var systemLabel = fmt.Sprintf("%-14s", "Memory")

// Options controls report rendering
type Options struct {
	GraphLength   int
	HumanReadable bool
	DecimalPlaces int
}

// Reporter renders memory usage reports
type Reporter struct {
	source *Source
	opts   Options
	logger *zap.Logger
}

// NewReporter creates a new Reporter
func NewReporter(source *Source, opts Options, logger *zap.Logger) *Reporter {
	return &Reporter{
		source: source,
		opts:   opts,
		logger: logger,
	}
}

// Report writes the system memory line, or one line per process of program
// followed by the program total when program is not empty.
func (r *Reporter) Report(ctx context.Context, w io.Writer, program string) error {
	stats, err := r.source.SystemMemory()
	if err != nil {
		return err
	}

	r.logger.Debug("System memory",
		zap.Uint64("total_kib", stats.TotalKiB),
		zap.Uint64("available_kib", stats.AvailableKiB))

	if program == "" {
		_, err := fmt.Fprintln(w, r.line(systemLabel, stats.UsedKiB(), stats.TotalKiB))
		return err
	}

	pids, err := r.source.PIDsOf(program)
	if err != nil {
		return err
	}
	if len(pids) == 0 {
		_, err := fmt.Fprintf(w, "%s not found.\n", program)
		return err
	}

	rss, err := r.readAll(ctx, pids)
	if err != nil {
		return err
	}

	var total uint64
	for i, pid := range pids {
		total += rss[i]
		if _, err := fmt.Fprintln(w, r.line(strconv.Itoa(pid), rss[i], stats.TotalKiB)); err != nil {
			return err
		}
	}

	_, err = fmt.Fprintln(w, r.line(program, total, stats.TotalKiB))
	return err
}

// readAll reads the RSS of every pid concurrently, preserving order
func (r *Reporter) readAll(ctx context.Context, pids []int) ([]uint64, error) {
	rss := make([]uint64, len(pids))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentReads)
	for i, pid := range pids {
		i, pid := i, pid
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			kib, err := r.source.RSS(pid)
			if errors.Is(err, os.ErrPermission) {
				r.logger.Warn("No permission to read process memory",
					zap.Int("pid", pid))
				return nil
			}
			if err != nil {
				return err
			}
			rss[i] = kib
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to read process memory: %w", err)
	}
	return rss, nil
}

func (r *Reporter) line(label string, used, total uint64) string {
	fraction := 0.0
	if total > 0 {
		fraction = float64(used) / float64(total)
	}
	return fmt.Sprintf("%-10s [%s| %d%%] %s/%s",
		label,
		Bar(fraction, r.opts.GraphLength),
		Percent(fraction),
		r.amount(used),
		r.amount(total))
}

func (r *Reporter) amount(kib uint64) string {
	if r.opts.HumanReadable {
		return HumanKiB(kib, r.opts.DecimalPlaces)
	}
	return strconv.FormatUint(kib, 10)
}
