package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/username/date-tools/internal/countdown"
	"github.com/username/date-tools/internal/memreport"
	"go.uber.org/zap"
)

func memoryCmd() *cobra.Command {
	var length int
	var human bool

	cmd := &cobra.Command{
		Use:   "memory [program]",
		Short: "Show memory usage with bar charts",
		Long:  "Show total system memory usage, or the usage of every process of a program followed by the program total.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("length") {
				length = cfg.Memory.GraphLength
			}
			if length <= 0 {
				return fmt.Errorf("graph length must be positive, got %d", length)
			}
			cmd.SilenceUsage = true

			var program string
			if len(args) == 1 {
				program = args[0]
			}

			source, err := memreport.NewSource(cfg.Memory.ProcPath)
			if err != nil {
				return err
			}

			reporter := memreport.NewReporter(source, memreport.Options{
				GraphLength:   length,
				HumanReadable: human,
				DecimalPlaces: cfg.Memory.DecimalPlaces,
			}, logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return reporter.Report(ctx, cmd.OutOrStdout(), program)
		},
	}

	cmd.Flags().IntVarP(&length, "length", "l", 20, "Length of the graph")
	cmd.Flags().BoolVarP(&human, "human-readable", "H", false, "Show sizes in KiB, MiB, GiB")

	return cmd
}

func countdownCmd() *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "countdown [N]",
		Short: "Count down from N (default 3) and blast off",
		Args:  cobra.MatchAll(cobra.MaximumNArgs(1), intArgs(0)),
		RunE: func(cmd *cobra.Command, args []string) error {
			from := cfg.Countdown.From
			if len(args) == 1 {
				from, _ = parseIntArg(args[0])
			}
			if from < 0 {
				return fmt.Errorf("countdown must start at zero or above, got %d", from)
			}
			if !cmd.Flags().Changed("interval") {
				interval = cfg.Countdown.GetInterval()
			}
			cmd.SilenceUsage = true

			logger.Debug("Starting countdown",
				zap.Int("from", from),
				zap.Duration("interval", interval))

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return countdown.Run(ctx, cmd.OutOrStdout(), from, interval)
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", time.Second, "Time between numbers")

	return cmd
}
