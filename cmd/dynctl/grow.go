package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/dynarray/array"
	"github.com/joshuapare/dynarray/array/alloc"
	"github.com/joshuapare/dynarray/internal/logger"
)

var (
	growCount    int
	growCapacity uint
	growProvider string
	growBudget   int
)

func init() {
	cmd := newGrowCmd()
	cmd.Flags().IntVar(&growCount, "count", 100, "Number of elements to append")
	cmd.Flags().UintVar(&growCapacity, "capacity", 0, "Initial capacity")
	cmd.Flags().StringVar(&growProvider, "provider", "heap", "Storage provider: heap, budget or mmap")
	cmd.Flags().IntVar(&growBudget, "budget", 0, "Byte budget for the budget provider")
	rootCmd.AddCommand(cmd)
}

func newGrowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Trace capacity growth while appending",
		Long: `The grow command appends 8-byte integers one at a time and prints every
growth of the backing block. With the budget provider it stops at the first
append that would exceed the byte budget.

Example:
  dynctl grow --count 1000
  dynctl grow --capacity 10 --count 50
  dynctl grow --provider budget --budget 4096
  dynctl grow --provider mmap --count 100000 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGrow()
		},
	}
	return cmd
}

// GrowEvent records one reallocation.
type GrowEvent struct {
	AtSize uint   `json:"at_size"`
	From   uint64 `json:"from"`
	To     uint64 `json:"to"`
	Bytes  int    `json:"bytes"`
}

// GrowReport is the JSON form of the grow output.
type GrowReport struct {
	Provider string      `json:"provider"`
	Size     uint        `json:"size"`
	Capacity uint        `json:"capacity"`
	Events   []GrowEvent `json:"events"`
	Error    string      `json:"error,omitempty"`
}

func runGrow() error {
	if growCount < 0 {
		return fmt.Errorf("--count must not be negative, got %d", growCount)
	}
	p, err := newProvider[uint64](growProvider, growBudget)
	if err != nil {
		return err
	}

	report := GrowReport{Provider: growProvider}
	var a *array.Vec[uint64]
	a, err = array.New(growCapacity,
		array.WithProvider(p),
		array.WithGrowHook[uint64](func(from, to uint64) {
			// The block was just allocated, so its size always fits in int.
			bytes, err := alloc.BlockBytes[uint64](int(to))
			if err != nil {
				logger.Warn("block size", "slots", to, "error", err)
			}
			ev := GrowEvent{AtSize: a.Size(), From: from, To: to, Bytes: bytes}
			report.Events = append(report.Events, ev)
			logger.Debug("grow", "from", from, "to", to, "bytes", bytes)
			if !jsonOut {
				printInfo("grow at size %d: %d -> %d slots (%d bytes)\n", ev.AtSize, from, to, bytes)
			}
		}),
	)
	if err != nil {
		return err
	}
	defer a.Release()

	var appendErr error
	for i := range growCount {
		if appendErr = a.PushBack(uint64(i)); appendErr != nil {
			break
		}
	}

	report.Size, report.Capacity = a.Size(), a.Cap()
	if appendErr != nil {
		report.Error = appendErr.Error()
	}

	if jsonOut {
		if err := printJSON(report); err != nil {
			return err
		}
	} else {
		printInfo("size %d, capacity %d, %d reallocation(s)\n", report.Size, report.Capacity, len(report.Events))
	}

	if appendErr != nil {
		if errors.Is(appendErr, alloc.ErrBudget) {
			printVerbose("budget of %d bytes exhausted\n", growBudget)
		}
		return fmt.Errorf("append %d: %w", report.Size, appendErr)
	}
	return nil
}
