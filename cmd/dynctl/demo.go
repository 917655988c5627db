package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/dynarray/array"
	"github.com/joshuapare/dynarray/internal/label"
	"github.com/joshuapare/dynarray/internal/logger"
)

var (
	demoCount    int
	demoCapacity uint
	demoShift    uint
	demoSwap     uint
)

func init() {
	cmd := newDemoCmd()
	cmd.Flags().IntVar(&demoCount, "count", 20, "Number of labels to append")
	cmd.Flags().UintVar(&demoCapacity, "capacity", 0, "Initial capacity")
	cmd.Flags().UintVar(&demoShift, "shift", 12, "Index to shift-remove from the first copy")
	cmd.Flags().UintVar(&demoSwap, "swap", 9, "Index to swap-remove from the second copy")
	rootCmd.AddCommand(cmd)
}

func newDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Append labels, then shift-remove and swap-remove from copies",
		Long: `The demo command appends labels A, B, C, ... to an array, prints its
size, capacity, first and last items, then removes elements from two copies:
one with order-preserving shift removal, one with constant-time swap removal.
Each copy also has its last element removed.

Example:
  dynctl demo
  dynctl demo --count 8 --shift 3 --swap 2
  dynctl demo --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo()
		},
	}
	return cmd
}

// DemoStep is one removal applied to a copy of the original array.
type DemoStep struct {
	Op     string   `json:"op"`
	Index  uint     `json:"index"`
	Size   uint     `json:"size"`
	Result []string `json:"result"`
}

// DemoReport is the JSON form of the demo output.
type DemoReport struct {
	Count     uint        `json:"count"`
	Capacity  uint        `json:"capacity"`
	First     label.Label `json:"first"`
	Last      label.Label `json:"last"`
	LastIndex uint        `json:"last_index"`
	Labels    []string    `json:"labels"`
	Steps     []DemoStep  `json:"steps"`
}

func runDemo() error {
	if demoCount < 1 {
		return fmt.Errorf("--count must be at least 1, got %d", demoCount)
	}

	foos, err := buildLabels(demoCapacity, demoCount, array.WithGrowHook[label.Label](func(from, to uint64) {
		logger.Debug("grow", "from", from, "to", to)
	}))
	if err != nil {
		return err
	}
	defer foos.Release()

	first, err := foos.First()
	if err != nil {
		return err
	}
	last, err := foos.Last()
	if err != nil {
		return err
	}
	lastIndex, err := foos.LastIndex()
	if err != nil {
		return err
	}

	report := DemoReport{
		Count:     foos.Size(),
		Capacity:  foos.Cap(),
		First:     *first,
		Last:      *last,
		LastIndex: lastIndex,
		Labels:    labelNames(foos),
	}

	if !jsonOut {
		printInfo("Added %d value(s); final capacity: %d\n", report.Count, report.Capacity)
		printInfo("First item: %s\n", report.First)
		printInfo("Last item: %s\n", report.Last)
		printInfo("Last valid index: %d\n", report.LastIndex)
		printInfo("%s\n", formatArray(foos))
	}

	temp, err := foos.Clone()
	if err != nil {
		return err
	}
	defer temp.Release()

	steps, err := removeTwice(temp, "shift-remove", demoShift, temp.ShiftRemove)
	if err != nil {
		return err
	}
	report.Steps = append(report.Steps, steps...)

	if err := temp.CopyFrom(foos); err != nil {
		return err
	}
	steps, err = removeTwice(temp, "swap-remove", demoSwap, temp.SwapRemove)
	if err != nil {
		return err
	}
	report.Steps = append(report.Steps, steps...)

	if jsonOut {
		return printJSON(report)
	}
	return nil
}

// removeTwice removes index from a, then removes a's last index, printing
// the array after each step.
func removeTwice(a *array.Vec[label.Label], op string, index uint, remove func(uint) error) ([]DemoStep, error) {
	var steps []DemoStep
	for range 2 {
		printVerbose("size %d, capacity %d before %s\n", a.Size(), a.Cap(), op)
		if err := remove(index); err != nil {
			return nil, fmt.Errorf("%s %d: %w", op, index, err)
		}
		logger.Debug(op, "index", index, "size", a.Size())
		steps = append(steps, DemoStep{Op: op, Index: index, Size: a.Size(), Result: labelNames(a)})
		if !jsonOut {
			printInfo("%s element %d from array\n", capitalize(op), index)
			printInfo("%s\n", formatArray(a))
		}

		next, err := a.LastIndex()
		if err != nil {
			break
		}
		index = next
	}
	return steps, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
