package main

import (
	"slices"

	"github.com/spf13/cobra"
	"golang.org/x/text/collate"

	"github.com/joshuapare/dynarray/array"
	"github.com/joshuapare/dynarray/array/order"
	"github.com/joshuapare/dynarray/internal/label"
)

var (
	searchLocale     string
	searchIgnoreCase bool
	searchCount      int
)

func init() {
	cmd := newSearchCmd()
	cmd.Flags().StringVar(&searchLocale, "locale", "", "BCP 47 locale for collation (default: root order)")
	cmd.Flags().BoolVar(&searchIgnoreCase, "ignore-case", false, "Compare labels case-insensitively")
	cmd.Flags().IntVar(&searchCount, "count", 20, "Number of generated labels when none are given")
	rootCmd.AddCommand(cmd)
}

func newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <needle> [label...]",
		Short: "Find a label with linear and binary search",
		Long: `The search command builds an array of labels (the given ones, or A, B,
C, ... when none are given) and looks up the needle twice: a linear search
over the labels in the order given, and a binary search over a copy sorted
with the locale's collation rules. Binary search reports the lower bound,
the position where the needle is or would be inserted.

Example:
  dynctl search M
  dynctl search zebra apple zebra mango
  dynctl search ö a o z --locale sv
  dynctl search APPLE apple banana --ignore-case --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(args)
		},
	}
	return cmd
}

// SearchReport is the JSON form of the search output.
type SearchReport struct {
	Needle      string   `json:"needle"`
	Locale      string   `json:"locale"`
	Labels      []string `json:"labels"`
	Linear      uint     `json:"linear"`
	LinearFound bool     `json:"linear_found"`
	Sorted      []string `json:"sorted"`
	LowerBound  uint     `json:"lower_bound"`
	BinaryFound bool     `json:"binary_found"`
}

func runSearch(args []string) error {
	needle := args[0]

	var opts []collate.Option
	if searchIgnoreCase {
		opts = append(opts, collate.IgnoreCase)
	}
	c, err := order.ParseCollator(searchLocale, opts...)
	if err != nil {
		return err
	}

	names := args[1:]
	if len(names) == 0 {
		for i := range searchCount {
			names = append(names, label.Name(i))
		}
	}

	labels, err := fromNames(names)
	if err != nil {
		return err
	}
	defer labels.Release()

	sortedNames := slices.Clone(names)
	c.Sort(sortedNames)
	sorted, err := fromNames(sortedNames)
	if err != nil {
		return err
	}
	defer sorted.Release()

	byName := func(l label.Label) string { return l.Name }
	report := SearchReport{
		Needle: needle,
		Locale: c.Tag().String(),
		Labels: names,
		Sorted: sortedNames,
	}

	report.Linear = array.LinearSearch(labels, needle, func(l label.Label, v string) bool {
		return c.Equal(l.Name, v)
	})
	report.LinearFound = report.Linear < labels.Size()

	report.LowerBound = array.BinarySearch(sorted, needle, order.CollateBy(c, byName))
	if got, err := sorted.Get(report.LowerBound); err == nil {
		report.BinaryFound = c.Equal(got.Name, needle)
	}

	if jsonOut {
		return printJSON(report)
	}

	printVerbose("collation: %s\n", report.Locale)
	if report.LinearFound {
		printInfo("linear: %q found at index %d\n", needle, report.Linear)
	} else {
		printInfo("linear: %q not found (searched %d labels)\n", needle, labels.Size())
	}
	if report.BinaryFound {
		printInfo("binary: %q found at sorted index %d\n", needle, report.LowerBound)
	} else {
		printInfo("binary: %q not found, would insert at sorted index %d\n", needle, report.LowerBound)
	}
	printVerbose("sorted: %v\n", sortedNames)
	return nil
}
