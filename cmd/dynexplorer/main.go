package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joshuapare/dynarray/internal/logger"
)

type cliOptions struct {
	debug    bool
	capacity uint
	help     bool
	version  bool
}

func parseArgs(args []string) (cliOptions, error) {
	var opts cliOptions
	for i := 0; i < len(args); i++ {
		switch arg := args[i]; arg {
		case "--debug", "-d":
			opts.debug = true
		case "--help", "-h":
			opts.help = true
		case "--version", "-v":
			opts.version = true
		case "--capacity", "-c":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("%s needs a value", arg)
			}
			i++
			n, err := strconv.ParseUint(args[i], 10, 0)
			if err != nil {
				return opts, fmt.Errorf("invalid capacity %q: %w", args[i], err)
			}
			opts.capacity = uint(n)
		default:
			return opts, fmt.Errorf("unknown argument %q", arg)
		}
	}
	return opts, nil
}

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	// Initialize logger (must be before any logging calls)
	if err := logger.Init(logger.Options{
		Enabled: opts.debug,
		App:     "dynexplorer",
		Level:   slog.LevelDebug,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to init logging: %v\n", err)
	}

	if opts.help {
		printHelp()
		os.Exit(0)
	}

	if opts.version {
		fmt.Printf("dynexplorer %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built: %s\n", date)
		os.Exit(0)
	}

	logger.Info("starting dynexplorer", "capacity", opts.capacity, "debug", opts.debug)

	m, err := NewModel(opts.capacity)
	if err != nil {
		logger.Error("create array", "capacity", opts.capacity, "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		logger.Error("TUI error", "error", err)
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}

	if model, ok := finalModel.(Model); ok {
		model.Close()
	}

	logger.Info("dynexplorer exited normally")
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: dynexplorer [options]\n")
	fmt.Fprintf(os.Stderr, "Try 'dynexplorer --help' for more information.\n")
}

func printHelp() {
	fmt.Println("dynexplorer - Interactive view of a dynamic array's slots")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  dynexplorer [options]")
	fmt.Println()
	fmt.Println("DESCRIPTION:")
	fmt.Println("  Shows every slot of a growable array, live or uninitialized, and")
	fmt.Println("  lets you append, remove and clear elements while watching the")
	fmt.Println("  capacity double.")
	fmt.Println()
	fmt.Println("  Keys:")
	fmt.Println("    a / e       Push back / emplace back")
	fmt.Println("    p           Pop back")
	fmt.Println("    x / s       Shift-remove / swap-remove the selected slot")
	fmt.Println("    c           Clear")
	fmt.Println("    +           Double capacity")
	fmt.Println("    R           Release storage")
	fmt.Println("    y           Copy the selected element")
	fmt.Println("    ?           Show help")
	fmt.Println("    q           Quit")
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("  -c, --capacity N  Initial capacity (default 0)")
	fmt.Println("  -d, --debug       Enable debug logging to ~/.dynexplorer/logs/")
	fmt.Println("  -h, --help        Show this help message")
	fmt.Println("  -v, --version     Show version information")
	fmt.Println()
	fmt.Println("For scripted runs, use the 'dynctl' command instead.")
}
