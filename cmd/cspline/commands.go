package main

import (
	"fmt"
	"os"
	"sync/atomic"

	"github.com/hambosto/csp"
	"github.com/hambosto/csp/stages"
	"github.com/spf13/cobra"
)

const appVersion = "0.1.0"

type Commands struct {
	rootCmd *cobra.Command
}

func NewCommands() *Commands {
	c := &Commands{}
	c.setupCommands()
	return c
}

func (c *Commands) Execute() error {
	return c.rootCmd.Execute()
}

func (c *Commands) setupCommands() {
	c.rootCmd = &cobra.Command{
		Use:     "cspline",
		Short:   "Runs a line-oriented pipeline over a text file.",
		Version: appVersion,
		Long: `cspline reads a file line by line, optionally filters, lower-cases, sorts
and deduplicates the lines, and prints the result. It exists to exercise
the csp pipeline library end to end, not to reproduce any particular
text-processing tool.`,
	}

	c.rootCmd.AddCommand(c.createRunCommand())
}

func (c *Commands) createRunCommand() *cobra.Command {
	var (
		needle       string
		invert       bool
		lower        bool
		sortLines    bool
		reverse      bool
		dedup        bool
		showProgress bool
	)

	cmd := &cobra.Command{
		Use:   "run [flags] <file>",
		Short: "Streams a file through a configurable pipeline.",
		Args:  cobra.ExactArgs(1),
		Example: `  cspline run access.log --grep ERROR
  cspline run names.txt --lower --sort --dedup`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPipeline(args[0], needle, invert, lower, sortLines, reverse, dedup, showProgress)
		},
	}

	cmd.Flags().StringVar(&needle, "grep", "", "Keep only lines containing this substring")
	cmd.Flags().BoolVar(&invert, "invert", false, "Invert the --grep match")
	cmd.Flags().BoolVar(&lower, "lower", false, "Case-fold lines to lower case")
	cmd.Flags().BoolVar(&sortLines, "sort", false, "Sort lines before printing")
	cmd.Flags().BoolVar(&reverse, "reverse", false, "Sort in descending order (requires --sort)")
	cmd.Flags().BoolVar(&dedup, "dedup", false, "Drop adjacent duplicate lines (pair with --sort to dedup the whole file)")
	cmd.Flags().BoolVar(&showProgress, "progress", false, "Report read progress to stderr")

	return cmd
}

func (c *Commands) runPipeline(path, needle string, invert, lower, sortLines, reverse, dedup, showProgress bool) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("input file not found: %s", path)
		}
		return fmt.Errorf("failed to access input file %s: %w", path, err)
	}

	var status atomic.Int32
	head := stages.CatWithProgress(path, &status, showProgress)

	tail := csp.Pipe(head, stages.Grab(needle, invert))
	if lower {
		tail = csp.Pipe(tail, stages.ToLower())
	}
	if sortLines {
		tail = csp.Pipe(tail, csp.Sort(func(a, b string) bool { return a < b }, reverse))
	}
	if dedup {
		tail = csp.Pipe(tail, stages.Uniq[string]())
	}

	csp.Run(csp.Pipe(tail, stages.Print()))

	if status.Load() != 0 {
		return fmt.Errorf("pipeline reported a failure reading %s", path)
	}
	return nil
}
