package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/solid/internal/harness"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
	Filter string // scenario filter (glob pattern)
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check [scenarios-dir]",
		Short: "Run scenario files against the vignettes",
		Long: `Run every scenario file in a directory and report which passed.

The directory defaults to the scenarios_dir setting (testdata/scenarios).
An unfiltered run also fails when a vignette has no scenario.

Exit codes:
  0 - All scenarios passed
  1 - One or more scenarios failed, or a vignette is uncovered
  2 - Command error (missing directory, bad filter)

Examples:
  solid check
  solid check ./testdata/scenarios --filter "dip_*"
  solid check --format json`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := opts.ScenariosDir
			if len(args) == 1 {
				dir = args[0]
			}
			if dir == "" {
				dir = defaultScenariosDir
			}
			return runCheck(opts, dir, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Filter, "filter", "", "filter scenarios by glob pattern")

	return cmd
}

func runCheck(opts *CheckOptions, dir string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		msg := fmt.Sprintf("scenarios directory not found: %s", dir)
		if opts.Format == "json" {
			_ = formatter.Error(ErrCodeNotFound, msg, nil)
		}
		return NewExitError(ExitCommandError, msg)
	}

	formatter.VerboseLog("Checking scenarios in %s", dir)

	result, err := harness.New(opts.logger()).ValidatePrinciples(dir, opts.Filter)
	if err != nil {
		return WrapExitError(ExitCommandError, "check failed", err)
	}

	if opts.Format == "json" {
		if err := writeCheckJSON(formatter, result); err != nil {
			return err
		}
	} else {
		writeCheckText(cmd, result)
	}

	if result.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d scenario(s) failed", result.Failed))
	}
	if len(result.Uncovered) > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("vignettes without scenarios: %v", result.Uncovered))
	}
	return nil
}

func writeCheckJSON(f *OutputFormatter, result *harness.ValidationResult) error {
	switch {
	case result.Failed > 0:
		return f.Failure(result, ErrCodeCheckFailed, fmt.Sprintf("%d scenario(s) failed", result.Failed))
	case len(result.Uncovered) > 0:
		return f.Failure(result, ErrCodeUncovered, "some vignettes have no scenario")
	default:
		return f.Success(result)
	}
}

func writeCheckText(cmd *cobra.Command, result *harness.ValidationResult) {
	w := cmd.OutOrStdout()

	if result.Total == 0 {
		fmt.Fprintln(w, "No scenarios found.")
	}

	for _, s := range result.Scenarios {
		if s.Pass {
			fmt.Fprintf(w, "✓ %s\n", s.Name)
			continue
		}
		fmt.Fprintf(w, "✗ %s\n", s.Name)
		for _, e := range s.Errors {
			fmt.Fprintf(w, "  %s\n", e)
		}
	}

	for _, name := range result.Uncovered {
		fmt.Fprintf(w, "! %s has no scenario\n", name)
	}

	if result.Total > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%d passed, %d failed, %d total\n", result.Passed, result.Failed, result.Total)
	}
}
