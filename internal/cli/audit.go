package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/solid/internal/audit"
)

// AuditOptions holds flags for the audit command.
type AuditOptions struct {
	*RootOptions
	Patterns []string
}

// NewAuditCommand creates the audit command.
func NewAuditCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AuditOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "audit [module-dir]",
		Short: "Check that consumers depend only on contracts",
		Long: `Load the vignette packages and report their contracts, concrete variants
and which variants satisfy which contracts.

Any function parameter or non-embedded struct field that names a concrete
type from its own package is reported as a violation. New* constructors
are exempt.

Exit codes:
  0 - No violations
  1 - Violations found
  2 - Command error (missing directory, packages failed to load)

Examples:
  solid audit
  solid audit . --pattern ./internal/principles/dip`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return runAudit(opts, dir, cmd)
		},
	}

	cmd.Flags().StringSliceVar(&opts.Patterns, "pattern", []string{audit.DefaultPattern}, "package patterns to audit")

	return cmd
}

func runAudit(opts *AuditOptions, dir string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		msg := fmt.Sprintf("directory not found: %s", dir)
		if opts.Format == "json" {
			_ = formatter.Error(ErrCodeNotFound, msg, nil)
		}
		return NewExitError(ExitCommandError, msg)
	}

	report, err := audit.Run(cmd.Context(), audit.Options{Dir: dir, Patterns: opts.Patterns}, opts.logger())
	if err != nil {
		if opts.Format == "json" {
			_ = formatter.Error(ErrCodeAuditFailed, err.Error(), nil)
		}
		return WrapExitError(ExitCommandError, "audit failed", err)
	}

	if opts.Format == "json" {
		if report.Clean() {
			err = formatter.Success(report)
		} else {
			err = formatter.Failure(report, ErrCodeAuditViolated,
				fmt.Sprintf("%d violation(s) found", len(report.Violations)))
		}
		if err != nil {
			return err
		}
	} else {
		writeAuditText(cmd, report)
	}

	if !report.Clean() {
		return NewExitError(ExitFailure, fmt.Sprintf("%d violation(s) found", len(report.Violations)))
	}
	return nil
}

func writeAuditText(cmd *cobra.Command, report *audit.Report) {
	w := cmd.OutOrStdout()

	fmt.Fprintf(w, "Packages: %d\n", len(report.Packages))
	for _, c := range report.Contracts {
		var impls []string
		for _, i := range report.Implementations {
			if i.Package == c.Package && i.Contract == c.Name {
				name := i.Variant
				if i.ViaPointer {
					name = "*" + name
				}
				impls = append(impls, name)
			}
		}
		fmt.Fprintf(w, "  %s.%s <- %v\n", c.Package, c.Name, impls)
	}

	if report.Clean() {
		fmt.Fprintln(w, "✓ no consumer references a concrete variant")
		return
	}
	for _, v := range report.Violations {
		fmt.Fprintf(w, "✗ %s: %s references concrete %s\n", v.Position, v.Where, v.Concrete)
	}
}
