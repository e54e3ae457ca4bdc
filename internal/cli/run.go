package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/solid/internal/catalog"
	"github.com/roach88/solid/internal/runid"
	"github.com/roach88/solid/internal/transcript"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions

	// RunIDs generates the run ID shared by every transcript of one
	// invocation. Defaults to UUIDv7.
	RunIDs runid.Generator
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run [demo...]",
		Short: "Run vignettes",
		Long: `Run the named vignettes in catalog order, or all of them when none are named.

Text output prints each vignette's lines as written. JSON output prints
one canonical transcript per vignette.

Exit codes:
  0 - Vignettes ran
  2 - Unknown vignette name

Examples:
  solid run
  solid run dip lsp
  solid run --format json`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemos(opts, args, cmd)
		},
	}

	return cmd
}

func runDemos(opts *RunOptions, names []string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)
	logger := opts.logger()

	entries, err := selectEntries(names)
	if err != nil {
		var unknown *catalog.UnknownDemoError
		if errors.As(err, &unknown) {
			if opts.Format == "json" {
				_ = formatter.Error(ErrCodeUnknownDemo, unknown.Error(), unknown.Known)
			}
			return WrapExitError(ExitCommandError, "cannot run", err)
		}
		if opts.Format == "json" {
			_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
		}
		return err
	}

	gen := opts.RunIDs
	if gen == nil {
		gen = runid.UUIDv7{}
	}

	id := gen.Generate()
	transcripts := make([]*transcript.Transcript, 0, len(entries))
	for _, e := range entries {
		logger.Debug("running demo", "demo", e.Name, "run_id", id)
		tr := transcript.Record(e.Name, id, e.Demo)
		logger.Info("demo complete", "demo", e.Name, "run_id", id, "lines", len(tr.Lines))
		transcripts = append(transcripts, tr)
	}

	if opts.Format == "json" {
		payload := make([]json.RawMessage, 0, len(transcripts))
		for _, tr := range transcripts {
			b, err := tr.MarshalCanonical()
			if err != nil {
				return fmt.Errorf("encode transcript %s: %w", tr.Demo, err)
			}
			payload = append(payload, b)
		}
		return formatter.SuccessRaw(payload, id)
	}

	w := cmd.OutOrStdout()
	headers := len(transcripts) > 1
	for i, tr := range transcripts {
		if headers {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "== %s ==\n", tr.Demo)
		}
		for _, text := range tr.Texts() {
			fmt.Fprintln(w, text)
		}
	}
	return nil
}

// selectEntries resolves names to catalog entries, keeping catalog order
// and dropping duplicates. No names selects every entry.
func selectEntries(names []string) ([]catalog.Entry, error) {
	if len(names) == 0 {
		return catalog.All(), nil
	}

	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		e, err := catalog.Lookup(n)
		if err != nil {
			return nil, err
		}
		wanted[e.Name] = true
	}

	var out []catalog.Entry
	for _, e := range catalog.All() {
		if wanted[e.Name] {
			out = append(out, e)
		}
	}
	return out, nil
}
