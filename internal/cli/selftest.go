package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/primrec/systemt/internal/harness"
	"github.com/primrec/systemt/internal/testutil"
)

// SelfTestResult is the JSON payload for the selftest command.
type SelfTestResult struct {
	RunToken string   `json:"run_token"`
	Pass     bool     `json:"pass"`
	Cases    int      `json:"cases"`
	Errors   []string `json:"errors,omitempty"`
}

// NewSelfTestCommand creates the selftest command.
func NewSelfTestCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "selftest",
		Short: "Run the embedded conformance scenario",
		Long: `Run the built-in conformance scenario: literal call/expected-result
pairs covering every exposed function. No external files are needed.

Exit codes:
  0 - All assertions passed
  1 - One or more assertions failed`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelfTest(rootOpts, cmd)
		},
	}
	return cmd
}

func runSelfTest(opts *RootOptions, cmd *cobra.Command) error {
	scenario, err := harness.SelfTest()
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load selftest", err)
	}

	result, err := harness.Run(scenario,
		harness.WithTokenGenerator(testutil.UUIDTokenGenerator{}))
	if err != nil {
		return WrapExitError(ExitCommandError, "selftest is broken", err)
	}

	payload := SelfTestResult{
		RunToken: result.RunToken,
		Pass:     result.Pass,
		Cases:    len(scenario.Cases),
		Errors:   result.Errors,
	}
	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if err := formatter.Print(payload, func(w io.Writer) {
		if payload.Pass {
			fmt.Fprintf(w, "ok: %d assertions passed\n", payload.Cases)
			return
		}
		for _, msg := range payload.Errors {
			fmt.Fprintf(w, "FAIL %s\n", msg)
		}
		fmt.Fprintf(w, "%d of %d assertions failed\n", len(payload.Errors), payload.Cases)
	}); err != nil {
		return err
	}

	if !result.Pass {
		return NewExitError(ExitFailure,
			fmt.Sprintf("%d assertion(s) failed", len(result.Errors)))
	}
	return nil
}
