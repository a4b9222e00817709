package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/primrec/systemt/internal/registry"
	"github.com/primrec/systemt/internal/term"
)

// InvokeResult is the JSON payload for the invoke command.
type InvokeResult struct {
	Function string   `json:"function"`
	Args     []string `json:"args"`
	Result   string   `json:"result"`
}

// NewInvokeCommand creates the invoke command.
func NewInvokeCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invoke <function> [arg...]",
		Short: "Evaluate one function with literal arguments",
		Long: `Evaluate a single exposed function by name with positional literal
arguments. Arguments are non-negative integers or the booleans true/false.

Examples:
  systemt invoke add 3 4
  systemt invoke isPrime 127
  systemt invoke ackermann 1 1
  systemt invoke xor true false --format json`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInvoke(rootOpts, args[0], args[1:], cmd)
		},
	}
	return cmd
}

func runInvoke(opts *RootOptions, name string, rawArgs []string, cmd *cobra.Command) error {
	args := make([]term.Value, len(rawArgs))
	for i, raw := range rawArgs {
		v, err := parseLiteral(raw)
		if err != nil {
			return WrapExitError(ExitCommandError,
				fmt.Sprintf("argument %d", i), err)
		}
		args[i] = v
	}

	result, err := registry.Invoke(name, args)
	if err != nil {
		return WrapExitError(ExitCommandError, "invocation rejected", err)
	}

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	payload := InvokeResult{
		Function: name,
		Args:     rawArgs,
		Result:   term.String(result),
	}
	return formatter.Print(payload, func(w io.Writer) {
		fmt.Fprintln(w, term.String(result))
	})
}

// parseLiteral converts a command-line token into a boundary value:
// true/false or a decimal integer.
func parseLiteral(raw string) (term.Value, error) {
	switch raw {
	case "true":
		return term.Bool(true), nil
	case "false":
		return term.Bool(false), nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%q is not an integer or boolean literal", raw)
	}
	return term.Num(n), nil
}
