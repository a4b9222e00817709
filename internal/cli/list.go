package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/primrec/systemt/internal/registry"
)

// FunctionInfo describes one exposed function for the list command.
type FunctionInfo struct {
	Name   string   `json:"name"`
	Params []string `json:"params"`
	Result string   `json:"result"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List exposed functions and their signatures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, cmd)
		},
	}
	return cmd
}

func runList(opts *RootOptions, cmd *cobra.Command) error {
	var infos []FunctionInfo
	for _, name := range registry.Names() {
		f, err := registry.Lookup(name)
		if err != nil {
			return err
		}
		params := make([]string, len(f.Params))
		for i, k := range f.Params {
			params[i] = k.String()
		}
		infos = append(infos, FunctionInfo{
			Name:   name,
			Params: params,
			Result: f.Result.String(),
		})
	}

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	return formatter.Print(infos, func(w io.Writer) {
		for _, info := range infos {
			fmt.Fprintf(w, "%s(%s) -> %s\n",
				info.Name, strings.Join(info.Params, ", "), info.Result)
		}
	})
}
