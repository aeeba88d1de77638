// Package cli is the non-interactive argument surface of the foundry
// binary. It only parses flags: --help and --version print and return,
// positional arguments and unknown flags are parse errors.
package cli

import (
	"io"

	"github.com/spf13/cobra"
)

const (
	Name  = "foundry"
	About = "Azure AI Foundry Code"
)

// NewRootCommand builds the foundry command for the given version.
func NewRootCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:     Name,
		Short:   About,
		Long:    About + "\n\nRun without arguments to start the interactive console.",
		Version: version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
	}
}

// Execute parses args, writing help or version text to out and errors to
// errOut. A parse error is returned after it has been reported.
func Execute(version string, args []string, out, errOut io.Writer) error {
	cmd := NewRootCommand(version)
	cmd.SetArgs(args)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	return cmd.Execute()
}
