package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/slotpack/internal/slot"
)

// WidthReport is the width command's success payload.
type WidthReport struct {
	Type string `json:"type"`
	Bits int    `json:"bits"`
}

// NewWidthCommand creates the width command.
func NewWidthCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "width <type>",
		Short: "Print the storage bit width of a type",
		Long: `Resolve a single type tag to the number of bits it occupies in a
storage slot.

Example:
  slotpack width uint128
  slotpack width bytes4 --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWidth(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runWidth(opts *RootOptions, typ string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	bits, err := slot.Variable{Type: typ}.NumBits()
	if err != nil {
		var typeErr *slot.TypeError
		if errors.As(err, &typeErr) {
			_ = formatter.Error(string(typeErr.Code), typeErrMessage(typeErr), nil)
		} else {
			_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
		}
		return WrapExitError(ExitFailure, "cannot size type", err)
	}

	if formatter.Format == "json" {
		return formatter.Success(WidthReport{Type: typ, Bits: bits})
	}

	fmt.Fprintf(formatter.Writer, "%s: %d bits\n", typ, bits)
	return nil
}
