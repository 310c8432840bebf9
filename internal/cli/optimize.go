package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/slotpack/internal/slot"
)

// OptimizeOptions holds flags for the optimize command.
type OptimizeOptions struct {
	*RootOptions
	File string
}

// OptimizeReport is the optimize command's success payload.
type OptimizeReport struct {
	OriginalSlots int              `json:"original_slots"`
	MinSlots      int              `json:"min_slots"`
	MaxSlots      int              `json:"max_slots"`
	WinningOrder  []ReportVariable `json:"winning_order"`
}

// ReportVariable is one variable of the winning order.
type ReportVariable struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

// NewOptimizeCommand creates the optimize command.
func NewOptimizeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &OptimizeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "optimize [declarations...]",
		Short: "Find a slot-minimal ordering for a set of variables",
		Long: `Search every ordering of the given state variables and report one
that packs into the fewest 256-bit storage slots.

Declarations are semicolon-separated "<type> <name>" pairs, supplied
either as arguments or from a file (--file). Files ending in .yaml or
.yml are parsed as YAML layouts instead.

The search is exhaustive, so expect it to be slow beyond roughly a
dozen variables.

Example:
  slotpack optimize "uint128 a; uint256 b; uint128 c;"
  slotpack optimize -f layout.yaml --format json`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOptimize(opts, args, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "file of variable declarations (text or YAML)")

	return cmd
}

func runOptimize(opts *OptimizeOptions, args []string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}

	variables, err := loadOptimizeInput(opts, args)
	if err != nil {
		return outputOptimizeError(formatter, err)
	}

	formatter.VerboseLog("Parsed %d variable(s)", len(variables))

	result, err := slot.FindOptimalOrdering(variables)
	if err != nil {
		return outputOptimizeError(formatter, err)
	}

	return outputOptimizeReport(formatter, result)
}

// loadOptimizeInput resolves the declaration source: exactly one of
// positional arguments or --file.
func loadOptimizeInput(opts *OptimizeOptions, args []string) ([]slot.Variable, error) {
	switch {
	case opts.File != "" && len(args) > 0:
		return nil, NewExitError(ExitCommandError, "requires only one of: variables file or variables arguments")
	case opts.File != "":
		return LoadVariablesFile(opts.File)
	case len(args) > 0:
		return ParseDeclarations(strings.Join(args, " "))
	}
	return nil, NewExitError(ExitCommandError, "requires one of: variables file or variables arguments")
}

// outputOptimizeError renders a failure and maps it to an exit code.
func outputOptimizeError(formatter *OutputFormatter, err error) error {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		_ = formatter.Error(ErrCodeUsage, exitErr.Message, nil)
		return exitErr
	}

	var typeErr *slot.TypeError
	if errors.As(err, &typeErr) {
		details := map[string]string{"type": typeErr.Type, "name": typeErr.Name}
		_ = formatter.Error(string(typeErr.Code), typeErrMessage(typeErr), details)
		return WrapExitError(ExitFailure, "optimization failed", err)
	}

	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		_ = formatter.Error(ErrCodeParse, parseErr.Error(), nil)
		return WrapExitError(ExitFailure, "invalid declarations", err)
	}

	if errors.Is(err, fs.ErrNotExist) {
		_ = formatter.Error(ErrCodeNotFound, err.Error(), nil)
		return WrapExitError(ExitCommandError, "variables file not found", err)
	}

	_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
	return WrapExitError(ExitCommandError, "optimize failed", err)
}

// typeErrMessage renders a TypeError without its code prefix; the
// formatter prints the code separately.
func typeErrMessage(err *slot.TypeError) string {
	if err.Name != "" {
		return fmt.Sprintf("cannot size type %q (variable %q)", err.Type, err.Name)
	}
	return fmt.Sprintf("cannot size type %q", err.Type)
}

// outputOptimizeReport renders the search result.
func outputOptimizeReport(formatter *OutputFormatter, result *slot.Result) error {
	if formatter.Format == "json" {
		report := OptimizeReport{
			OriginalSlots: result.OriginalSlots,
			MinSlots:      result.MinSlots,
			MaxSlots:      result.MaxSlots,
			WinningOrder:  make([]ReportVariable, 0, len(result.WinningOrder)),
		}
		for _, v := range result.WinningOrder {
			report.WinningOrder = append(report.WinningOrder, ReportVariable{Type: v.Type, Name: v.Name})
		}
		return formatter.Success(report)
	}

	fmt.Fprint(formatter.Writer, RenderReport(result))
	return nil
}

// RenderReport renders the text report: the three slot counts, the
// winner as a semicolon-terminated declaration block, and the winner as
// a comma-separated tuple.
func RenderReport(result *slot.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "original slots: %d   min slots: %d   max slots: %d\n",
		result.OriginalSlots, result.MinSlots, result.MaxSlots)

	b.WriteString("\n")
	for _, v := range result.WinningOrder {
		b.WriteString(v.String())
		b.WriteString(";\n")
	}

	b.WriteString("\n")
	tuple := make([]string, len(result.WinningOrder))
	for i, v := range result.WinningOrder {
		tuple[i] = v.String()
	}
	b.WriteString(strings.Join(tuple, ","))
	b.WriteString("\n")

	return b.String()
}
