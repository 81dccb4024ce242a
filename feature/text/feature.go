package text

import (
	"snippets/core/output"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Feature mounts the text command.
type Feature struct {
	logger  *zap.Logger
	printer *output.Printer
}

// NewFeature creates the text feature.
func NewFeature(logger *zap.Logger, printer *output.Printer) *Feature {
	return &Feature{logger: logger, printer: printer}
}

func (f *Feature) Name() string    { return "text" }
func (f *Feature) IsEnabled() bool { return true }

// Load registers `text <input> [--lower]`.
func (f *Feature) Load(root *cobra.Command) error {
	var lower bool

	cmd := &cobra.Command{
		Use:   "text <input>",
		Short: "Convert a string to upper or lower case",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := FormatString(args[0], !lower)
			f.logger.Debug("Formatted string", zap.Bool("lower", lower), zap.Int("length", len(result)))
			return f.printer.Print(cmd.OutOrStdout(), "formatted", result)
		},
	}
	cmd.Flags().BoolVar(&lower, "lower", false, "Convert to lower case instead of upper case")

	root.AddCommand(cmd)
	return nil
}
