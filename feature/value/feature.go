package value

import (
	"snippets/core/output"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Feature mounts the value command.
type Feature struct {
	logger  *zap.Logger
	printer *output.Printer
}

// NewFeature creates the value feature.
func NewFeature(logger *zap.Logger, printer *output.Printer) *Feature {
	return &Feature{logger: logger, printer: printer}
}

func (f *Feature) Name() string    { return "value" }
func (f *Feature) IsEnabled() bool { return true }

// Load registers `value <raw>`. Numeric input is doubled, anything else is measured.
// Pass --text to measure input that looks numeric.
func (f *Feature) Load(root *cobra.Command) error {
	var forceText bool

	cmd := &cobra.Command{
		Use:   "value <raw>",
		Short: "Measure text or double a number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := Parse(args[0])
			if forceText {
				v = Text(args[0])
			}

			kind := "number"
			if v.IsText() {
				kind = "text"
			}
			f.logger.Debug("Processing value", zap.String("kind", kind))

			return f.printer.Print(cmd.OutOrStdout(), "result", ProcessValue(v))
		},
	}
	cmd.Flags().BoolVar(&forceText, "text", false, "Treat the argument as text even if it is numeric")

	root.AddCommand(cmd)
	return nil
}
