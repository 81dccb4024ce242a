package sequence

import (
	"snippets/core/output"
	"snippets/core/utils"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Feature mounts the concat command.
type Feature struct {
	logger  *zap.Logger
	printer *output.Printer
}

// NewFeature creates the sequence feature.
func NewFeature(logger *zap.Logger, printer *output.Printer) *Feature {
	return &Feature{logger: logger, printer: printer}
}

func (f *Feature) Name() string    { return "sequence" }
func (f *Feature) IsEnabled() bool { return true }

// Load registers `concat <list>...` where every list is comma separated.
func (f *Feature) Load(root *cobra.Command) error {
	root.AddCommand(&cobra.Command{
		Use:   "concat <a,b,...>...",
		Short: "Concatenate comma separated lists in order",
		RunE: func(cmd *cobra.Command, args []string) error {
			lists := lo.Map(args, func(arg string, _ int) []string {
				return utils.SplitList(arg)
			})

			merged := ConcatenateArrays(lists...)
			f.logger.Debug("Concatenated lists", zap.Int("lists", len(lists)), zap.Int("elements", len(merged)))
			return f.printer.Print(cmd.OutOrStdout(), "concatenated", merged)
		},
	})
	return nil
}
