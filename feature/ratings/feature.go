package ratings

import (
	"snippets/core/output"
	"snippets/core/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Feature mounts the ratings command.
type Feature struct {
	logger  *zap.Logger
	printer *output.Printer
}

// NewFeature creates the ratings feature.
func NewFeature(logger *zap.Logger, printer *output.Printer) *Feature {
	return &Feature{logger: logger, printer: printer}
}

func (f *Feature) Name() string    { return "ratings" }
func (f *Feature) IsEnabled() bool { return true }

// Load registers `ratings <title=rating>...`.
func (f *Feature) Load(root *cobra.Command) error {
	root.AddCommand(&cobra.Command{
		Use:   "ratings <title=rating>...",
		Short: "Keep the items rated 4 or higher",
		RunE: func(cmd *cobra.Command, args []string) error {
			items := make([]Item, 0, len(args))
			for _, arg := range args {
				title, rating, err := utils.ParsePair(arg)
				if err != nil {
					f.logger.Warn("Rejected rated item", zap.String("arg", arg), zap.Error(err))
					return err
				}
				items = append(items, Item{Title: title, Rating: rating})
			}

			kept := FilterByRating(items)
			f.logger.Info("Filtered items by rating",
				zap.Int("total", len(items)),
				zap.Int("kept", len(kept)),
			)
			return f.printer.Print(cmd.OutOrStdout(), "items", kept)
		},
	})
	return nil
}
