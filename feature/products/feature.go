package products

import (
	"snippets/core/output"
	"snippets/core/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Feature mounts the products command.
type Feature struct {
	logger  *zap.Logger
	printer *output.Printer
}

// NewFeature creates the products feature.
func NewFeature(logger *zap.Logger, printer *output.Printer) *Feature {
	return &Feature{logger: logger, printer: printer}
}

func (f *Feature) Name() string    { return "products" }
func (f *Feature) IsEnabled() bool { return true }

// Load registers `products <name=price>...`. With no products the result is null.
func (f *Feature) Load(root *cobra.Command) error {
	root.AddCommand(&cobra.Command{
		Use:   "products <name=price>...",
		Short: "Find the most expensive product",
		RunE: func(cmd *cobra.Command, args []string) error {
			list := make([]Product, 0, len(args))
			for _, arg := range args {
				name, price, err := utils.ParsePair(arg)
				if err != nil {
					f.logger.Warn("Rejected product", zap.String("arg", arg), zap.Error(err))
					return err
				}
				list = append(list, Product{Name: name, Price: price})
			}

			top, ok := MostExpensive(list).Get()
			if !ok {
				f.logger.Info("No products given")
				return f.printer.Print(cmd.OutOrStdout(), "most_expensive", nil)
			}

			f.logger.Info("Found most expensive product",
				zap.String("name", top.Name),
				zap.Float64("price", top.Price),
			)
			return f.printer.Print(cmd.OutOrStdout(), "most_expensive", top)
		},
	})
	return nil
}
