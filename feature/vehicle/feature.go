package vehicle

import (
	"snippets/core/output"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Feature mounts the vehicle command.
type Feature struct {
	logger  *zap.Logger
	printer *output.Printer
}

// NewFeature creates the vehicle feature.
func NewFeature(logger *zap.Logger, printer *output.Printer) *Feature {
	return &Feature{logger: logger, printer: printer}
}

func (f *Feature) Name() string    { return "vehicle" }
func (f *Feature) IsEnabled() bool { return true }

// Load registers `vehicle --make M --year Y [--model N]`.
// Without --model only the vehicle description is printed.
func (f *Feature) Load(root *cobra.Command) error {
	var (
		mk    string
		year  int
		model string
	)

	cmd := &cobra.Command{
		Use:   "vehicle",
		Short: "Describe a vehicle or a car",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if !cmd.Flags().Changed("model") {
				return f.printer.Print(out, "info", VehicleInfo(NewVehicle(mk, year)))
			}

			car := NewCar(mk, year, model)
			f.logger.Debug("Describing car", zap.String("make", mk), zap.Int("year", year))
			if err := f.printer.Print(out, "info", VehicleInfo(car.Vehicle())); err != nil {
				return err
			}
			return f.printer.Print(out, "model", CarModel(car))
		},
	}
	cmd.Flags().StringVar(&mk, "make", "", "Vehicle make")
	cmd.Flags().IntVar(&year, "year", 0, "Model year")
	cmd.Flags().StringVar(&model, "model", "", "Car model")
	_ = cmd.MarkFlagRequired("make")
	_ = cmd.MarkFlagRequired("year")

	root.AddCommand(cmd)
	return nil
}
