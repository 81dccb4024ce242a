package cmd

import (
	"fmt"

	"snippets/core/output"
	"snippets/feature/calendar"
	"snippets/feature/products"
	"snippets/feature/ratings"
	"snippets/feature/sequence"
	"snippets/feature/square"
	"snippets/feature/text"
	"snippets/feature/value"
	"snippets/feature/vehicle"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	sampleBooks = []ratings.Item{
		{Title: "Book A", Rating: 4.5},
		{Title: "Book B", Rating: 3.2},
		{Title: "Book C", Rating: 5.0},
	}
	sampleProducts = []products.Product{
		{Name: "Pen", Price: 10},
		{Name: "Notebook", Price: 25},
		{Name: "Bag", Price: 50},
	}
	sampleCar = vehicle.NewCar("Toyota", 2020, "Corolla")
)

type demoLine struct {
	label string
	value any
}

func newDemoCmd(logg *zap.Logger, printer *output.Printer) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run every utility over built-in sample data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logg.Info("Running demo")

			squarer := square.NewFeature(logg, printer)
			four := squarer.Start(4)
			negative := squarer.Start(-3)

			lines := []demoLine{
				{"formatString(Hello)", text.FormatString("Hello")},
				{"formatString(Hello, true)", text.FormatString("Hello", true)},
				{"formatString(Hello, false)", text.FormatString("Hello", false)},
				{"filterByRating(books)", ratings.FilterByRating(sampleBooks)},
				{"concatenateArrays([a b], [c])", sequence.ConcatenateArrays([]string{"a", "b"}, []string{"c"})},
				{"concatenateArrays([1 2], [3 4], [5])", sequence.ConcatenateArrays([]int{1, 2}, []int{3, 4}, []int{5})},
				{"car.info", vehicle.VehicleInfo(sampleCar.Vehicle())},
				{"car.model", vehicle.CarModel(sampleCar)},
				{"processValue(hello)", value.ProcessValue(value.Text("hello"))},
				{"processValue(10)", value.ProcessValue(value.Number(10))},
				{"getMostExpensiveProduct(products)", sampleMostExpensive()},
				{"getDayType(Monday)", calendar.GetDayType(calendar.Monday)},
				{"getDayType(Sunday)", calendar.GetDayType(calendar.Sunday)},
			}

			if _, err := negative.Collect(); err != nil {
				lines = append(lines, demoLine{"squareAsync(-3)", err.Error()})
			}
			sq, err := four.Collect()
			if err != nil {
				return fmt.Errorf("square 4: %w", err)
			}
			lines = append(lines, demoLine{"squareAsync(4)", sq})

			for _, line := range lines {
				if err := printer.Print(cmd.OutOrStdout(), line.label, line.value); err != nil {
					return err
				}
			}

			logg.Info("Demo completed", zap.Int("results", len(lines)))
			return nil
		},
	}
}

func sampleMostExpensive() any {
	if p, ok := products.MostExpensive(sampleProducts).Get(); ok {
		return p
	}
	return nil
}
