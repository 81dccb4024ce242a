package calendar

import (
	"snippets/core/output"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Feature mounts the daytype command.
type Feature struct {
	logger  *zap.Logger
	printer *output.Printer
}

// NewFeature creates the calendar feature.
func NewFeature(logger *zap.Logger, printer *output.Printer) *Feature {
	return &Feature{logger: logger, printer: printer}
}

func (f *Feature) Name() string    { return "calendar" }
func (f *Feature) IsEnabled() bool { return true }

// Load registers `daytype <day>`.
func (f *Feature) Load(root *cobra.Command) error {
	root.AddCommand(&cobra.Command{
		Use:       "daytype <day>",
		Short:     "Tell whether a day is a weekday or on the weekend",
		Args:      cobra.ExactArgs(1),
		ValidArgs: lo.Map(Days(), func(d Day, _ int) string { return d.String() }),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := ParseDay(args[0])
			if err != nil {
				f.logger.Warn("Rejected day", zap.String("day", args[0]))
				return err
			}
			return f.printer.Print(cmd.OutOrStdout(), day.String(), GetDayType(day))
		},
	})
	return nil
}
