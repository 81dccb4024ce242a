package square

import (
	"fmt"
	"time"

	"snippets/core/logger"
	"snippets/core/output"
	"snippets/core/utils"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Feature mounts the square command.
type Feature struct {
	logger  *zap.Logger
	printer *output.Printer
}

// NewFeature creates the square feature.
func NewFeature(logger *zap.Logger, printer *output.Printer) *Feature {
	return &Feature{logger: logger, printer: printer}
}

func (f *Feature) Name() string    { return "square" }
func (f *Feature) IsEnabled() bool { return true }

// Load registers `square <n>...`. Every argument gets its own future; results
// are printed in argument order once all of them have settled.
func (f *Feature) Load(root *cobra.Command) error {
	root.AddCommand(&cobra.Command{
		Use:   "square <n>...",
		Short: "Square numbers after a one second delay",
		Args:  cobra.MinimumNArgs(1),
		// Negative numbers must reach RunE instead of being read as flags,
		// so help and the "--" separator are handled there.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if lo.Contains(args, "-h") || lo.Contains(args, "--help") {
				return cmd.Help()
			}
			args = lo.Without(args, "--")

			nums := make([]float64, 0, len(args))
			for _, arg := range args {
				n, ok := utils.ToFloat(arg)
				if !ok {
					return fmt.Errorf("%q is not a number", arg)
				}
				nums = append(nums, n)
			}

			futures := lo.Map(nums, func(n float64, _ int) *mo.Future[float64] {
				return f.Start(n)
			})

			var failed error
			for i, fut := range futures {
				label := args[i]
				sq, err := fut.Collect()
				if err != nil {
					if failed == nil {
						failed = fmt.Errorf("square %s: %w", label, err)
					}
					continue
				}
				if err := f.printer.Print(cmd.OutOrStdout(), label, sq); err != nil {
					return err
				}
			}
			return failed
		},
	})
	return nil
}

// Start begins a square computation and logs its outcome under a fresh task id.
func (f *Feature) Start(n float64) *mo.Future[float64] {
	l := logger.WithTaskID(f.logger, uuid.NewString())
	l.Debug("Square started", zap.Float64("n", n))
	started := time.Now()

	return SquareAsync(n).
		Then(func(sq float64) (float64, error) {
			l.Info("Square resolved", zap.Float64("result", sq), zap.Duration("elapsed", time.Since(started)))
			return sq, nil
		}).
		Catch(func(err error) (float64, error) {
			l.Warn("Square rejected", zap.Float64("n", n), zap.Error(err))
			return 0, err
		})
}
