package cmd

import (
	"fmt"
	"os"

	"snippets/core/config"
	"snippets/core/loader"
	"snippets/core/logger"
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

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "snippets",
	Short: "Small utilities with a command line front end",
	Long: `Snippets bundles a handful of independent utilities: case conversion,
rating filters, list concatenation, vehicle descriptions, value processing,
product price scans, day classification and delayed squaring.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := run(os.Args[1:]); err != nil {
		// Debug level gives ISO8601 timestamps, console matches CLI expectations.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logg.Sync()

	printer, err := output.NewPrinter(cfg.Output)
	if err != nil {
		return err
	}

	if _, err := Bootstrap(RootCmd, cfg, logg, printer); err != nil {
		return err
	}

	RootCmd.SetArgs(args)
	return RootCmd.Execute()
}

// Features returns every snippet feature in the order it is registered.
func Features(logg *zap.Logger, printer *output.Printer) []loader.Feature {
	return []loader.Feature{
		text.NewFeature(logg, printer),
		ratings.NewFeature(logg, printer),
		sequence.NewFeature(logg, printer),
		vehicle.NewFeature(logg, printer),
		value.NewFeature(logg, printer),
		products.NewFeature(logg, printer),
		calendar.NewFeature(logg, printer),
		square.NewFeature(logg, printer),
	}
}

// Bootstrap mounts the demo command and every enabled feature on root.
func Bootstrap(root *cobra.Command, cfg *config.Config, logg *zap.Logger, printer *output.Printer) (*loader.Manager, error) {
	mgr := loader.NewManager(cfg.Features, logg)
	for _, f := range Features(logg, printer) {
		mgr.Register(f)
	}

	if err := mgr.LoadAll(root); err != nil {
		return nil, err
	}
	root.AddCommand(newDemoCmd(logg, printer))

	logg.Debug("Features loaded", zap.Strings("features", mgr.Loaded()))
	return mgr, nil
}
