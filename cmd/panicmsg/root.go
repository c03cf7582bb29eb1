package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/xgx-io/xgx-panicmsg/guard"
)

// cli holds state shared by the commands of one invocation.
type cli struct {
	verbose bool
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "panicmsg",
		Short: "Inspect the messages recovered from panic payloads",
		Long: `panicmsg raises a panic of a chosen shape inside a guarded call and prints
the message recovered from it, exactly as a library caller would see it.

Payloads that are neither strings nor byte slices report the placeholder
"Box<dyn Any>".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if c.verbose {
				config = zap.NewDevelopmentConfig()
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			c.logger = logger
			guard.SetLogger(logger)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
			guard.SetLogger(nil)
		},
	}

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log recovered panics and print the full report")
	root.AddCommand(newProbeCmd(c))
	return root
}
