// Command bigcalc evaluates arbitrary-precision integer expressions.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var rootCmd = &cobra.Command{
	Use:           "bigcalc",
	Short:         "Arbitrary-precision integer calculator",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
		verbose, err := cmd.Flags().GetBool("verbose")
		if err != nil {
			return err
		}

		logger, err = newLogger(verbose)

		return err
	},
}

var logger = zap.NewNop()

func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.OutputPaths = []string{"stderr"}
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	return config.Build()
}

func init() {
	rootCmd.PersistentFlags().Bool("verbose", false, "log each evaluation step")
	rootCmd.PersistentFlags().Bool("hex", false, "print results in hexadecimal")

	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(hexCmd)
	rootCmd.AddCommand(decCmd)
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
}

func main() {
	err := rootCmd.Execute()
	_ = logger.Sync()

	if err != nil {
		fmt.Fprintln(os.Stderr, "bigcalc:", err)
		os.Exit(1)
	}
}
