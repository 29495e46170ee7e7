// Command villa runs the villa rental API and its background worker.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "villa",
		Short:         "Villa rental booking API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	serve := newServeCommand()
	// bare `villa` serves the API
	root.RunE = serve.RunE
	root.AddCommand(serve, newConsumeCommand(), newHashPasswordCommand())
	return root
}

func newLogger(dev bool) (*zap.Logger, error) {
	if dev {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
