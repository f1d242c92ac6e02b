package commands

import (
	"bookbrowser/internal/book"
	"bookbrowser/internal/platform/logger"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	dataFile string
	logLevel string
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:          "bookbrowser",
		Short:        "Browse the book catalog by keyword, category and page",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&flags.dataFile, "data", "", "JSON book dataset (embedded dataset when empty)")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "log level")

	rootCmd.AddCommand(
		newListCommand(flags),
		newReplayCommand(flags),
		newOptionsCommand(),
		newSeedCommand(flags),
	)

	return rootCmd
}

func (f *globalFlags) dataset() (book.Dataset, error) {
	return book.LoadDataset(f.dataFile)
}

func (f *globalFlags) logger(cmd *cobra.Command) (*logrus.Logger, error) {
	return logger.New(logger.Config{Level: f.logLevel, Output: cmd.ErrOrStderr()})
}
