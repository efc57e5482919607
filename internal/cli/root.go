package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	store      string
)

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "quizgame",
		Short:        "Quiz catalog and live quiz game API",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", os.Getenv("CONFIG_PATH"), "path to YAML config")
	cmd.PersistentFlags().StringVar(&store, "store", "mongo", "storage backend: mongo or memory")
	cmd.AddCommand(NewServeCmd(&configPath, &store))
	cmd.AddCommand(NewSeedCmd(&configPath, &store))
	return cmd
}
