// cmd/game/main.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"go-tower-keep/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "towerkeep",
	Short: "Tower Keep, a top-down tower defense",
	Long: `Tower Keep: guard the tower against endless enemies.

Settings come from an optional config file and TOWERKEEP_* environment
variables. LOG_LEVEL and LOG_FORMAT control logging.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "config file (yaml, json or toml)")
	flags.StringVar(&levelPath, "level", "", "level definition file (json), overrides the config")
	flags.Int64Var(&seed, "seed", 0, "random seed, overrides the config (0 keeps it)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(bestCmd)
}
