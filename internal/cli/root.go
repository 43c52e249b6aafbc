package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile  string
	advanced bool

	// Version info (set from main)
	Version = "1.0.0"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "resmon",
	Short: "Live terminal resource monitor",
	Long: `Resmon renders live-updating bar graphs of CPU and memory
utilization in the terminal. Basic mode shows aggregate CPU and RAM;
advanced mode adds one graph per CPU core.

Press Ctrl+C, Esc or q to quit.`,
	RunE: runMonitor,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVarP(&advanced, "advanced", "a", false, "show usage of each CPU core individually")
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
}

// SetVersion sets the version for the CLI
func SetVersion(v string) {
	Version = v
	rootCmd.Version = v
}
