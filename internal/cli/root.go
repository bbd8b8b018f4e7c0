package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"employeeform/internal/platform/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "employeeform",
	Short: "Employee entry form with a live records table",
	Long: `employeeform collects employee details through a validated form and
keeps the submitted records in an editable table.

Run "employeeform serve" for the web form or "employeeform form" for the
terminal form.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. It is called by main.main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.ConfigFileFromEnv(), "path to a config file (default: ./config.yaml or ./configs/config.yaml)")
}
