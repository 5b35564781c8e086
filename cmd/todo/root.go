package main

import (
	"github.com/spf13/cobra"
)

// Persistent flags shared by every subcommand
var (
	dirFlag     string
	configFlag  string
	verboseFlag bool
)

var rootCmd = &cobra.Command{
	Use:           "todo",
	Short:         "A simple command line todo app",
	Long:          `Track personal tasks: add them, mark them done and list what is pending or completed.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dirFlag, "dir", "", "Storage directory (overrides the config file)")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Config file (default $HOME/.config/todo/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Log storage activity to stderr")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(configCmd)
}
