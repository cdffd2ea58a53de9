package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath     string
	contextRadius  int
	search         string
	category       string
	hideDuplicates bool
)

var rootCmd = &cobra.Command{
	Use:   "uelog [logfile]",
	Short: "A Terminal User Interface for reading Unreal Engine log files",
	Long: `Uelog is a TUI application for reading Unreal Engine log files.
It groups continuation lines under their header, classifies severity and
category, collapses duplicate blocks and provides interactive filtering,
search, multi-row selection and clipboard export.

Usage:
  uelog Saved/Logs/MyProject.log
  uelog --hide-duplicates --category LogCook cook.log`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config := &Config{
			ContextRadius:  contextRadius,
			Search:         search,
			Category:       category,
			HideDuplicates: hideDuplicates,
		}

		if configPath != "" {
			fc, err := LoadConfigFile(configPath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			config.applyFile(fc, cmd.Flags().Changed)
		}

		if len(args) > 0 {
			config.File = args[0]
		}

		app := NewApp(config)
		if err := app.Run(); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "Path to YAML config file")
	rootCmd.Flags().IntVarP(&contextRadius, "context-radius", "r", 5, "Raw lines shown on each side in the context inspector")
	rootCmd.Flags().StringVarP(&search, "search", "s", "", "Initial search text (case-insensitive substring)")
	rootCmd.Flags().StringVarP(&category, "category", "c", CategoryAll, "Initial category filter")
	rootCmd.Flags().BoolVarP(&hideDuplicates, "hide-duplicates", "d", false, "Start with duplicate blocks collapsed")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
