package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Print the snake configuration that "snake play" would use, after the
config search order and the --difficulty preset have been applied.

Config search order:
  1. --config <path>
  2. ~/.snake/configs/snake.yaml
  3. ./configs/snake.yaml
  4. Built-in defaults

Examples:
  snake config
  snake config --difficulty hard
  snake config --defaults > ~/.snake/configs/snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default config file")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagDefaults {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := loadGameConfig()
	if err != nil {
		fatalf("%v", err)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fatalf("encoding config: %v", err)
	}
	os.Stdout.Write(data)
}
