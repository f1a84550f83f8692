package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rebatedor/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Loads the configuration the same way 'play' does (embedded defaults,
then the first YAML file found, then REBATEDOR_* environment overrides)
and prints the result as YAML. Useful as a starting point for a custom file.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runConfig(cmd *cobra.Command, args []string) error {
	preset, err := config.LookupDifficultyPreset(flagDifficulty)
	if err != nil {
		return err
	}
	cfg, err := config.LoadRebatedor(flagConfig)
	if err != nil {
		return err
	}
	config.ApplyRebatedorPreset(&cfg, preset)

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	if err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
