package main

import (
	"os"

	"github.com/spf13/cobra"

	"episodes/internal/config"
	"episodes/internal/utils"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:          "episodes",
	Short:        "Episode browser backed by a Mux credential relay",
	Long:         "Serve the episode page and the Mux relay, or inspect episodes and assets from a terminal",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yml", "Path to configuration file")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
}

func loadConfig() (*config.Config, *utils.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	return cfg, utils.NewLogger(cfg.App.Debug, cfg.App.LogJSON, os.Stdout), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
