// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pace-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the pace-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "pace-engine",
	Short: "Estimate 5K race times from VO2 max",
	Long: `pace-engine estimates a runner's 5K race time from their VO2 max,
gender, and age. The model applies a gender multiplier and an age-decline
factor to VO2 max, then extrapolates from a reference effort.

Use predict for one-shot or batch estimates, or serve to run the web form.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pace-engine.yaml or ~/.config/pace-engine/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pace-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pace-engine"))
		}
	}

	viper.SetEnvPrefix("PACE_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
