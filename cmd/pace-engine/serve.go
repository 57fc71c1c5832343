// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pace-engine/internal/webui"
	"github.com/pdiddy/pace-engine/pkg/types"
)

const (
	defaultAddr            = ":8080"
	defaultReadTimeout     = 10 * time.Second
	defaultWriteTimeout    = 10 * time.Second
	defaultShutdownTimeout = 30 * time.Second
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the prediction web form",
	Long: `Serve runs an HTTP server with a minimal prediction form at / and a
JSON API at /api/predict. Settings come from flags, the config file, or
PACE_ENGINE_* environment variables; flags win.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default :8080)")
	serveCmd.Flags().String("log-level", "", "log level: TRACE, DEBUG, INFO, WARN, ERROR (default INFO)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	viper.SetDefault("server.addr", defaultAddr)
	viper.SetDefault("server.read_timeout", defaultReadTimeout)
	viper.SetDefault("server.write_timeout", defaultWriteTimeout)
	viper.SetDefault("server.shutdown_timeout", defaultShutdownTimeout)
	viper.SetDefault("server.log_level", "INFO")

	cfg := types.ServerConfig{
		Addr:            viper.GetString("server.addr"),
		ReadTimeout:     viper.GetDuration("server.read_timeout"),
		WriteTimeout:    viper.GetDuration("server.write_timeout"),
		ShutdownTimeout: viper.GetDuration("server.shutdown_timeout"),
		LogLevel:        viper.GetString("server.log_level"),
	}

	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Addr = addr
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.LogLevel = level
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "pace-engine",
		Level: hclog.LevelFromString(cfg.LogLevel),
	})

	return webui.Serve(logger, cfg)
}
