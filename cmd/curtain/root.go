package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/curtain/pkg/curtain"
	"github.com/BrandonKowalski/curtain/pkg/curtain/config"
	"github.com/BrandonKowalski/curtain/pkg/curtain/constants"
	"github.com/BrandonKowalski/curtain/pkg/curtain/transition"
)

var rootCmd = &cobra.Command{
	Use:   "curtain",
	Short: "Curtain plays full-screen overlays on route changes",
	Long: `Curtain covers the screen with an animated overlay whenever the active route
changes, then reveals the new page as the overlay animates away.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		file, err := loadConfig()
		if err != nil {
			return err
		}

		level := logLevel
		if level == "" {
			level = file.LogLevel
		}
		curtain.Init(curtain.Options{
			LogPath:  logPath,
			LogLevel: level,
			Debug:    debug,
		})
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		curtain.Close()
	},
}

var (
	configPath string
	logLevel   string
	logPath    string
	debug      bool
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (.toml, .yaml or .yml); defaults to $"+constants.ConfigPathEnvVar)
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&logPath, "log-file", "", "Also write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Log curtain internals at debug level")
}

// resolveConfigPath returns the --config flag, falling back to the
// environment. Empty means no config file.
func resolveConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return os.Getenv(constants.ConfigPathEnvVar)
}

// loadConfig reads the config file if one is set. Without one every
// setting takes its default.
func loadConfig() (*config.File, error) {
	path := resolveConfigPath()
	if path == "" {
		return &config.File{}, nil
	}
	return config.Load(path)
}

// composePanels returns the panel set cfg produces for a change from /a
// to /b.
func composePanels(cfg transition.Config) []transition.Panel {
	engine := transition.NewEngine(cfg, transition.WithLogger(curtain.GetLogger()))
	engine.Render("/a", nil)
	return engine.Render("/b", nil).Panels
}
