// Package constants defines shared constants and environment settings used
// throughout curtain.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variables read by curtain.
const (
	EnvironmentEnvVar  = "ENVIRONMENT"       // Set to DEV for windowed development mode
	WindowWidthEnvVar  = "WINDOW_WIDTH"      // Window width in development mode
	WindowHeightEnvVar = "WINDOW_HEIGHT"     // Window height in development mode
	LogLevelEnvVar     = "CURTAIN_LOG_LEVEL" // debug, info, warn or error
	ConfigPathEnvVar   = "CURTAIN_CONFIG"    // Config file used when --config is not given
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// Default window and timing values.
const (
	DefaultWindowWidth  int32 = 1024
	DefaultWindowHeight int32 = 768

	FrameInterval = 16 * time.Millisecond // ~60fps pacing when VSync is unavailable
)
