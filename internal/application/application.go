package application

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const (
	// AppName is the application name used for identification
	AppName = "qslgen"

	// SettingsFileName is the fixed settings file name in the user's
	// home directory, shared with earlier releases of the generator
	SettingsFileName = ".qsl_generator_settings.json"
)

// Version is the build version, overridden at link time.
var Version = "dev"

var (
	once         sync.Once
	settingsPath string
	errPath      error
)

// GetSettingsPath returns the fixed settings file path.
// Linux/macOS: ~/.qsl_generator_settings.json
// Windows: C:\Users\{username}\.qsl_generator_settings.json
func GetSettingsPath() (string, error) {
	once.Do(lazyLoad)

	if errPath != nil {
		return "", errPath
	}

	return settingsPath, errPath
}

func lazyLoad() {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		errPath = fmt.Errorf("failed to get home directory: %w", err)
		return
	}

	settingsPath = filepath.Join(homeDir, SettingsFileName)
}
