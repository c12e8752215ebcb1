package config

import (
	"os"
	"path/filepath"
)

const runtimeDirName = "sdb"

// GetRuntimePath resolves the directory holding the .env file. SDB_RUNTIME_PATH
// wins when absolute; a relative value is placed under the user config
// directory, which is also the default location.
func GetRuntimePath() string {
	path := os.Getenv("SDB_RUNTIME_PATH")
	if path == "" {
		path = runtimeDirName
	}
	if filepath.IsAbs(path) {
		return path
	}

	base, err := os.UserConfigDir()
	if err != nil {
		base, _ = os.UserHomeDir()
	}
	return filepath.Join(base, path)
}
