package config

import (
	"os"
	"strconv"
)

// IsDebug reports whether SDB_DEBUG holds a true value ("1", "true", ...).
func IsDebug() bool {
	on, err := strconv.ParseBool(os.Getenv("SDB_DEBUG"))
	return err == nil && on
}
