package config

import (
	"os"
	"strconv"
	"strings"
)

// New snapshots the process environment as a map. Callers read settings
// through GetString/GetInt with defaults, so a missing variable never panics.
func New() map[string]string {
	environ := os.Environ()
	envAsMap := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		key, value, _ := strings.Cut(entry, "=")
		envAsMap[key] = value
	}
	return envAsMap
}

func GetString(config map[string]string, key string, defaultValue string) string {
	if val, ok := config[key]; ok {
		return val
	}
	return defaultValue
}

func GetInt(config map[string]string, key string, defaultValue int) int {
	s, ok := config[key]
	if !ok {
		return defaultValue
	}

	asInt, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}

	return asInt
}
