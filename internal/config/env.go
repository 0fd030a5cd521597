package config

import (
	"os"
	"strconv"
)

// FromEnv overlays environment variables onto a loaded config.
func FromEnv(cfg *Config) {
	if addr := os.Getenv("COOKBOOK_ADDR"); addr != "" {
		cfg.Server.Addr = addr
	}
	if val := os.Getenv("COOKBOOK_LOG_JSON"); val != "" {
		cfg.Log.JSON = val == "1" || val == "true"
	}
	if val := getEnvInt("COOKBOOK_MAX_DEPTH"); val > 0 {
		cfg.Resolver.MaxDepth = val
	}
}

func getEnvInt(key string) int {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	num, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return num
}
