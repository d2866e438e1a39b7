package configs

import (
	"flag"
	"os"

	"github.com/pulsekit/pulsed/internal/infrastructure/env"
)

// DetermineConfigPath resolves an optional config file: the --config flag
// wins, then PULSED_CONFIG, then a handful of conventional locations. An
// empty return value means env-only operation.
func DetermineConfigPath() string {
	var configPath string

	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.Parse()

	if configPath == "" {
		configPath = env.GetString("PULSED_CONFIG", "")
	}

	if configPath == "" {
		candidates := []string{
			"./config.yaml",
			"./config.yml",
			"/etc/pulsed/config.yaml",
			"/app/config.yaml", // common in Docker
		}

		for _, p := range candidates {
			if _, err := os.Stat(p); err == nil {
				configPath = p
				break
			}
		}
	}

	return configPath
}
