package app

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/coursematch/coursematch-backend/internal/logger"
	"github.com/coursematch/coursematch-backend/internal/utils"
)

type Config struct {
	Port        string `yaml:"port"`
	Environment string `yaml:"environment"`
	SeedDir     string `yaml:"seed_dir"`
}

// LoadConfig reads env vars first; a YAML file named by CONFIG_FILE, when
// present, overrides them. Defaults cover local development.
func LoadConfig(log *logger.Logger) (Config, error) {
	cfg := Config{
		Port:        utils.GetEnv("PORT", "8080", log),
		Environment: utils.GetEnv("ENVIRONMENT", "development", log),
		SeedDir:     utils.GetEnv("SEED_DIR", "", log),
	}

	path := strings.TrimSpace(os.Getenv("CONFIG_FILE"))
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config file %s: %w", path, err)
	}
	var fileCfg Config
	if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
		return cfg, fmt.Errorf("parse config file %s: %w", path, err)
	}
	if fileCfg.Port != "" {
		cfg.Port = fileCfg.Port
	}
	if fileCfg.Environment != "" {
		cfg.Environment = fileCfg.Environment
	}
	if fileCfg.SeedDir != "" {
		cfg.SeedDir = fileCfg.SeedDir
	}
	log.Info("Config loaded", "config_file", path)
	return cfg, nil
}
