// Config loading for the horasat CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/horasat/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyBackend    = "backend"
	cfgKeyDataDir    = "data_dir"
	cfgKeyCacheSize  = "cache_size"
	cfgKeyCacheTTL   = "cache_ttl_seconds"
	cfgKeyMaxResults = "max_results"

	defaultBackend = types.BackendSQLite
	defaultDataDir = ".horasat-db"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# Horasat CLI configuration

# Backend selection
backend: sqlite

# Data directory (optional; overridable by --data-dir flag)
# data_dir:

# Result cache: entry count and TTL in seconds (0 = no expiry)
# cache_size: 256
# cache_ttl_seconds: 0

# Maximum readings returned per extraction
# max_results: 50
`

// loadConfig reads config.yaml from the resolved config directory using
// Viper and folds in the command-line overrides. It creates the config
// directory and a default config.yaml on first run; a missing
// config.yaml is not an error.
func loadConfig() (types.Config, error) {
	configDir := resolveConfigDir()

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return types.Config{}, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return types.Config{}, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyBackend, defaultBackend)
	v.SetDefault(cfgKeyDataDir, defaultDataDir)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := types.Config{
		Backend:    v.GetString(cfgKeyBackend),
		DataDir:    v.GetString(cfgKeyDataDir),
		CacheSize:  v.GetInt(cfgKeyCacheSize),
		CacheTTL:   time.Duration(v.GetInt(cfgKeyCacheTTL)) * time.Second,
		MaxResults: v.GetInt(cfgKeyMaxResults),
	}
	if flags.dataDir != "" {
		cfg.DataDir = flags.dataDir
	}

	if err := cfg.Validate(); err != nil {
		return types.Config{}, err
	}
	return cfg.Normalize(), nil
}

// ensureDefaultConfigFile creates a default config.yaml if the file does
// not exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
