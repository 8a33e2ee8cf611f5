package update

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type RuntimeConfig struct {
	DesktopNotifications bool
	WorkIntervalMinutes  int
	PostponeMinutes      int
	HistoryCap           int
	EngineBuffer         int
	DataPath             string
	CatalogPath          string
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		DesktopNotifications: false,
		WorkIntervalMinutes:  60,
		PostponeMinutes:      5,
		HistoryCap:           200,
		EngineBuffer:         64,
	}
}

// fileConfig mirrors RuntimeConfig for the optional YAML config file.
// Pointer fields distinguish "absent" from zero values.
type fileConfig struct {
	DesktopNotifications *bool   `yaml:"desktopNotifications"`
	WorkIntervalMinutes  *int    `yaml:"workIntervalMinutes"`
	PostponeMinutes      *int    `yaml:"postponeMinutes"`
	HistoryCap           *int    `yaml:"historyCap"`
	EngineBuffer         *int    `yaml:"engineBuffer"`
	DataPath             *string `yaml:"dataPath"`
	CatalogPath          *string `yaml:"catalogPath"`
}

// LoadRuntimeConfigFile overlays settings from a YAML file onto base. A
// missing file leaves base untouched.
func LoadRuntimeConfigFile(path string, base RuntimeConfig) (RuntimeConfig, error) {
	cfg := base
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if fc.DesktopNotifications != nil {
		cfg.DesktopNotifications = *fc.DesktopNotifications
	}
	if fc.WorkIntervalMinutes != nil && *fc.WorkIntervalMinutes > 0 {
		cfg.WorkIntervalMinutes = *fc.WorkIntervalMinutes
	}
	if fc.PostponeMinutes != nil && *fc.PostponeMinutes > 0 {
		cfg.PostponeMinutes = *fc.PostponeMinutes
	}
	if fc.HistoryCap != nil && *fc.HistoryCap > 0 {
		cfg.HistoryCap = *fc.HistoryCap
	}
	if fc.EngineBuffer != nil && *fc.EngineBuffer > 0 {
		cfg.EngineBuffer = *fc.EngineBuffer
	}
	if fc.DataPath != nil {
		cfg.DataPath = strings.TrimSpace(*fc.DataPath)
	}
	if fc.CatalogPath != nil {
		cfg.CatalogPath = strings.TrimSpace(*fc.CatalogPath)
	}
	return cfg, nil
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvBool("BREAKD_DESKTOP_NOTIFICATIONS"); ok {
		cfg.DesktopNotifications = v
	}
	if v, ok := getEnvInt("BREAKD_WORK_INTERVAL_MINUTES"); ok && v > 0 {
		cfg.WorkIntervalMinutes = v
	}
	if v, ok := getEnvInt("BREAKD_POSTPONE_MINUTES"); ok && v > 0 {
		cfg.PostponeMinutes = v
	}
	if v, ok := getEnvInt("BREAKD_HISTORY_CAP"); ok && v > 0 {
		cfg.HistoryCap = v
	}
	if v, ok := getEnvInt("BREAKD_ENGINE_BUFFER"); ok && v > 0 {
		cfg.EngineBuffer = v
	}
	if v := strings.TrimSpace(os.Getenv("BREAKD_DATA_PATH")); v != "" {
		cfg.DataPath = v
	}
	if v := strings.TrimSpace(os.Getenv("BREAKD_CATALOG_PATH")); v != "" {
		cfg.CatalogPath = v
	}
	return cfg
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
