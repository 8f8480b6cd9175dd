package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port                  int
	RoundRobinTimeQuantum int
	LogLevel              string
	LogFormat             string
}

var (
	once    sync.Once
	config  *SchedulerConfig
	loadErr error
)

// GetSchedulerConfig loads the process-wide configuration on first use.
// Only the first path is read: later calls return the cached config and
// error whatever path they pass. Use LoadSchedulerConfig to read another file.
func GetSchedulerConfig(path string) (*SchedulerConfig, error) {
	once.Do(func() {
		config, loadErr = LoadSchedulerConfig(path)
	})
	return config, loadErr
}

// LoadSchedulerConfig reads path, or config.yaml from the working directory
// when path is empty. A missing config.yaml is not an error. Environment
// variables prefixed with CPUSCHED_ override file values.
func LoadSchedulerConfig(path string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetDefault("port", 9095)
	v.SetDefault("scheduler.round_robin.time_quantum", 4)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")

	v.SetEnvPrefix("cpusched")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &SchedulerConfig{
		Port:                  v.GetInt("port"),
		RoundRobinTimeQuantum: v.GetInt("scheduler.round_robin.time_quantum"),
		LogLevel:              v.GetString("log.level"),
		LogFormat:             v.GetString("log.format"),
	}
	if cfg.RoundRobinTimeQuantum < 1 {
		return nil, fmt.Errorf("scheduler.round_robin.time_quantum must be at least 1, got %d", cfg.RoundRobinTimeQuantum)
	}
	return cfg, nil
}
