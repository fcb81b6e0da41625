package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Reporting is the optional YAML config for the reporting CLI.
type Reporting struct {
	DataDir   string `mapstructure:"data_dir"`
	ExportDir string `mapstructure:"export_dir"`
}

func LoadReporting(path string) (*Reporting, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Reporting
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse reporting config: %w", err)
	}
	return &cfg, nil
}
