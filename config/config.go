/*
 * Authority
 *
 * Copyright 2021-2030 The NeoDB Authors.
 * Code is licensed under the GPLv3.
 *
 */

package config

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// LogConfig tuple.
type LogConfig struct {
	Level string `json:"level"`
}

// DefaultLogConfig returns the default log config.
func DefaultLogConfig() *LogConfig {
	return &LogConfig{
		Level: "INFO",
	}
}

// MonitorConfig tuple.
type MonitorConfig struct {
	MonitorAddress string `json:"monitor-address"`
}

// DefaultMonitorConfig returns the default monitor config.
func DefaultMonitorConfig() *MonitorConfig {
	return &MonitorConfig{
		MonitorAddress: ":13380",
	}
}

// AdminConfig tuple.
type AdminConfig struct {
	AdminAddress string `json:"admin-address"`
}

// DefaultAdminConfig returns the default admin config.
func DefaultAdminConfig() *AdminConfig {
	return &AdminConfig{
		AdminAddress: ":8080",
	}
}

// GrantConfig tuple, one database grant of a user.
type GrantConfig struct {
	Database   string   `json:"database"`
	Privileges []string `json:"privileges"`
}

// UserConfig tuple, one provisioned user.
// Password holds the stored cipher text as provisioned, it is compared by
// the front-end's validator and never interpreted here.
type UserConfig struct {
	User     string         `json:"user"`
	Host     string         `json:"host"`
	Password string         `json:"password"`
	Grants   []*GrantConfig `json:"grants"`
}

// Config tuple.
type Config struct {
	Log     *LogConfig     `json:"log"`
	Monitor *MonitorConfig `json:"monitor"`
	Admin   *AdminConfig   `json:"admin"`
	Users   []*UserConfig  `json:"users"`
}

// DefaultConfig returns the default config with no users provisioned.
func DefaultConfig() *Config {
	return &Config{
		Log:     DefaultLogConfig(),
		Monitor: DefaultMonitorConfig(),
		Admin:   DefaultAdminConfig(),
	}
}

// LoadConfig loads a config file from the path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	conf := DefaultConfig()
	if err := json.Unmarshal(data, conf); err != nil {
		return nil, errors.WithStack(err)
	}
	if conf.Log == nil {
		conf.Log = DefaultLogConfig()
	}
	if conf.Monitor == nil {
		conf.Monitor = DefaultMonitorConfig()
	}
	if conf.Admin == nil {
		conf.Admin = DefaultAdminConfig()
	}
	return conf, nil
}

// WriteConfig writes the config to the path.
func WriteConfig(path string, conf *Config) error {
	data, err := json.MarshalIndent(conf, "", "\t")
	if err != nil {
		return errors.WithStack(err)
	}
	return errors.WithStack(os.WriteFile(path, data, 0644))
}
