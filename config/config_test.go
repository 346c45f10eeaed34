/*
 * Authority
 *
 * Copyright 2021-2030 The NeoDB Authors.
 * Code is licensed under the GPLv3.
 *
 */

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "authority_config_")
	assert.Nil(t, err)
	defer os.RemoveAll(tmpDir)
	path := filepath.Join(tmpDir, "authority.json")

	conf := &Config{
		Log: &LogConfig{
			Level: "ERROR",
		},
		Users: []*UserConfig{
			{
				User:     "alice",
				Host:     "%",
				Password: "cipher1",
				Grants: []*GrantConfig{
					{
						Database:   "sales",
						Privileges: []string{"SELECT", "INSERT"},
					},
				},
			},
		},
	}
	err = WriteConfig(path, conf)
	assert.Nil(t, err)

	got, err := LoadConfig(path)
	assert.Nil(t, err)
	assert.Equal(t, "ERROR", got.Log.Level)
	assert.Equal(t, DefaultMonitorConfig(), got.Monitor)
	assert.Equal(t, DefaultAdminConfig(), got.Admin)
	assert.Equal(t, 1, len(got.Users))
	assert.Equal(t, "alice", got.Users[0].User)
	assert.Equal(t, []string{"SELECT", "INSERT"}, got.Users[0].Grants[0].Privileges)
}

func TestLoadConfigError(t *testing.T) {
	_, err := LoadConfig("/u10000/xx.json")
	assert.NotNil(t, err)

	tmpDir, err := os.MkdirTemp("", "authority_config_")
	assert.Nil(t, err)
	defer os.RemoveAll(tmpDir)
	path := filepath.Join(tmpDir, "bad.json")
	err = os.WriteFile(path, []byte("{x"), 0644)
	assert.Nil(t, err)
	_, err = LoadConfig(path)
	assert.NotNil(t, err)
}

func TestDefaultConfig(t *testing.T) {
	conf := DefaultConfig()
	assert.Equal(t, "INFO", conf.Log.Level)
	assert.Equal(t, ":13380", conf.Monitor.MonitorAddress)
	assert.Equal(t, ":8080", conf.Admin.AdminAddress)
	assert.Equal(t, 0, len(conf.Users))
}
