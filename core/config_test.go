/*
 * Copyright (C) 2026 Nuts community
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 *
 */

package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLIConfig_Load(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)
	defer logrus.SetFormatter(&logrus.TextFormatter{})

	t.Run("defaults", func(t *testing.T) {
		wd, err := os.Getwd()
		require.NoError(t, err)
		require.NoError(t, os.Chdir(t.TempDir()))
		t.Cleanup(func() { _ = os.Chdir(wd) })
		config := NewCLIConfig()

		require.NoError(t, config.Load(FlagSet()))

		assert.Equal(t, "pbsauth.yaml", config.ConfigFile)
		assert.Equal(t, "info", config.Verbosity)
		assert.Equal(t, "text", config.LoggerFormat)
		assert.Equal(t, "auth", config.Type)
		assert.Equal(t, "json", config.Format)
		assert.False(t, config.Strict)
	})
	t.Run("config file, env and flags", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, writeFile(configFile, "type: owner\nformat: yaml\nverbosity: debug\n"))
		t.Setenv("PBSAUTH_FORMAT", "json")
		t.Setenv("PBSAUTH_STRICT", "true")
		flags := FlagSet()
		require.NoError(t, flags.Parse([]string{"--configfile", configFile, "--verbosity", "warn"}))
		config := NewCLIConfig()

		require.NoError(t, config.Load(flags))

		assert.Equal(t, "owner", config.Type)
		assert.Equal(t, "json", config.Format)
		assert.Equal(t, "warn", config.Verbosity)
		assert.True(t, config.Strict)
		assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())
	})
	t.Run("config file written from struct", func(t *testing.T) {
		configMap := koanf.New(defaultDelimiter)
		require.NoError(t, configMap.Load(structs.Provider(CLIConfig{
			Verbosity:    "debug",
			LoggerFormat: "json",
			Type:         "vppa",
			Format:       "yaml",
			Strict:       true,
		}, "koanf"), nil))
		data, err := configMap.Marshal(yaml.Parser())
		require.NoError(t, err)
		configFile := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, writeFile(configFile, string(data)))
		flags := FlagSet()
		require.NoError(t, flags.Parse([]string{"--configfile", configFile}))
		config := NewCLIConfig()

		require.NoError(t, config.Load(flags))

		assert.Equal(t, "vppa", config.Type)
		assert.Equal(t, "yaml", config.Format)
		assert.True(t, config.Strict)
		assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
	})
	t.Run("config file from env", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, writeFile(configFile, "type: token\n"))
		t.Setenv("PBSAUTH_CONFIGFILE", configFile)
		config := NewCLIConfig()

		require.NoError(t, config.Load(FlagSet()))

		assert.Equal(t, "token", config.Type)
	})
	t.Run("json logger format", func(t *testing.T) {
		flags := FlagSet()
		require.NoError(t, flags.Parse([]string{"--configfile", "", "--loggerformat", "json"}))

		require.NoError(t, NewCLIConfig().Load(flags))

		assert.IsType(t, &logrus.JSONFormatter{}, logrus.StandardLogger().Formatter)
	})
	t.Run("error - invalid config file", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, writeFile(configFile, "type: [owner"))
		flags := FlagSet()
		require.NoError(t, flags.Parse([]string{"--configfile", configFile}))

		err := NewCLIConfig().Load(flags)

		assert.ErrorContains(t, err, "unable to load config file")
	})
	t.Run("error - invalid record type", func(t *testing.T) {
		flags := FlagSet()
		require.NoError(t, flags.Parse([]string{"--configfile", "", "--type", "session"}))

		err := NewCLIConfig().Load(flags)

		assert.EqualError(t, err, "invalid record type: 'session'")
	})
	t.Run("error - invalid output format", func(t *testing.T) {
		flags := FlagSet()
		require.NoError(t, flags.Parse([]string{"--configfile", "", "--format", "xml"}))

		err := NewCLIConfig().Load(flags)

		assert.EqualError(t, err, "invalid output format: 'xml'")
	})
	t.Run("error - invalid logger format", func(t *testing.T) {
		flags := FlagSet()
		require.NoError(t, flags.Parse([]string{"--configfile", "", "--loggerformat", "xml"}))

		err := NewCLIConfig().Load(flags)

		assert.EqualError(t, err, "invalid formatter: 'xml'")
	})
	t.Run("error - invalid verbosity", func(t *testing.T) {
		flags := FlagSet()
		require.NoError(t, flags.Parse([]string{"--configfile", "", "--verbosity", "loud"}))

		err := NewCLIConfig().Load(flags)

		assert.Error(t, err)
	})
}

func TestCLIConfig_PrintConfig(t *testing.T) {
	flags := FlagSet()
	require.NoError(t, flags.Parse([]string{"--configfile", "", "--type", "vppa"}))
	config := NewCLIConfig()
	require.NoError(t, config.Load(flags))

	actual := config.PrintConfig()

	assert.Contains(t, actual, "type -> vppa")
	assert.Contains(t, actual, "strict -> false")
}

func writeFile(name string, contents string) error {
	return os.WriteFile(name, []byte(contents), 0600)
}
