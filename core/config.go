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
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

const defaultConfigFile = "pbsauth.yaml"
const configFileFlag = "configfile"

const defaultPrefix = "PBSAUTH_"
const defaultDelimiter = "."

// RecordTypes lists the record types the CLI can parse.
var RecordTypes = []string{"auth", "owner", "token", "vppa"}

// OutputFormats lists the formats normalized records can be written in.
var OutputFormats = []string{"json", "yaml"}

// CLIConfig holds the settings of the pbsauth command.
type CLIConfig struct {
	ConfigFile   string `koanf:"configfile"`
	Verbosity    string `koanf:"verbosity"`
	LoggerFormat string `koanf:"loggerformat"`
	// Type is the record type input documents are parsed as.
	Type string `koanf:"type"`
	// Format is the output format of normalized records.
	Format string `koanf:"format"`
	// Strict enables JSON schema validation of auth documents before they're parsed.
	Strict    bool `koanf:"strict"`
	configMap *koanf.Koanf
}

// NewCLIConfig creates an initialized empty CLI config
func NewCLIConfig() *CLIConfig {
	return &CLIConfig{
		configMap: koanf.New(defaultDelimiter),
	}
}

// FlagSet returns the flags of the CLI config
func FlagSet() *pflag.FlagSet {
	flagSet := pflag.NewFlagSet("pbsauth", pflag.ContinueOnError)
	flagSet.String(configFileFlag, defaultConfigFile, "PBS auth config file")
	flagSet.String("verbosity", "info", "Log level (trace, debug, info, warn, error)")
	flagSet.String("loggerformat", "text", "Log format (text, json)")
	flagSet.String("type", "auth", fmt.Sprintf("Record type of the input (options are %s)", strings.Join(RecordTypes, ", ")))
	flagSet.String("format", "json", fmt.Sprintf("Output format of normalized records (options are %s)", strings.Join(OutputFormats, ", ")))
	flagSet.Bool("strict", false, "When set, auth documents are validated against the JSON schema before they're parsed.")
	return flagSet
}

// Load loads the CLI config, following the load order of flag defaults, config file, env vars and then commandline params.
// It configures logging according to the loaded config.
func (c *CLIConfig) Load(flags *pflag.FlagSet) error {
	if err := c.loadConfigMap(flags); err != nil {
		return err
	}
	if err := loadConfigIntoStruct(c, c.configMap); err != nil {
		return err
	}
	if !slices.Contains(RecordTypes, c.Type) {
		return fmt.Errorf("invalid record type: '%s'", c.Type)
	}
	if !slices.Contains(OutputFormats, c.Format) {
		return fmt.Errorf("invalid output format: '%s'", c.Format)
	}

	lvl, err := logrus.ParseLevel(c.Verbosity)
	if err != nil {
		return err
	}
	logrus.SetLevel(lvl)

	switch c.LoggerFormat {
	case "text":
		logrus.SetFormatter(&logrus.TextFormatter{})
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("invalid formatter: '%s'", c.LoggerFormat)
	}
	return nil
}

// PrintConfig return the current config in string form
func (c *CLIConfig) PrintConfig() string {
	return c.configMap.Sprint()
}

func (c *CLIConfig) loadConfigMap(flags *pflag.FlagSet) error {
	if err := loadDefaultsFromFlagset(c.configMap, flags); err != nil {
		return err
	}

	if err := loadFromFile(c.configMap, resolveConfigFilePath(flags)); err != nil {
		return err
	}

	if err := loadFromEnv(c.configMap); err != nil {
		return err
	}

	return loadFromFlagSet(c.configMap, flags)
}

func loadConfigIntoStruct(target interface{}, configMap *koanf.Koanf) error {
	return configMap.UnmarshalWithConf("", target, koanf.UnmarshalConf{
		FlatPaths: false,
	})
}

func loadFromFile(configMap *koanf.Koanf, filepath string) error {
	if filepath == "" {
		return nil
	}
	// a missing config file is fine, all settings have defaults
	if err := configMap.Load(file.Provider(filepath), yaml.Parser()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("unable to load config file '%s': %w", filepath, err)
	}
	return nil
}

func loadFromEnv(configMap *koanf.Koanf) error {
	e := env.ProviderWithValue(defaultPrefix, defaultDelimiter, func(rawKey string, rawValue string) (string, interface{}) {
		return envKey(rawKey), rawValue
	})
	// errors can't occur for this provider
	return configMap.Load(e, nil)
}

func loadDefaultsFromFlagset(configMap *koanf.Koanf, flags *pflag.FlagSet) error {
	return configMap.Load(posflag.Provider(flags, defaultDelimiter, configMap), nil)
}

func loadFromFlagSet(configMap *koanf.Koanf, flags *pflag.FlagSet) error {
	return configMap.Load(posflag.Provider(flags, defaultDelimiter, configMap), nil)
}

func envKey(rawKey string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(rawKey, defaultPrefix)), "_", defaultDelimiter)
}

// resolveConfigFilePath resolves the path of the config file using the following sources:
// 1. commandline params (using the given flags)
// 2. environment vars,
// 3. default location.
func resolveConfigFilePath(flags *pflag.FlagSet) string {
	k := koanf.New(defaultDelimiter)
	// can't return error
	_ = k.Load(env.Provider(defaultPrefix, defaultDelimiter, envKey), nil)
	// load cmd flags, without a parser, no error can be returned
	_ = k.Load(posflag.Provider(flags, defaultDelimiter, k), nil)
	return k.String(configFileFlag)
}
