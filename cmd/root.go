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

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pbs-auth/pbsauth/auth"
	"github.com/pbs-auth/pbsauth/auth/log"
	"github.com/pbs-auth/pbsauth/auth/schema"
	"github.com/pbs-auth/pbsauth/core"
	"github.com/pbs-auth/pbsauth/json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var stdOutWriter io.Writer = os.Stdout
var stdInReader io.Reader = os.Stdin

const stdinSource = "-"

// serializable is implemented by all parsed records.
type serializable interface {
	ToMapping() map[string]interface{}
}

func createRootCommand(config *core.CLIConfig) *cobra.Command {
	command := &cobra.Command{
		Use:          "pbsauth",
		Short:        "Validates and normalizes PBS authentication responses.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return config.Load(cmd.Flags())
		},
		Run: func(cmd *cobra.Command, args []string) {
			cmd.HelpFunc()(cmd, args)
		},
	}
	command.PersistentFlags().AddFlagSet(core.FlagSet())
	return command
}

func createValidateCommand(config *core.CLIConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Validates a record, read from the given file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := sourceOf(args)
			if _, err := readRecord(config, source); err != nil {
				return err
			}
			cmd.Println("valid")
			return nil
		},
	}
}

func createNormalizeCommand(config *core.CLIConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize [file]",
		Short: "Parses a record, read from the given file or stdin, and prints its canonical form",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mapping, err := readRecord(config, sourceOf(args))
			if err != nil {
				return err
			}
			var output []byte
			switch config.Format {
			case "yaml":
				output, err = yaml.Marshal(mapping)
			default:
				output, err = json.MarshalIndent(mapping, "", "  ")
				output = append(output, '\n')
			}
			if err != nil {
				return err
			}
			cmd.Print(string(output))
			return nil
		},
	}
}

func createSchemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Prints the JSON schema of auth documents",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Print(string(schema.Document()))
		},
	}
}

func createPrintConfigCommand(config *core.CLIConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Prints the current config",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println("Current config")
			cmd.Println(config.PrintConfig())
		},
	}
}

func createVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Prints the version of this build",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Print(core.BuildInfo())
		},
	}
}

// CreateCommand creates the command with all subcommands.
func CreateCommand() *cobra.Command {
	config := core.NewCLIConfig()
	command := createRootCommand(config)
	command.SetOut(stdOutWriter)
	command.SetIn(stdInReader)
	command.AddCommand(createValidateCommand(config))
	command.AddCommand(createNormalizeCommand(config))
	command.AddCommand(createSchemaCommand())
	command.AddCommand(createPrintConfigCommand(config))
	command.AddCommand(createVersionCommand())
	return command
}

// Execute executes the root command.
func Execute(ctx context.Context) error {
	return CreateCommand().ExecuteContext(ctx)
}

func sourceOf(args []string) string {
	if len(args) == 0 {
		return stdinSource
	}
	return args[0]
}

func read(source string) ([]byte, error) {
	if source == stdinSource {
		return io.ReadAll(stdInReader)
	}
	return os.ReadFile(source)
}

// readRecord reads and parses the record at source, returning its canonical mapping.
// Rejected records are logged.
func readRecord(config *core.CLIConfig, source string) (map[string]interface{}, error) {
	data, err := read(source)
	if err != nil {
		return nil, fmt.Errorf("unable to read input: %w", err)
	}
	mapping, err := parse(config, data)
	if err != nil {
		logger := log.Logger().
			WithError(err).
			WithField(core.LogFieldRecordType, config.Type).
			WithField(core.LogFieldSource, source)
		var fieldError *auth.FieldError
		if errors.As(err, &fieldError) {
			logger = logger.WithField(core.LogFieldField, fieldError.FieldName())
		}
		logger.Warn("Record rejected")
		return nil, err
	}
	return mapping, nil
}

func parse(config *core.CLIConfig, data []byte) (map[string]interface{}, error) {
	text := string(data)
	switch config.Type {
	case "owner":
		return mappingOf(auth.ParseOwnerFromText(text))
	case "token":
		return mappingOf(auth.ParseTokenFromText(text))
	case "vppa":
		return mappingOf(auth.ParseVPPAFromText(text))
	default:
		if config.Strict {
			if err := schema.Validate(data); err != nil {
				return nil, err
			}
		}
		return mappingOf(auth.ParseAuthResultFromText(text))
	}
}

func mappingOf[T serializable](result core.Result[T]) (map[string]interface{}, error) {
	value, err := result.Unwrap()
	if err != nil {
		return nil, err
	}
	return value.ToMapping(), nil
}
