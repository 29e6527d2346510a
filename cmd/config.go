package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sgl-umons/rabbit/config"
)

// NewCmdConfig creates the config command with subcommands.
func NewCmdConfig() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or manage configuration",
		Long: `Show or manage configuration.

When run without arguments, shows the current configuration.

Subcommands:
  init  Create a starter config file
  path  Show the config file location`,
		RunE: runConfigShow,
	}

	cmd.AddCommand(NewCmdConfigInit())
	cmd.AddCommand(NewCmdConfigPath())

	return cmd
}

// NewCmdConfigInit creates the config init subcommand.
func NewCmdConfigInit() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a starter config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit()
		},
	}
}

// NewCmdConfigPath creates the config path subcommand.
func NewCmdConfigPath() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show the config file location",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.ConfigPath()
			if path == "" {
				return fmt.Errorf("cannot determine config directory")
			}
			status := "missing"
			if _, err := os.Stat(path); err == nil {
				status = "exists"
			}
			fmt.Printf("%s (%s)\n", path, status)
			return nil
		},
	}
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}

func runConfigInit() error {
	path := config.ConfigPath()
	if path == "" {
		return fmt.Errorf("cannot determine config directory")
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	cfg := &config.Config{
		DefaultFormat: "csv",
	}
	if err := cfg.Save(); err != nil {
		return err
	}
	fmt.Printf("Created %s\n", path)
	return nil
}
