package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hepmatch/config"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage hepmatch configuration",
	}

	var initPath string
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a sample configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.CreateSample(initPath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample configuration to %s\n", initPath)

			return nil
		},
	}
	initCmd.Flags().StringVar(&initPath, "path", "hepmatch.toml", "Destination path")

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Load and validate the configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := ctx.ensureConfig(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Configuration valid")

			return nil
		},
	}

	configCmd.AddCommand(initCmd, validateCmd)

	return configCmd
}
