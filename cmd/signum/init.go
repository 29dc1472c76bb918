package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/c360studio/signum/config"
)

func initCmd() *cobra.Command {
	var (
		user  bool
		force bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Long: `Write a default signum.yaml into the current directory, or the user
configuration file with --user.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.ErrOrStderr(), "", "")

			if user {
				loader := config.NewLoader(logger)
				if !force {
					// Leaves an existing file untouched.
					path, err := loader.EnsureUserConfig()
					if err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), path)
					return nil
				}

				path := loader.UserConfigPath()
				if path == "" {
					return fmt.Errorf("cannot determine the user config path")
				}
				if err := config.DefaultConfig().SaveToFile(path); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			}

			path := config.ProjectConfigFile
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.DefaultConfig().SaveToFile(path); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&user, "user", false, "Write the user configuration file instead")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}
