package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	catalogPath string
	logLevel    string
	logFile     string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "pageprice",
		Short:         "Interactive pageview pricing widget",
		Long:          "Pick a pageview tier with the slider and switch between monthly and yearly billing to see the price update.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWidget(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.catalogPath, "catalog", "c", "", "Tier catalog YAML file (defaults to the built-in catalog)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write JSON logs to this file")

	cmd.AddCommand(newQuoteCmd(flags))
	cmd.AddCommand(newTiersCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
