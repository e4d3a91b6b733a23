package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var queryTypesFile string

	root := &cobra.Command{
		Use:   "queryform",
		Short: "Contact form validation service",
		Long: `queryform serves a contact form and validates submissions.

Configuration is read from the environment and an optional .env file:
  APP_ENV, APP_NAME, LOG_LEVEL, QUERY_TYPES_FILE, CORS_ALLOWED_ORIGINS,
  SENTRY_DSN, HTTP_ADDR and the HTTP_*_TIMEOUT variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&queryTypesFile, "query-types", "", "YAML file with query type options (overrides QUERY_TYPES_FILE)")

	load := func() (appConfig, error) {
		cfg, err := loadConfig()
		if err != nil {
			return cfg, err
		}
		if queryTypesFile != "" {
			cfg.QueryTypesFile = queryTypesFile
		}
		return cfg, nil
	}

	root.AddCommand(
		newServeCmd(load),
		newValidateCmd(load),
		newOptionsCmd(load),
	)
	return root
}
