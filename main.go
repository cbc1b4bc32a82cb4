package main

import (
	"fmt"
	"os"

	"github.com/reusedev/pattern-hub/config"
	"github.com/reusedev/pattern-hub/internal/examples"
	"github.com/reusedev/pattern-hub/internal/modules/logs"
	"github.com/reusedev/pattern-hub/internal/service/http"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string
	root := &cobra.Command{
		Use:           "pattern-hub <pattern> <kind>",
		Short:         "Run a design pattern example, e.g. pattern-hub observer conceptual",
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.Init(configPath)
			logs.InitLogger(config.GConfig.Log)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return examples.ErrMissingArguments
			}
			env := &examples.Env{Out: cmd.OutOrStdout(), Config: config.GConfig}
			return examples.Run(cmd.Context(), args[0], args[1], env)
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "config.yml", "config file path")

	list := &cobra.Command{
		Use:   "list",
		Short: "List the available examples",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, k := range examples.List() {
				fmt.Fprintln(cmd.OutOrStdout(), k)
			}
		},
	}

	var httpPort string
	serve := &cobra.Command{
		Use:   "serve",
		Short: "Serve the examples and a shared subject over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			port := httpPort
			if port == "" {
				port = config.GConfig.HTTPPort
			}
			logs.Logger.Info().Str("port", port).Msg("listening")
			return http.Serve(port, config.GConfig)
		},
	}
	serve.Flags().StringVar(&httpPort, "http-port", "", "listen http port (defaults to http_port in the config)")

	root.AddCommand(list, serve)
	return root
}
