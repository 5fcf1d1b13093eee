package main

import (
	"log"

	"github.com/Manzo48/profileMockAPI/internal/app"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var opts app.Options

func setupConfig(cmd *cobra.Command, args []string) error {
	opts.Port = viper.GetInt("port")
	opts.ConfigFilePath = viper.GetString("config-path")
	return nil
}

func setupFlags(cmd *cobra.Command) error {
	cmd.Flags().Int("port", 0, "listen port (overrides the config file)")
	cmd.Flags().String("config-path", "./config.yaml", "path to configuration file")
	return viper.BindPFlags(cmd.Flags())
}

func run(cmd *cobra.Command, args []string) error {
	return app.Run(opts)
}

func main() {
	cmd := &cobra.Command{
		Use:     "mockapi",
		Short:   "mock profile-enrichment API for local development",
		RunE:    run,
		PreRunE: setupConfig,
	}
	if err := setupFlags(cmd); err != nil {
		log.Fatal(err)
	}
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
