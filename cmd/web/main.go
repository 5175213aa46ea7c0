package main

import (
	"fmt"
	"os"

	"github.com/de-tools/retail-dashboard/pkg/runtime/app"
	"github.com/de-tools/retail-dashboard/pkg/runtime/chart"
	"github.com/de-tools/retail-dashboard/pkg/server"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

var opts app.Options

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for the retail sales dashboard",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "",
		"Path to a settings file (yaml, json or toml)")
	rootCmd.Flags().StringVar(&opts.ProfilesPath, "profiles-file", app.DefaultProfilesPath(),
		"Path to the upstream profiles file (default is $HOME/.salesdashcfg)")
	rootCmd.Flags().StringVar(&opts.Profile, "profile", "",
		"Upstream profile to read from")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	settings, err := app.LoadSettings(cmd.Context(), opts)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	logger, err := app.NewLogger(os.Stdout, settings)
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	loader, err := app.NewLoader(settings, registry)
	if err != nil {
		return err
	}

	logger.Info().
		Str("upstream", settings.Upstream.BaseURL).
		Str("policy", string(loader.Policy())).
		Dur("upstream_timeout", settings.Upstream.Timeout).
		Msg("sales dashboard configured")

	webAPI, err := server.NewWebAPI(server.Config{
		Addr:            settings.Server.Addr(),
		ShutdownTimeout: settings.Server.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Loader:   loader,
			Chart:    chart.NewRenderer(chart.DefaultConfig()),
			Gatherer: registry,
			Logger:   logger,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to configure server: %w", err)
	}

	return webAPI.Start()
}
