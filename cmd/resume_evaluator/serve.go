package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-evaluator/internal/config"
	"github.com/jonathan/resume-evaluator/internal/server"
)

var (
	servePort   int
	serveConfig string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for the resume evaluation pipeline.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to a JSON config file (overrides environment)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.FromEnv()
	if serveConfig != "" {
		loaded, err := config.LoadConfig(serveConfig)
		if err != nil {
			return err
		}
		cfg = *loaded
	}
	if servePort != 0 {
		cfg.Port = servePort
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
