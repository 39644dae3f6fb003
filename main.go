package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"smartimmo/api"
	"smartimmo/assistant"
	"smartimmo/config"
	"smartimmo/httputil"
	"smartimmo/logging"
	"smartimmo/views"
)

type options struct {
	configPath string
	apiURL     string
	aiEndpoint string
	logStdout  bool
	route      string
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:          "smartimmo",
		Short:        "Browse SmartImmo listings from the terminal",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "path to a YAML config file (default ./smartimmo.yaml)")
	cmd.Flags().StringVar(&opts.apiURL, "api-url", "", "backend API base URL")
	cmd.Flags().StringVar(&opts.aiEndpoint, "ai-endpoint", "", "assistant query endpoint")
	cmd.Flags().BoolVar(&opts.logStdout, "log-stdout", false, "copy log output to stdout")
	cmd.Flags().StringVar(&opts.route, "route", views.PathHome, "initial route, e.g. /favorites or /properties/12")

	return cmd
}

func run(opts options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.apiURL != "" {
		cfg.API.BaseURL = opts.apiURL
	}
	if opts.aiEndpoint != "" {
		cfg.AI.Endpoint = opts.aiEndpoint
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logFile, err := logging.Setup(cfg.LogPath, opts.logStdout)
	if err != nil {
		return fmt.Errorf("set up logging: %w", err)
	}
	defer logFile.Close()

	log.Printf("Starting smartimmo: api=%s ai=%s", cfg.API.BaseURL, cfg.AI.Endpoint)

	clients := httputil.NewClients(cfg)
	apiClient := api.NewClient(cfg.API.BaseURL, clients.API)
	aiClient := assistant.NewClient(cfg.AI.Endpoint, clients.AI)
	timing := views.Timing{Short: cfg.Toast.Short, Long: cfg.Toast.Long}

	p := tea.NewProgram(
		views.NewApp(apiClient, aiClient, timing, opts.route),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}

	log.Println("Goodbye!")
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
