// Package main provides the danddy command-line client for managing
// D&D characters and campaigns against a danddy backend.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/khoi-stripe/danddy/internal/config"
	"github.com/khoi-stripe/danddy/internal/credentials"
	"github.com/khoi-stripe/danddy/internal/services/auth"
	"github.com/khoi-stripe/danddy/internal/services/campaign"
	"github.com/khoi-stripe/danddy/internal/services/character"
	"github.com/khoi-stripe/danddy/internal/services/user"
	"github.com/khoi-stripe/danddy/internal/session"
	"github.com/khoi-stripe/danddy/internal/stores"
	"github.com/khoi-stripe/danddy/internal/transport"
)

var (
	serverAddr string
	timeout    time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "danddy",
	Short: "D&D character and campaign manager",
}

// app wires the full client stack for one command invocation
type app struct {
	cfg        *config.Config
	creds      *credentials.FileStore
	session    *session.Manager
	auth       auth.Service
	characters *stores.CharacterStore
	campaigns  *stores.CampaignStore
	users      user.Service
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if serverAddr != "" {
		cfg.BaseURL = serverAddr
	}
	if timeout > 0 {
		cfg.Timeout = timeout
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	creds, err := credentials.NewFileStore(cfg.TokenFile)
	if err != nil {
		return nil, err
	}

	httpTransport, err := transport.New(&transport.Config{
		BaseURL:    cfg.BaseURL,
		Tokens:     creds,
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
	})
	if err != nil {
		return nil, err
	}

	authService, err := auth.New(&auth.Config{Transport: httpTransport})
	if err != nil {
		return nil, err
	}
	characterService, err := character.New(&character.Config{Transport: httpTransport})
	if err != nil {
		return nil, err
	}
	campaignService, err := campaign.New(&campaign.Config{Transport: httpTransport})
	if err != nil {
		return nil, err
	}
	userService, err := user.New(&user.Config{Transport: httpTransport})
	if err != nil {
		return nil, err
	}

	manager, err := session.New(&session.Config{
		Auth:        authService,
		Credentials: creds,
	})
	if err != nil {
		return nil, err
	}

	characterStore, err := stores.NewCharacterStore(&stores.CharacterConfig{
		Service:        characterService,
		OnUnauthorized: manager.Invalidate,
	})
	if err != nil {
		return nil, err
	}
	campaignStore, err := stores.NewCampaignStore(&stores.CampaignConfig{
		Service:        campaignService,
		OnUnauthorized: manager.Invalidate,
	})
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:        cfg,
		creds:      creds,
		session:    manager,
		auth:       authService,
		characters: characterStore,
		campaigns:  campaignStore,
		users:      userService,
	}, nil
}

// printJSON pretty-prints any value for terminal output
func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(output))
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverAddr, "server", "", "backend base URL (overrides DANDDY_BASE_URL)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "request timeout (overrides DANDDY_TIMEOUT)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
