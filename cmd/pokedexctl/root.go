package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Billy-Davies-2/pokedex-ui/internal/client/api"
	"github.com/Billy-Davies-2/pokedex-ui/internal/client/session"
)

var serverURL string

var rootCmd = &cobra.Command{
	Use:   "pokedexctl",
	Short: "Terminal client for the pokedex listing service",
	Long: `pokedexctl browses the pokedex listing service: log in, page through
the list, search by name or number, and inspect individual pokemon.

The list and get commands require a stored token; run login first.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "Listing service URL (default: POKEDEX_API_URL or http://localhost:3000)")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(getCmd)
}

func newClient() *api.Client {
	return api.New(serverURL)
}

// tokenStorePath resolves the session database location, overridable for
// tests and sandboxes.
func tokenStorePath() (string, error) {
	if p := os.Getenv("POKEDEXCTL_SESSION"); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".pokedexctl.db"), nil
}

func openTokenStore() (*session.TokenStore, error) {
	path, err := tokenStorePath()
	if err != nil {
		return nil, err
	}
	return session.NewTokenStore(path)
}

// requireToken enforces the login gate for protected commands.
func requireToken() error {
	store, err := openTokenStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if _, err := store.Token(); err != nil {
		return fmt.Errorf("not logged in; run: pokedexctl login <username>")
	}
	return nil
}
