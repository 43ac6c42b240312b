package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Billy-Davies-2/pokedex-ui/internal/client/api"
)

var loginPassword string

var loginCmd = &cobra.Command{
	Use:   "login <username>",
	Short: "Log in and store the session token",
	Args:  cobra.ExactArgs(1),
	RunE:  runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the stored session token",
	RunE:  runLogout,
}

func init() {
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Password (prompted when omitted)")
}

func runLogin(cmd *cobra.Command, args []string) error {
	username := args[0]

	password := loginPassword
	if password == "" {
		fmt.Fprint(os.Stderr, "Password: ")
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		password = strings.TrimRight(line, "\r\n")
	}

	result, err := newClient().Login(cmd.Context(), username, password)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			return fmt.Errorf("invalid credentials")
		}
		return err
	}

	store, err := openTokenStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Save(result.Token); err != nil {
		return err
	}

	fmt.Printf("%s (user: %s)\n", result.Message, result.User.Username)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	store, err := openTokenStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Clear(); err != nil {
		return err
	}
	fmt.Println("Logged out")
	return nil
}
