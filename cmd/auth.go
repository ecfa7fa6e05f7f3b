package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/WillDaSilva/logfire/internal/credentials"
	"github.com/WillDaSilva/logfire/internal/keychain"
	"github.com/WillDaSilva/logfire/internal/logging"
)

var authDataDir string

// authCmd groups token management subcommands.
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the stored Logfire token",
}

// authSetTokenCmd stores a token in the OS keychain.
var authSetTokenCmd = &cobra.Command{
	Use:   "set-token [token]",
	Short: "Store a Logfire token in the OS keychain",
	Long: `Stores a Logfire token in the OS keychain, where queries find it when no
explicit token, LOGFIRE_TOKEN environment variable, or credentials file is
present. When no token is given as an argument, it prompts for one.

With --data-dir, the token is written to the credentials file inside that
discovery path instead of the keychain, which is useful on hosts without a
secret store.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		token := ""
		if len(args) == 1 {
			token = strings.TrimSpace(args[0])
		}
		if token == "" {
			fmt.Print("Token: ")
			line, err := bufio.NewReader(os.Stdin).ReadString('\n')
			if err != nil {
				return err
			}
			token = strings.TrimSpace(line)
		}
		if token == "" {
			return errors.New("no token given")
		}

		if authDataDir != "" {
			if err := credentials.WriteFile(authDataDir, token); err != nil {
				return err
			}
			pterm.Success.Printf("Token %s written to %s/%s\n",
				logging.MaskToken(token), authDataDir, credentials.FileName)
			return nil
		}

		km, err := keychain.GetManager()
		if err != nil {
			return err
		}
		if err := km.SaveToken(token); err != nil {
			return err
		}
		pterm.Success.Printf("Token %s stored in the OS keychain\n", logging.MaskToken(token))
		return nil
	},
}

// authClearCmd removes the stored token.
var authClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the stored Logfire token",
	RunE: func(cmd *cobra.Command, args []string) error {
		km, err := keychain.GetManager()
		if err != nil {
			return err
		}
		if err := km.ClearToken(); err != nil {
			return err
		}
		pterm.Success.Println("Stored token removed")
		return nil
	},
}

// authStatusCmd reports whether a token is stored, without revealing it.
var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether a Logfire token is stored",
	RunE: func(cmd *cobra.Command, args []string) error {
		if tok := strings.TrimSpace(os.Getenv("LOGFIRE_TOKEN")); tok != "" {
			pterm.Printf("Token %s set via LOGFIRE_TOKEN\n", logging.MaskToken(tok))
			return nil
		}

		km, err := keychain.GetManager()
		if err != nil {
			return err
		}
		tok, err := km.LoadToken()
		if err != nil {
			if errors.Is(err, keychain.ErrNotFound) {
				pterm.Println("🔒 No token stored.")
				pterm.Println("   Run 'logfire auth set-token' or set LOGFIRE_TOKEN.")
				return nil
			}
			return err
		}
		pterm.Printf("Token %s stored in the OS keychain\n", logging.MaskToken(tok))
		return nil
	},
}

func init() {
	authSetTokenCmd.Flags().StringVar(&authDataDir, "data-dir", "", "Write the token to the credentials file in this directory instead of the keychain")
	authCmd.AddCommand(authSetTokenCmd)
	authCmd.AddCommand(authClearCmd)
	authCmd.AddCommand(authStatusCmd)
	rootCmd.AddCommand(authCmd)
}
