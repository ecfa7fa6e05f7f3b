package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/WillDaSilva/logfire/dash"
	"github.com/WillDaSilva/logfire/internal/config"
	"github.com/WillDaSilva/logfire/internal/httperrors"
	"github.com/WillDaSilva/logfire/internal/logging"
	"github.com/WillDaSilva/logfire/internal/terminal"
)

// queryCmd runs a SQL query against the Logfire API and renders the result.
var queryCmd = &cobra.Command{
	Use:   "query [sql]",
	Short: "Run a SQL query against your Logfire data",
	Long: `The query command executes a raw SQL query through the Logfire dashboard
API and renders the result rows as a table.

When no query is given as an argument, it prompts for one interactively.
The token is resolved from LOGFIRE_TOKEN, the credentials file in the data
dir, or the OS keychain; see 'logfire auth' for managing the stored token.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		sql := ""
		if len(args) == 1 {
			sql = strings.TrimSpace(args[0])
		}
		if sql == "" {
			var err error
			sql, err = promptSQL()
			if err != nil {
				return err
			}
		}
		if sql == "" {
			return errors.New("no query given")
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		session := dash.NewSession()
		session.Configure(
			dash.WithDataDir(cfg.DataDir),
			dash.WithBaseURL(cfg.BaseURL),
		)

		stopSpinner := startSpinner("Running query...")
		result, err := session.RawQuery(ctx, sql)
		stopSpinner()
		if err != nil {
			return presentQueryError(err)
		}

		return session.Show(result)
	},
}

// promptSQL reads one query line from stdin, clearing the prompt afterwards
// so only the result remains on screen.
func promptSQL() (string, error) {
	prompt := "sql> "
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	line = strings.TrimSpace(line)
	terminal.ClearPreviousLines(len(prompt) + len(line))
	return line, nil
}

// presentQueryError renders a query failure for the user and returns the
// error that should reach the shell.
func presentQueryError(err error) error {
	var qErr *dash.QueryError
	if errors.As(err, &qErr) {
		pterm.Error.Println("Query failed:")
		pterm.Println(qErr.Details)
		return err
	}

	var cfgErr *dash.ConfigurationError
	if errors.As(err, &cfgErr) {
		pterm.Error.Println(cfgErr.Error())
		pterm.Println("Run 'logfire auth set-token' to store a token in the OS keychain.")
		return err
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return httperrors.FormatNetworkError(err, "running the query")
	}

	pterm.Error.Println(logging.PresentError("query failed", err))
	return err
}

func init() {
	rootCmd.AddCommand(queryCmd)
}
