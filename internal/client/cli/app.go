// Package cli implements the command-line client for the Orbit API
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/orbitlabs/orbit/internal/client/api"
	"github.com/orbitlabs/orbit/internal/client/state"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// App wires the API client and the persisted auth state behind the commands
type App struct {
	client *api.Client
	auth   *state.Manager
}

// printNavigator reports navigation side effects on the terminal
type printNavigator struct{}

func (printNavigator) Navigate(path string) {
	fmt.Printf("-> %s\n", path)
}

// NewApp creates the CLI app against the given server URL, restoring any
// persisted session.
func NewApp(serverURL string) (*App, error) {
	client, err := api.New(serverURL)
	if err != nil {
		return nil, err
	}

	statePath, err := defaultStatePath()
	if err != nil {
		return nil, err
	}

	auth, err := state.NewManager(state.NewFileStore(statePath), printNavigator{})
	if err != nil {
		return nil, err
	}

	return &App{client: client, auth: auth}, nil
}

// defaultStatePath places the session file under the user config dir
func defaultStatePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve config dir: %w", err)
	}
	return filepath.Join(dir, "orbit", "session.json"), nil
}

// readPassword prompts for a password without echoing it
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(raw), nil
}

// NewRootCommand builds the orbit-client command tree
func NewRootCommand() *cobra.Command {
	var serverURL string
	var app *App

	root := &cobra.Command{
		Use:           "orbit-client",
		Short:         "Command-line client for the Orbit API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			app, err = NewApp(serverURL)
			return err
		},
	}

	root.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:3001", "Orbit API base URL")

	root.AddCommand(
		newSignupCommand(&app),
		newLoginCommand(&app),
		newLogoutCommand(&app),
		newWhoamiCommand(&app),
		newDashboardCommand(&app),
		newBioCommand(&app),
		newInventoryCommand(&app),
		newUsersCommand(&app),
		newSetRoleCommand(&app),
	)

	return root
}
