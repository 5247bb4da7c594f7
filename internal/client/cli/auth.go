package cli

import (
	"fmt"

	"github.com/orbitlabs/orbit/internal/models"
	"github.com/spf13/cobra"
)

func newSignupCommand(app **App) *cobra.Command {
	var firstName, lastName string

	cmd := &cobra.Command{
		Use:   "signup <email>",
		Short: "Create a new account and start a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := readPassword("Password: ")
			if err != nil {
				return err
			}

			resp, err := (*app).client.SignUp(cmd.Context(), models.SignupRequest{
				Email:     args[0],
				FirstName: firstName,
				LastName:  lastName,
				Password:  password,
			})
			if err != nil {
				return err
			}

			if err := (*app).auth.SetAuthInfo(resp.UserInfo, resp.ExpiresAt, ""); err != nil {
				return err
			}

			fmt.Printf("%s Signed up as %s (%s)\n", resp.Message, resp.UserInfo.Email, resp.UserInfo.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&firstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "last name")
	cmd.MarkFlagRequired("first-name")
	cmd.MarkFlagRequired("last-name")

	return cmd
}

func newLoginCommand(app **App) *cobra.Command {
	return &cobra.Command{
		Use:   "login <email>",
		Short: "Authenticate and start a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := readPassword("Password: ")
			if err != nil {
				return err
			}

			resp, err := (*app).client.Authenticate(cmd.Context(), args[0], password)
			if err != nil {
				return err
			}

			if err := (*app).auth.SetAuthInfo(resp.UserInfo, resp.ExpiresAt, ""); err != nil {
				return err
			}

			fmt.Printf("%s Logged in as %s %s (%s)\n",
				resp.Message, resp.UserInfo.FirstName, resp.UserInfo.LastName, resp.UserInfo.Role)
			return nil
		},
	}
}

func newLogoutCommand(app **App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the local session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			(*app).client.Reset()
			return (*app).auth.Logout()
		},
	}
}

func newWhoamiCommand(app **App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the locally stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info, ok := (*app).auth.Current()
			if !ok || !(*app).auth.IsAuthenticated() {
				fmt.Println("Not logged in.")
				return nil
			}

			fmt.Printf("%s %s <%s> role=%s expiresAt=%d\n",
				info.UserInfo.FirstName, info.UserInfo.LastName,
				info.UserInfo.Email, info.UserInfo.Role, info.ExpiresAt)
			return nil
		},
	}
}

func newSetRoleCommand(app **App) *cobra.Command {
	return &cobra.Command{
		Use:   "set-role <user|admin>",
		Short: "Change your role (admin only, takes effect on next login)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := (*app).client.UpdateRole(cmd.Context(), models.Role(args[0]))
			if err != nil {
				return err
			}
			fmt.Println(msg)
			return nil
		},
	}
}
