package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexmarten/strive/internal/cli/formatter"
	"github.com/alexmarten/strive/internal/identity"
)

func newAuthCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Optional account sign-in",
		Long: `Sign in to an account. Authentication is optional: every goal
command works without it, and goals always stay on this machine.`,
	}

	cmd.AddCommand(
		newAuthLoginCmd(app),
		newAuthSignupCmd(app),
		newAuthLogoutCmd(app),
		newAuthResetPasswordCmd(app),
		newAuthWhoamiCmd(app),
	)

	return cmd
}

// requireAuth returns the identity client or a friendly error when the
// provider is not configured.
func requireAuth(app *App) (identity.Client, error) {
	if app.Auth == nil {
		return nil, fmt.Errorf("authentication is not configured (set STRIVE_AUTH_ENABLED=true and STRIVE_AUTH_API_KEY)")
	}
	return app.Auth, nil
}

// authError rewrites identity sentinel errors into user-facing text.
func authError(err error) error {
	switch {
	case errors.Is(err, identity.ErrInvalidCredentials):
		return fmt.Errorf("invalid email or password")
	case errors.Is(err, identity.ErrUnavailable):
		return fmt.Errorf("identity provider unreachable; your goals are unaffected")
	case errors.Is(err, identity.ErrDisabled):
		return fmt.Errorf("authentication is not configured")
	default:
		return err
	}
}

func newAuthLoginCmd(app *App) *cobra.Command {
	var email, password, provider, idToken string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with email and password, or a federated provider",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := requireAuth(app)
			if err != nil {
				return err
			}
			ctx := context.Background()

			if provider != "" {
				p, err := identity.ParseProvider(provider)
				if err != nil {
					return err
				}
				if idToken == "" {
					return fmt.Errorf("--id-token is required with --provider")
				}
				acct, err := client.SignInWithProvider(ctx, p, idToken)
				if err != nil {
					return authError(err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s via %s\n", formatter.Bold(acct.Email), provider)
				return nil
			}

			if email == "" || password == "" {
				return fmt.Errorf("--email and --password are required (or use --provider with --id-token)")
			}
			acct, err := client.SignIn(ctx, email, password)
			if err != nil {
				return authError(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", formatter.Bold(acct.Email))
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	cmd.Flags().StringVar(&provider, "provider", "", "Federated provider id (google.com or github.com)")
	cmd.Flags().StringVar(&idToken, "id-token", "", "OAuth id token obtained from the provider")

	return cmd
}

func newAuthSignupCmd(app *App) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := requireAuth(app)
			if err != nil {
				return err
			}

			acct, err := client.SignUp(context.Background(), email, password)
			if err != nil {
				return authError(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Account created for %s\n", formatter.Bold(acct.Email))
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newAuthLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := requireAuth(app)
			if err != nil {
				return err
			}

			if err := client.SignOut(context.Background()); err != nil {
				return authError(err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
			return nil
		},
	}
}

func newAuthResetPasswordCmd(app *App) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "reset-password",
		Short: "Send a password reset email",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := requireAuth(app)
			if err != nil {
				return err
			}

			if err := client.SendPasswordReset(context.Background(), email); err != nil {
				return authError(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Password reset email sent to %s\n", email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newAuthWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := requireAuth(app)
			if err != nil {
				return err
			}

			acct, err := client.CurrentUser(context.Background())
			if err != nil {
				return authError(err)
			}
			if acct == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Not signed in.")
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", formatter.Bold(acct.Email))
			return nil
		},
	}
}
