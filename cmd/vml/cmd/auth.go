package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func authCmd() *cobra.Command {
	authRoot := &cobra.Command{
		Use:   "auth",
		Short: "Connect and refresh Mercado Livre accounts",
		Long: "Manage Mercado Livre account credentials: print the consent page URL,\n" +
			"trade an authorization code for tokens, and force a token refresh.",
	}

	authRoot.AddCommand(
		authURLCmd(),
		authLoginCmd(),
		authRefreshCmd(),
	)

	return authRoot
}

func authURLCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "url",
		Short:   "Print the authorization URL",
		Example: `  vml auth url`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			u, err := c.GetAuthURL(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(map[string]string{"url": u})
			}
			fmt.Println(u)
			return nil
		},
	}
}

func authLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <code>",
		Short: "Exchange an authorization code for tokens",
		Long: "Trade the authorization code from the Mercado Livre consent redirect\n" +
			"for an access token and refresh token, stored server-side.",
		Example: `  vml auth login TG-65a1b2c3d4e5f6
  vml auth login TG-65a1b2c3d4e5f6 --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			rec, err := c.ExchangeCode(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(rec)
			}
			fmt.Printf("Account %s connected.\n", rec.UserID)
			return printTokenDetail(rec)
		},
	}
}

func authRefreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh <userId>",
		Short: "Force a token refresh for a user",
		Example: `  vml auth refresh 123456
  vml auth refresh 123456 --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			rec, err := c.RefreshToken(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(rec)
			}
			fmt.Printf("Credentials for %s refreshed.\n", rec.UserID)
			return printTokenDetail(rec)
		},
	}
}
