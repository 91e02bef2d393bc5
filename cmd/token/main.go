// Command token mints API access tokens for local development.
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/tempo/internal/auth"
	"github.com/MrJamesThe3rd/tempo/internal/config"
)

var (
	userID    string
	companyID string
	role      string
)

var rootCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a signed access token for the tempo API",
	Long: `Issue a signed access token for the tempo API.

The token is signed with JWT_SECRET and expires after JWT_TTL. Export it as
TEMPO_TOKEN to use it from the terminal client.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		if err := cfg.ValidateAuth(); err != nil {
			return err
		}

		v, err := viewerFromFlags()
		if err != nil {
			return err
		}

		token, err := auth.NewIssuer(cfg.Auth.Secret, cfg.Auth.TokenTTL).Issue(v)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), token)

		return nil
	},
}

func viewerFromFlags() (auth.Viewer, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return auth.Viewer{}, fmt.Errorf("invalid --user: %w", err)
	}

	cid, err := uuid.Parse(companyID)
	if err != nil {
		return auth.Viewer{}, fmt.Errorf("invalid --company: %w", err)
	}

	r := auth.Role(role)
	switch r {
	case auth.RoleOwner, auth.RoleAdmin, auth.RoleEmployee:
	default:
		return auth.Viewer{}, fmt.Errorf("invalid --role %q: want owner, admin or employee", role)
	}

	return auth.Viewer{UserID: uid, CompanyID: cid, Role: r}, nil
}

func init() {
	rootCmd.Flags().StringVar(&userID, "user", uuid.NewString(), "user id")
	rootCmd.Flags().StringVar(&companyID, "company", "", "company id")
	rootCmd.Flags().StringVar(&role, "role", string(auth.RoleEmployee), "owner, admin or employee")
	_ = rootCmd.MarkFlagRequired("company")
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
