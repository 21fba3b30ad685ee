package token

import (
	"fmt"

	"github.com/spf13/cobra"

	"raffle/internal/infrastructure/auth"
	"raffle/internal/infrastructure/config"
	"raffle/internal/shared/authorization"
)

var (
	env    string
	userID string
	role   string
)

// NewCommand issues a bearer token signed with the configured secret, for
// operators and local testing.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for a user",
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVar(&userID, "user", "", "User id (participant id for role user)")
	cmd.Flags().StringVar(&role, "role", string(authorization.RoleUser), "Role: user or admin")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	parsed := authorization.UserRole(role)
	if !parsed.IsValid() {
		return fmt.Errorf("unknown role %q", role)
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	svc := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.Issuer, cfg.Auth.JWT.TTL)
	token, err := svc.Generate(userID, parsed)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
