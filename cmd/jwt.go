package main

import (
	"context"
	"drills/internal/config"
	"drills/pkg/logger"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// signToken signs an RS256 token for subject valid from now for ttl.
func signToken(privateKeyPEM string, subject uuid.UUID, ttl time.Duration, now time.Time) (string, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(privateKeyPEM))
	if err != nil {
		return "", fmt.Errorf("could not parse RSA private key: %w", err)
	}

	claims := jwt.RegisteredClaims{
		Subject:   subject.String(),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	if err != nil {
		return "", fmt.Errorf("could not sign JWT: %w", err)
	}

	return signed, nil
}

// JWTCommand constructs the 'jwt' subcommand that generates a signed RS256 JWT
// for a user ID and TTL using the configured private key. Without --subject a
// new user ID is generated and printed to stderr.
func JWTCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Generates JWT token for given user ID",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			rawSubject, _ := cmd.Flags().GetString("subject")
			TTL, _ := cmd.Flags().GetDuration("ttl")

			subject := uuid.New()
			if rawSubject != "" {
				var err error
				if subject, err = uuid.Parse(rawSubject); err != nil {
					logger.Fatal(ctx, "subject must be a user UUID", zap.Error(err))
				}
			} else {
				fmt.Fprintln(os.Stderr, "user ID:", subject) //nolint: forbidigo
			}

			signed, err := signToken(cfg.JWT.PrivateKey, subject, TTL, time.Now())
			if err != nil {
				logger.Fatal(ctx, "could not generate JWT", zap.Error(err))
			}

			fmt.Println(signed) //nolint: forbidigo
		},
	}

	cmd.Flags().String("subject", "", "JWT subject (user UUID), generated when empty")
	cmd.Flags().Duration("ttl", 24*time.Hour, "Token TTL (e.g., 30s, 15m, 1h)")

	return cmd
}
