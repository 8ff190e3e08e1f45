// Command sessiontoken mints session secrets and tokens for local testing.
//
//	sessiontoken secret
//	SESSION_SECRETS=... sessiontoken issue --address addr1xyz
//	SESSION_SECRETS=... sessiontoken verify <token>
package main

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/meshjs/dashboard/pkg/config"
	"github.com/meshjs/dashboard/pkg/token"
)

var errInvalidToken = errors.New("token is invalid or expired")

type sessionConfig struct {
	Secrets []string      `env:"SESSION_SECRETS,required" envSeparator:","`
	TTL     time.Duration `env:"SESSION_TTL" envDefault:"168h"`
	Issuer  string        `env:"SESSION_ISSUER" envDefault:"cardano-dashboard"`
}

func main() {
	if err := newRootCmd(nil).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the CLI. A nil environ reads the process environment.
func newRootCmd(environ map[string]string) *cobra.Command {
	root := &cobra.Command{
		Use:          "sessiontoken",
		Short:        "Generate session secrets and tokens",
		SilenceUsage: true,
	}

	codec := func() (*token.Codec, error) {
		var opts []config.Option
		if environ != nil {
			opts = append(opts, config.WithEnviron(environ))
		}
		cfg, err := config.Load[sessionConfig](opts...)
		if err != nil {
			return nil, err
		}
		return token.New(cfg.Secrets, token.WithTTL(cfg.TTL), token.WithIssuer(cfg.Issuer))
	}

	root.AddCommand(newSecretCmd(), newIssueCmd(codec), newVerifyCmd(codec))
	return root
}

func newSecretCmd() *cobra.Command {
	var size int
	cmd := &cobra.Command{
		Use:   "secret",
		Short: "Print a random value suitable for SESSION_SECRETS",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if size < 32 {
				return fmt.Errorf("--bytes must be at least 32, got %d", size)
			}
			buf := make([]byte, size)
			if _, err := rand.Read(buf); err != nil {
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), base64.RawURLEncoding.EncodeToString(buf))
			return err
		},
	}
	cmd.Flags().IntVar(&size, "bytes", 32, "number of random bytes")
	return cmd
}

func newIssueCmd(codec func() (*token.Codec, error)) *cobra.Command {
	var address string
	cmd := &cobra.Command{
		Use:   "issue",
		Short: "Issue a session token for a wallet address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := codec()
			if err != nil {
				return err
			}
			raw, err := c.Issue(address)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), raw)
			return err
		},
	}
	cmd.Flags().StringVar(&address, "address", "", "wallet address to embed")
	_ = cmd.MarkFlagRequired("address")
	return cmd
}

func newVerifyCmd(codec func() (*token.Codec, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <token>",
		Short: "Print the address and expiry of a session token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := codec()
			if err != nil {
				return err
			}
			claims, ok := c.Verify(args[0])
			if !ok {
				return errInvalidToken
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "address=%s expires=%s\n",
				claims.Address, claims.ExpiresAt.UTC().Format(time.RFC3339))
			return err
		},
	}
}
