// Command token issues a session token signed with LEXIQ_JWT_SECRET, for
// operators and local testing against a running server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"lexiq/internal/app/auth"
	"lexiq/internal/config"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	userID := fs.String("user", "", "user id placed in the token subject")
	email := fs.String("email", "", "optional email claim")
	ttl := fs.Duration("ttl", time.Hour, "token lifetime")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	return issue(cfg, *userID, *email, *ttl, out)
}

func issue(cfg config.Config, userID, email string, ttl time.Duration, out io.Writer) error {
	if cfg.Auth.JWTSecret == "" {
		return errors.New("LEXIQ_JWT_SECRET is required")
	}
	resp, err := auth.IssueUseCase{Secret: []byte(cfg.Auth.JWTSecret)}.Execute(context.Background(), auth.IssueRequest{
		UserID: userID,
		Email:  email,
		TTL:    ttl,
	})
	if err != nil {
		return fmt.Errorf("issue token: %w", err)
	}
	_, err = fmt.Fprintf(out, "%s\nexpires_at=%s\n", resp.Token, resp.ExpiresAt)
	return err
}
