// Command devtoken mints identity tokens for the local identity provider, so the
// session endpoint can be exercised without a Firebase project.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"landmarket/config"
	"landmarket/internal/domain/constants"
	"landmarket/internal/infra/auth"

	"github.com/pkg/errors"
)

func main() {
	uid := flag.String("uid", "", "User id to put in the token subject")
	email := flag.String("email", "", "Email claim")
	ttl := flag.Duration("ttl", time.Hour, "Token lifetime")
	flag.Parse()

	if err := run(*uid, *email, *ttl); err != nil {
		fmt.Fprintf(os.Stderr, "devtoken: %+v\n", err)
		os.Exit(1)
	}
}

func run(uid, email string, ttl time.Duration) error {
	if uid == "" {
		return errors.New("-uid is required")
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}
	if cfg.Auth == nil || cfg.Auth.Provider != constants.AuthProviderLocal {
		return errors.New("auth.provider must be local")
	}

	token, err := auth.IssueLocalIDToken(cfg.Auth.LocalSecret, uid, email, ttl)
	if err != nil {
		return errors.Wrap(err, "sign token")
	}

	fmt.Println(token)

	return nil
}
