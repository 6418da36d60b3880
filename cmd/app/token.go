package main

import (
	"fmt"
	"time"

	"github.com/go-extras/cobraflags"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/osse101/RarityRoll_Go/internal/config"
	"github.com/osse101/RarityRoll_Go/internal/session"
)

const (
	userFlag = "user"
	ttlFlag  = "ttl"
)

var tokenFlags = map[string]cobraflags.Flag{
	userFlag: &cobraflags.StringFlag{
		Name:  userFlag,
		Value: "",
		Usage: "User id to issue the token for (random uuid when empty)",
	},
	ttlFlag: &cobraflags.StringFlag{
		Name:  ttlFlag,
		Value: "",
		Usage: "Token lifetime, e.g. 1h (defaults to SESSION_TTL)",
	},
}

func newTokenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a development session token",
		RunE:  tokenCommand,
	}
	cobraflags.RegisterMap(cmd, tokenFlags)
	return cmd
}

func tokenCommand(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ttl := cfg.SessionTTL
	if raw := tokenFlags[ttlFlag].GetString(); raw != "" {
		if ttl, err = time.ParseDuration(raw); err != nil {
			return fmt.Errorf("invalid --%s: %w", ttlFlag, err)
		}
	}

	userID := tokenFlags[userFlag].GetString()
	if userID == "" {
		userID = uuid.NewString()
	}

	sessions, err := session.NewManager(cfg.SessionSecret, ttl, cfg.SessionCookie)
	if err != nil {
		return err
	}
	token, err := sessions.Issue(userID, time.Now())
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "user:  %s\ntoken: %s\n", userID, token)
	return nil
}
