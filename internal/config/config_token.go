// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// TokenConfig is what the token issuing tool needs: the signing settings of
// the server and the user the token is issued for.
type TokenConfig struct {
	App    App
	UserID int64
}

// GetTokenConfig reads the APP_ environment group and then the flags in
// args. Flags win over the environment.
func GetTokenConfig(args []string) (*TokenConfig, error) {
	cfg := &TokenConfig{App: defaults().App}
	if err := env.ParseWithOptions(&cfg.App, env.Options{Prefix: "APP_"}); err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	fs := flag.NewFlagSet("focus-on-it-token", flag.ContinueOnError)
	var (
		userID   int64
		signKey  string
		issuer   string
		duration time.Duration
	)
	fs.Int64Var(&userID, "user", 0, "User id the token is issued for")
	fs.StringVar(&signKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&issuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&duration, "token-duration", 0, "Token duration (e.g., 720h)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.UserID = userID
	if signKey != "" {
		cfg.App.TokenSignKey = signKey
	}
	if issuer != "" {
		cfg.App.TokenIssuer = issuer
	}
	if duration > 0 {
		cfg.App.TokenDuration = duration
	}

	if cfg.UserID <= 0 || cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return cfg, ErrInvalidAppConfigs
	}

	return cfg, nil
}
