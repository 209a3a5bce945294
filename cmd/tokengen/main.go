// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command tokengen issues a bearer token for a user, signed with the key
// the server verifies tokens with.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/focus-on-it/internal/config"
	"github.com/MKhiriev/focus-on-it/internal/logger"
	"github.com/MKhiriev/focus-on-it/internal/service"
)

func main() {
	log := logger.NewLogger("focus-on-it-tokengen")

	cfg, err := config.GetTokenConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs, -user and a sign key are required")
	}

	token, err := service.NewAuthService(cfg.App, log).CreateToken(context.Background(), cfg.UserID)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating token")
	}

	fmt.Println(token.SignedString)
}
