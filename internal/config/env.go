// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/MKhiriev/go-session-keeper/models"
)

// legacyTokenDirEnv is honoured when STORAGE_TOKEN_DIR is not set.
const legacyTokenDirEnv = "TOKEN_STORAGE_DIRECTORY"

// envAccount is the single-account mode used by container deployments.
type envAccount struct {
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`
	Games    string `env:"GAMES"`
	Online   string `env:"ONLINE"`
}

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
//
// When ACCOUNT_USERNAME is set, one account is built from the ACCOUNT_*
// variables and appended to cfg.Accounts.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}
	if cfg.Storage.TokenDir == "" {
		cfg.Storage.TokenDir = os.Getenv(legacyTokenDirEnv)
	}

	var acc envAccount
	if err := env.ParseWithOptions(&acc, env.Options{Prefix: "ACCOUNT_"}); err != nil {
		return fmt.Errorf("error getting account env configs: %w", err)
	}
	if acc.Username == "" {
		return nil
	}

	account, warnings := acc.toAccount()
	cfg.Accounts = append(cfg.Accounts, account)
	cfg.Warnings = append(cfg.Warnings, warnings...)
	return nil
}

func (a envAccount) toAccount() (models.AccountConfig, []string) {
	var warnings []string

	games, bad := parseGameList(a.Games)
	for _, g := range bad {
		warnings = append(warnings, fmt.Sprintf("invalid game id %q in ACCOUNT_GAMES ignored", g))
	}

	account := models.AccountConfig{
		Username: a.Username,
		Password: a.Password,
		Games:    games,
	}

	if a.Online != "" {
		online, err := strconv.ParseBool(strings.TrimSpace(a.Online))
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("invalid ACCOUNT_ONLINE value %q ignored", a.Online))
		} else {
			account.Online = &online
		}
	}

	return account, warnings
}

// parseGameList splits a comma separated list of game ids. Entries that are
// not non-negative integers are returned separately.
func parseGameList(raw string) (games []int, invalid []string) {
	games = []int{}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil || id < 0 {
			invalid = append(invalid, part)
			continue
		}
		games = append(games, id)
	}
	return games, invalid
}
