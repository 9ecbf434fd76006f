// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the final merged [StructuredConfig] can start a
// keeper. It returns the first violation wrapped in one of the package
// sentinel errors.
func (cfg *StructuredConfig) validate() error {
	if len(cfg.Accounts) == 0 {
		return ErrNoAccounts
	}

	seen := make(map[string]struct{}, len(cfg.Accounts))
	for i, acc := range cfg.Accounts {
		if strings.TrimSpace(acc.Username) == "" {
			return fmt.Errorf("%w: account #%d has no username", ErrInvalidAccount, i+1)
		}
		if acc.Password == "" {
			return fmt.Errorf("%w: account %q has no password", ErrInvalidAccount, acc.Username)
		}
		for _, game := range acc.Games {
			if game < 0 {
				return fmt.Errorf("%w: account %q has negative game id %d", ErrInvalidAccount, acc.Username, game)
			}
		}
		key := strings.ToLower(acc.Username)
		if _, ok := seen[key]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateAccount, acc.Username)
		}
		seen[key] = struct{}{}
	}

	switch cfg.Storage.Backend {
	case BackendFile:
		if cfg.Storage.TokenDir == "" {
			return fmt.Errorf("%w: token directory is empty", ErrInvalidStorageConfigs)
		}
	case BackendSQLite, BackendPostgres:
		if cfg.Storage.DSN == "" {
			return fmt.Errorf("%w: %s backend needs a DSN", ErrInvalidStorageConfigs, cfg.Storage.Backend)
		}
	case BackendRedis:
		if cfg.Storage.Redis.Address == "" {
			return fmt.Errorf("%w: redis backend needs an address", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidStorageConfigs, cfg.Storage.Backend)
	}

	if cfg.Adapter.TransportAddress == "" || cfg.Adapter.AuthURL == "" {
		return fmt.Errorf("%w: transport address and auth url are required", ErrInvalidAdapterConfigs)
	}
	if cfg.Adapter.DialTimeout <= 0 || cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: timeouts must be positive", ErrInvalidAdapterConfigs)
	}

	return nil
}
