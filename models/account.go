// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "slices"

// AccountConfig describes one account kept alive by a session.
//
// Values are produced by the config package and handed to exactly one
// session, which keeps its own copy (see [AccountConfig.Clone]).
type AccountConfig struct {
	// Username is the login name used for the credential exchange and as the
	// key for stored refresh tokens.
	Username string `json:"username" toml:"username"`

	// Password is the account secret.
	Password string `json:"password" toml:"password"`

	// Games is the ordered list of game identifiers reported as "playing"
	// once the account is active. An empty list clears the activity.
	Games []int `json:"games" toml:"games"`

	// Online selects the presence announced after logon. Nil means offline.
	Online *bool `json:"online,omitempty" toml:"online"`
}

// Clone returns a deep copy of the account so that later changes made by the
// caller are not observed by a running session.
func (a AccountConfig) Clone() AccountConfig {
	c := a
	c.Games = slices.Clone(a.Games)
	if a.Online != nil {
		online := *a.Online
		c.Online = &online
	}
	return c
}

// WantsOnline reports whether the account should appear online.
func (a AccountConfig) WantsOnline() bool {
	return a.Online != nil && *a.Online
}

// GameIDs converts the configured games to wire identifiers, keeping the
// configured order. The result is never nil.
func (a AccountConfig) GameIDs() []uint64 {
	ids := make([]uint64, 0, len(a.Games))
	for _, g := range a.Games {
		if g < 0 {
			continue
		}
		ids = append(ids, uint64(g))
	}
	return ids
}
