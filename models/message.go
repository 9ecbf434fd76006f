// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MessageType names an outbound command sent through the transport.
type MessageType string

const (
	MessageLogOn       MessageType = "logon"
	MessagePresence    MessageType = "presence"
	MessageGamesPlayed MessageType = "games_played"
)

// Message is an outbound command. Payload is one of [LogOnDetails],
// [Presence] or [GamesPlayed].
type Message struct {
	Type    MessageType `json:"type"`
	Payload any         `json:"payload"`
}

// LogOnDetails carries the account name and the token obtained from the
// credential exchange.
type LogOnDetails struct {
	Username               string `json:"username"`
	AccessToken            string `json:"access_token"`
	ShouldRememberPassword bool   `json:"should_remember_password"`
}

// PersonaState is the presence shown to other users.
type PersonaState int

const (
	PersonaOffline PersonaState = 0
	PersonaOnline  PersonaState = 1
)

func (p PersonaState) String() string {
	if p == PersonaOnline {
		return "online"
	}
	return "offline"
}

// Presence sets the persona state of the logged on account.
type Presence struct {
	State PersonaState `json:"state"`
}

// GamesPlayed reports the games the account is playing. An empty GameIDs
// clears the activity.
type GamesPlayed struct {
	GameIDs []uint64 `json:"game_ids"`
}

// NewLogOnMessage builds the logon command.
func NewLogOnMessage(details LogOnDetails) Message {
	return Message{Type: MessageLogOn, Payload: details}
}

// NewPresenceMessage builds the persona state command.
func NewPresenceMessage(state PersonaState) Message {
	return Message{Type: MessagePresence, Payload: Presence{State: state}}
}

// NewGamesPlayedMessage builds the games played command. A nil ids slice is
// replaced by an empty one so the command always carries a list.
func NewGamesPlayedMessage(ids []uint64) Message {
	if ids == nil {
		ids = []uint64{}
	}
	return Message{Type: MessageGamesPlayed, Payload: GamesPlayed{GameIDs: ids}}
}
