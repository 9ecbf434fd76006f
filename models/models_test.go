package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountConfig_Clone(t *testing.T) {
	online := true
	orig := AccountConfig{Username: "alice", Password: "pw", Games: []int{440, 570}, Online: &online}

	c := orig.Clone()
	orig.Games[0] = 1
	*orig.Online = false

	assert.Equal(t, []int{440, 570}, c.Games)
	assert.True(t, c.WantsOnline())
}

func TestAccountConfig_WantsOnline(t *testing.T) {
	yes, no := true, false

	assert.False(t, AccountConfig{}.WantsOnline())
	assert.False(t, AccountConfig{Online: &no}.WantsOnline())
	assert.True(t, AccountConfig{Online: &yes}.WantsOnline())
}

func TestAccountConfig_GameIDs(t *testing.T) {
	assert.Equal(t, []uint64{}, AccountConfig{}.GameIDs())
	assert.Equal(t, []uint64{440, 570}, AccountConfig{Games: []int{440, -1, 570}}.GameIDs())
}

func TestNewGamesPlayedMessage_AlwaysCarriesList(t *testing.T) {
	raw, err := json.Marshal(NewGamesPlayedMessage(nil).Payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"game_ids":[]}`, string(raw))

	msg := NewGamesPlayedMessage([]uint64{570, 440})
	assert.Equal(t, MessageGamesPlayed, msg.Type)
	assert.Equal(t, GamesPlayed{GameIDs: []uint64{570, 440}}, msg.Payload)
}

func TestNewPresenceMessage(t *testing.T) {
	msg := NewPresenceMessage(PersonaOnline)
	assert.Equal(t, MessagePresence, msg.Type)
	assert.Equal(t, Presence{State: PersonaOnline}, msg.Payload)
	assert.Equal(t, "online", PersonaOnline.String())
	assert.Equal(t, "offline", PersonaOffline.String())
}

func TestNewAppBuildInfo(t *testing.T) {
	assert.Equal(t, AppBuildInfo{Version: "N/A", Date: "N/A", Commit: "N/A"}, NewAppBuildInfo("", "", ""))
	assert.Equal(t, AppBuildInfo{Version: "1", Date: "d", Commit: "c"}, NewAppBuildInfo("1", "d", "c"))
}

func TestPhase_Terminal(t *testing.T) {
	assert.True(t, PhaseStopped.Terminal())
	assert.True(t, PhaseFailed.Terminal())
	assert.False(t, PhaseActive.Terminal())
	assert.False(t, PhaseConnecting.Terminal())
}
