package redis

import (
	"fmt"

	"github.com/mcoot/chessfed-go/internal/model"
)

// Key prefixes for all stored types
const (
	keyPrefix = "chessfed"

	playersIndexKey      = keyPrefix + ":players"
	competitionsIndexKey = keyPrefix + ":competitions"
)

func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// emailIndexKey maps a normalized email to the owning player id
func emailIndexKey(email string) string {
	return fmt.Sprintf("%s:player_email:%s", keyPrefix, model.NormalizeEmail(email))
}

func competitionKey(id model.CompetitionID) string {
	return fmt.Sprintf("%s:competition:%s", keyPrefix, id)
}

func gameKey(id model.GameID) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, id)
}

// competitionGamesKey is the set of game keys within a competition
func competitionGamesKey(id model.CompetitionID) string {
	return fmt.Sprintf("%s:competition_games:%s", keyPrefix, id)
}
