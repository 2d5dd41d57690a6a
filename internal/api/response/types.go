package response

import (
	"time"

	"github.com/mcoot/chessfed-go/internal/model"
)

// Player represents a player in API responses
type Player struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:        string(p.ID),
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
		Rating:    p.Rating,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// PlayersFromModel converts a slice of players
func PlayersFromModel(players []*model.Player) []Player {
	out := make([]Player, len(players))
	for i, p := range players {
		out[i] = PlayerFromModel(p)
	}
	return out
}

// Registration represents a competition registration
type Registration struct {
	PlayerID     string    `json:"player_id"`
	RegisteredAt time.Time `json:"registered_at"`
}

// Competition represents a competition in API responses
type Competition struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Location      string         `json:"location"`
	StartDate     time.Time      `json:"start_date"`
	Registrations []Registration `json:"registrations"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// CompetitionFromModel converts a model.Competition
func CompetitionFromModel(c *model.Competition) Competition {
	regs := make([]Registration, len(c.Registrations))
	for i, r := range c.Registrations {
		regs[i] = Registration{
			PlayerID:     string(r.PlayerID),
			RegisteredAt: r.RegisteredAt,
		}
	}
	return Competition{
		ID:            string(c.ID),
		Name:          c.Name,
		Location:      c.Location,
		StartDate:     c.StartDate,
		Registrations: regs,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

// CompetitionsFromModel converts a slice of competitions
func CompetitionsFromModel(comps []*model.Competition) []Competition {
	out := make([]Competition, len(comps))
	for i, c := range comps {
		out[i] = CompetitionFromModel(c)
	}
	return out
}

// Move represents a recorded move
type Move struct {
	Ply      int       `json:"ply"`
	Notation string    `json:"notation"`
	PlayedAt time.Time `json:"played_at"`
}

// Game represents a game in API responses
type Game struct {
	ID            string    `json:"id"`
	CompetitionID string    `json:"competition_id"`
	WhiteID       string    `json:"white_id"`
	BlackID       string    `json:"black_id"`
	Result        string    `json:"result"`
	Moves         []Move    `json:"moves"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// GameFromModel converts a model.Game
func GameFromModel(g *model.Game) Game {
	moves := make([]Move, len(g.Moves))
	for i, m := range g.Moves {
		moves[i] = Move{
			Ply:      m.Ply,
			Notation: m.Notation,
			PlayedAt: m.PlayedAt,
		}
	}
	return Game{
		ID:            string(g.ID),
		CompetitionID: string(g.CompetitionID),
		WhiteID:       string(g.WhiteID),
		BlackID:       string(g.BlackID),
		Result:        string(g.Result),
		Moves:         moves,
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}
}

// GamesFromModel converts a slice of games
func GamesFromModel(games []*model.Game) []Game {
	out := make([]Game, len(games))
	for i, g := range games {
		out[i] = GameFromModel(g)
	}
	return out
}
