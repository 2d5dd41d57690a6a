package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// Demo data loaded by the seed command
type playerSeed struct {
	FirstName string
	LastName  string
	Email     string
	Rating    int
}

type gameSeed struct {
	WhiteEmail string
	BlackEmail string
	Result     string
	Moves      []string
}

var seedPlayers = []playerSeed{
	{"Mathis", "Vandesmal", "mathisvds932@gmail.com", 1171},
	{"Amedeo", "Mastrogiovanni", "amedeo.mastrogiovanni@gmail.com", 1231},
	{"Melvyn", "Bormans", "melvyn.bormans@gmail.com", 1215},
	{"Mathieu", "Franchimont", "mathieu.franchimont@gmail.com", 1183},
	{"Alice", "White", "alice@test.com", 1500},
	{"Bob", "Black", "bob@test.com", 1450},
}

const (
	seedCompetitionName     = "Open 2025"
	seedCompetitionLocation = "Bruxelles"
	seedCompetitionStart    = "2025-03-01T00:00:00Z"
)

var seedGames = []gameSeed{
	{"alice@test.com", "bob@test.com", "white_win", []string{"e4", "e5", "Nf3"}},
	{"mathisvds932@gmail.com", "melvyn.bormans@gmail.com", "black_win", []string{"d4", "Nf6", "c4"}},
	{"amedeo.mastrogiovanni@gmail.com", "mathieu.franchimont@gmail.com", "draw", []string{"c4", "e6", "Nc3"}},
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load demo players, a competition, and some played games",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed()
		},
	}
}

func runSeed() error {
	// Players, keyed by email so reruns reuse existing records
	var existing []Player
	if err := client.Get("/api/v1/players", &existing); err != nil {
		return err
	}

	playerByEmail := make(map[string]Player)
	for _, p := range existing {
		playerByEmail[strings.ToLower(p.Email)] = p
	}

	for _, seed := range seedPlayers {
		key := strings.ToLower(seed.Email)
		if _, ok := playerByEmail[key]; ok {
			continue
		}

		req := map[string]any{
			"first_name": seed.FirstName,
			"last_name":  seed.LastName,
			"email":      seed.Email,
			"rating":     seed.Rating,
		}
		var created Player
		if err := client.Post("/api/v1/players", req, &created); err != nil {
			return fmt.Errorf("create player %s: %w", seed.Email, err)
		}
		playerByEmail[key] = created
		fmt.Printf("Created player %s %s (%d)\n", created.FirstName, created.LastName, created.Rating)
	}

	// Competition, reused by name on reruns
	var comps []Competition
	if err := client.Get("/api/v1/competitions", &comps); err != nil {
		return err
	}

	var comp *Competition
	for i := range comps {
		if strings.EqualFold(comps[i].Name, seedCompetitionName) {
			comp = &comps[i]
			break
		}
	}
	if comp == nil {
		req := map[string]string{
			"name":       seedCompetitionName,
			"location":   seedCompetitionLocation,
			"start_date": seedCompetitionStart,
		}
		var created Competition
		if err := client.Post("/api/v1/competitions", req, &created); err != nil {
			return fmt.Errorf("create competition: %w", err)
		}
		comp = &created
		fmt.Printf("Created competition %s\n", comp.Name)
	}

	registered := make(map[string]bool)
	for _, r := range comp.Registrations {
		registered[r.PlayerID] = true
	}

	for _, p := range playerByEmail {
		if registered[p.ID] {
			continue
		}
		req := map[string]string{"player_id": p.ID}
		if err := client.Post("/api/v1/competitions/"+comp.ID+"/registrations", req, nil); err != nil {
			fmt.Printf("Skip register %s: %s\n", p.Email, err)
			continue
		}
		fmt.Printf("Registered %s to %s\n", p.FirstName, comp.Name)
	}

	// Games: create, record the opening moves, then the result
	var games []Game
	if err := client.Get("/api/v1/competitions/"+comp.ID+"/games", &games); err != nil {
		return err
	}

	for _, seed := range seedGames {
		white, okW := playerByEmail[seed.WhiteEmail]
		black, okB := playerByEmail[seed.BlackEmail]
		if !okW || !okB {
			fmt.Printf("Skip game: missing player for %s vs %s\n", seed.WhiteEmail, seed.BlackEmail)
			continue
		}

		var game *Game
		for i := range games {
			if games[i].WhiteID == white.ID && games[i].BlackID == black.ID {
				game = &games[i]
				break
			}
		}
		if game == nil {
			req := map[string]string{
				"competition_id": comp.ID,
				"white_id":       white.ID,
				"black_id":       black.ID,
			}
			var created Game
			if err := client.Post("/api/v1/games", req, &created); err != nil {
				fmt.Printf("Skip game %s vs %s: %s\n", white.Email, black.Email, err)
				continue
			}
			game = &created
			fmt.Printf("Created game %s vs %s\n", white.LastName, black.LastName)
		}

		if game.Result != "not_played" {
			fmt.Printf("Game already finished: %s vs %s\n", white.LastName, black.LastName)
			continue
		}

		for i, notation := range seed.Moves {
			req := map[string]any{"ply": i + 1, "notation": notation}
			if err := client.Post("/api/v1/games/"+game.ID+"/moves", req, nil); err != nil {
				return fmt.Errorf("add move to %s: %w", game.ID, err)
			}
		}
		if err := client.Post("/api/v1/games/"+game.ID+"/result", map[string]string{"result": seed.Result}, nil); err != nil {
			return fmt.Errorf("set result on %s: %w", game.ID, err)
		}
		fmt.Printf("Recorded game %s vs %s: %s\n", white.LastName, black.LastName, seed.Result)
	}

	// Leaderboard preview
	var leaderboard []Player
	if err := client.Get("/api/v1/players/leaderboard", &leaderboard); err != nil {
		return err
	}

	fmt.Println("\nLeaderboard (Top Elo):")
	for i, p := range leaderboard {
		if i >= 10 {
			break
		}
		fmt.Printf("%-15s %-10s Elo %d\n", p.LastName, p.FirstName, p.Rating)
	}

	fmt.Println("\nSeeding complete.")
	return nil
}
