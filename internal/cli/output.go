package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case []Player:
		o.printPlayers(v)
	case Competition:
		o.printCompetition(v)
	case []Competition:
		o.printCompetitions(v)
	case Game:
		o.printGame(v)
	case []Game:
		o.printGames(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Registration response type
type Registration struct {
	PlayerID     string    `json:"player_id"`
	RegisteredAt time.Time `json:"registered_at"`
}

// Competition response type
type Competition struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Location      string         `json:"location"`
	StartDate     time.Time      `json:"start_date"`
	Registrations []Registration `json:"registrations"`
}

// Move response type
type Move struct {
	Ply      int       `json:"ply"`
	Notation string    `json:"notation"`
	PlayedAt time.Time `json:"played_at"`
}

// Game response type
type Game struct {
	ID            string `json:"id"`
	CompetitionID string `json:"competition_id"`
	WhiteID       string `json:"white_id"`
	BlackID       string `json:"black_id"`
	Result        string `json:"result"`
	Moves         []Move `json:"moves"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("Player: %s %s (%s)\n", p.FirstName, p.LastName, p.ID)
	fmt.Printf("Email: %s\n", p.Email)
	fmt.Printf("Rating: %d\n", p.Rating)
}

func (o *Output) printPlayers(players []Player) {
	fmt.Printf("Players (%d):\n", len(players))
	for _, p := range players {
		fmt.Printf("  %4d  %s %s <%s>  (%s)\n", p.Rating, p.FirstName, p.LastName, p.Email, p.ID)
	}
}

func (o *Output) printCompetition(c Competition) {
	fmt.Printf("Competition: %s (%s)\n", c.Name, c.ID)
	fmt.Printf("Location: %s\n", c.Location)
	fmt.Printf("Starts: %s\n", c.StartDate.Format("2006-01-02"))
	fmt.Printf("Registered players (%d):\n", len(c.Registrations))
	for _, r := range c.Registrations {
		fmt.Printf("  - %s (since %s)\n", r.PlayerID, r.RegisteredAt.Format("2006-01-02"))
	}
}

func (o *Output) printCompetitions(comps []Competition) {
	fmt.Printf("Competitions (%d):\n", len(comps))
	for _, c := range comps {
		fmt.Printf("  %s  %s, %s  (%d registered)  (%s)\n",
			c.StartDate.Format("2006-01-02"), c.Name, c.Location, len(c.Registrations), c.ID)
	}
}

func (o *Output) printGame(g Game) {
	fmt.Printf("Game: %s\n", g.ID)
	fmt.Printf("Competition: %s\n", g.CompetitionID)
	fmt.Printf("White: %s\n", g.WhiteID)
	fmt.Printf("Black: %s\n", g.BlackID)
	fmt.Printf("Result: %s\n", g.Result)
	if len(g.Moves) > 0 {
		fmt.Printf("Moves (%d):\n", len(g.Moves))
		for _, m := range g.Moves {
			fmt.Printf("  %3d. %s\n", m.Ply, m.Notation)
		}
	}
}

func (o *Output) printGames(games []Game) {
	fmt.Printf("Games (%d):\n", len(games))
	for _, g := range games {
		fmt.Printf("  %s vs %s - %s (%d moves)  (%s)\n",
			g.WhiteID, g.BlackID, g.Result, len(g.Moves), g.ID)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
