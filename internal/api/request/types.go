package request

// CreatePlayerRequest is the request body for creating a player.
// Rating is optional; when omitted the default rating is used.
type CreatePlayerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Rating    *int   `json:"rating,omitempty"`
}

// UpdatePlayerRequest is the request body for updating a player
type UpdatePlayerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// CorrectRatingRequest is the request body for a rating correction
type CorrectRatingRequest struct {
	Rating int `json:"rating"`
}

// CreateCompetitionRequest is the request body for creating a competition
type CreateCompetitionRequest struct {
	Name      string `json:"name"`
	Location  string `json:"location"`
	StartDate string `json:"start_date"`
}

// UpdateCompetitionRequest is the request body for updating a competition
type UpdateCompetitionRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

// RegisterPlayerRequest is the request body for registering a player
// for a competition
type RegisterPlayerRequest struct {
	PlayerID string `json:"player_id"`
}

// CreateGameRequest is the request body for creating a game
type CreateGameRequest struct {
	CompetitionID string `json:"competition_id"`
	WhiteID       string `json:"white_id"`
	BlackID       string `json:"black_id"`
}

// AddMoveRequest is the request body for recording a move
type AddMoveRequest struct {
	Ply      int    `json:"ply"`
	Notation string `json:"notation"`
}

// SetResultRequest is the request body for recording a game result
type SetResultRequest struct {
	Result string `json:"result"`
}
