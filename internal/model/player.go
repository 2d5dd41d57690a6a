package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PlayerID uniquely identifies a player across the system
type PlayerID string

// DefaultRating is the Elo rating assigned to newly created players
const DefaultRating = 1200

// Player represents a federation member who can enter competitions
type Player struct {
	ID        PlayerID
	FirstName string
	LastName  string
	Email     string
	Rating    int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewPlayer constructs a player with a fresh id, validating and
// trimming all identity fields. Rating must be >= 0.
func NewPlayer(firstName, lastName, email string, rating int, now time.Time) (*Player, error) {
	p := &Player{
		ID:        PlayerID(uuid.NewString()),
		Rating:    rating,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if rating < 0 {
		return nil, fmt.Errorf("%w: rating must be >= 0", ErrValidation)
	}
	if err := p.setIdentity(firstName, lastName, email); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateIdentity replaces the player's name and email, applying the
// same validation as construction. Email uniqueness is enforced by the
// player service, not here.
func (p *Player) UpdateIdentity(firstName, lastName, email string, now time.Time) error {
	if err := p.setIdentity(firstName, lastName, email); err != nil {
		return err
	}
	p.UpdatedAt = now
	return nil
}

// SetRating records a new rating. Ratings never go negative.
func (p *Player) SetRating(rating int, now time.Time) error {
	if rating < 0 {
		return fmt.Errorf("%w: rating must be >= 0", ErrValidation)
	}
	p.Rating = rating
	p.UpdatedAt = now
	return nil
}

// FullName returns the player's display name
func (p *Player) FullName() string {
	return p.FirstName + " " + p.LastName
}

// Clone returns a deep copy, so callers never share a loaded instance
func (p *Player) Clone() *Player {
	cp := *p
	return &cp
}

func (p *Player) setIdentity(firstName, lastName, email string) error {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	email = strings.TrimSpace(email)

	if firstName == "" {
		return fmt.Errorf("%w: first name is required", ErrValidation)
	}
	if lastName == "" {
		return fmt.Errorf("%w: last name is required", ErrValidation)
	}
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}

	p.FirstName = firstName
	p.LastName = lastName
	p.Email = email
	return nil
}

// NormalizeEmail lowercases an email for case-insensitive comparison
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
