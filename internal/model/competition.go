package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CompetitionID uniquely identifies a competition
type CompetitionID string

// Registration records that a player entered a competition. It is an
// immutable value owned by the competition.
type Registration struct {
	CompetitionID CompetitionID `json:"competition_id"`
	PlayerID      PlayerID      `json:"player_id"`
	RegisteredAt  time.Time     `json:"registered_at"`
}

// Competition is a chess event organized by the federation. It
// exclusively owns its registration set; players are referenced by id.
type Competition struct {
	ID            CompetitionID
	Name          string
	Location      string
	StartDate     time.Time
	Registrations []Registration
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewCompetition constructs a competition with a fresh id
func NewCompetition(name, location string, startDate time.Time, now time.Time) (*Competition, error) {
	name, err := requireText(name, "name")
	if err != nil {
		return nil, err
	}
	location, err = requireText(location, "location")
	if err != nil {
		return nil, err
	}

	return &Competition{
		ID:        CompetitionID(uuid.NewString()),
		Name:      name,
		Location:  location,
		StartDate: startDate,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Rename replaces the competition name
func (c *Competition) Rename(name string, now time.Time) error {
	name, err := requireText(name, "name")
	if err != nil {
		return err
	}
	c.Name = name
	c.UpdatedAt = now
	return nil
}

// ChangeLocation replaces the competition location
func (c *Competition) ChangeLocation(location string, now time.Time) error {
	location, err := requireText(location, "location")
	if err != nil {
		return err
	}
	c.Location = location
	c.UpdatedAt = now
	return nil
}

// Register enrolls a player, stamped with the given UTC time. A player
// id appears at most once among a competition's registrations.
func (c *Competition) Register(playerID PlayerID, now time.Time) error {
	if playerID == "" {
		return fmt.Errorf("%w: player id is required", ErrValidation)
	}
	if c.IsRegistered(playerID) {
		return ErrAlreadyRegistered
	}

	c.Registrations = append(c.Registrations, Registration{
		CompetitionID: c.ID,
		PlayerID:      playerID,
		RegisteredAt:  now.UTC(),
	})
	c.UpdatedAt = now
	return nil
}

// Unregister removes a player's registration. Removing an absent
// player is a no-op, not an error.
func (c *Competition) Unregister(playerID PlayerID, now time.Time) {
	for i, r := range c.Registrations {
		if r.PlayerID == playerID {
			c.Registrations = append(c.Registrations[:i], c.Registrations[i+1:]...)
			c.UpdatedAt = now
			return
		}
	}
}

// IsRegistered reports whether the player is enrolled
func (c *Competition) IsRegistered(playerID PlayerID) bool {
	for _, r := range c.Registrations {
		if r.PlayerID == playerID {
			return true
		}
	}
	return false
}

// ReplaceRegistrations swaps in the full registration set when loading
// from storage. The incoming set is trusted to be duplicate-free.
// The redis backend takes the equivalent trusted path by unmarshalling
// the persisted JSON directly into the struct.
func (c *Competition) ReplaceRegistrations(regs []Registration) {
	c.Registrations = regs
}

// Clone returns a deep copy, so callers never share a loaded instance
func (c *Competition) Clone() *Competition {
	cp := *c
	if c.Registrations != nil {
		cp.Registrations = make([]Registration, len(c.Registrations))
		copy(cp.Registrations, c.Registrations)
	}
	return &cp
}

func requireText(value, field string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%w: %s is required", ErrValidation, field)
	}
	return value, nil
}
