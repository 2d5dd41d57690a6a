package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type CompetitionSuite struct {
	suite.Suite
	now   time.Time
	start time.Time
}

func TestCompetitionSuite(t *testing.T) {
	suite.Run(t, new(CompetitionSuite))
}

func (s *CompetitionSuite) SetupTest() {
	s.now = time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC)
	s.start = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
}

func (s *CompetitionSuite) newCompetition() *Competition {
	comp, err := NewCompetition("Open 2025", "Brussels", s.start, s.now)
	s.Require().NoError(err)
	return comp
}

func (s *CompetitionSuite) TestNewCompetitionTrimsFields() {
	comp, err := NewCompetition("  Open 2025  ", "  Brussels ", s.start, s.now)
	s.Require().NoError(err)

	s.Equal("Open 2025", comp.Name)
	s.Equal("Brussels", comp.Location)
	s.Equal(s.start, comp.StartDate)
	s.NotEmpty(comp.ID)
}

func (s *CompetitionSuite) TestNewCompetitionRequiresNameAndLocation() {
	_, err := NewCompetition("  ", "Brussels", s.start, s.now)
	s.ErrorIs(err, ErrValidation)

	_, err = NewCompetition("Open 2025", "", s.start, s.now)
	s.ErrorIs(err, ErrValidation)
}

func (s *CompetitionSuite) TestRegisterAddsStampedRegistration() {
	comp := s.newCompetition()

	err := comp.Register("player-1", s.now)
	s.Require().NoError(err)

	s.Require().Len(comp.Registrations, 1)
	s.Equal(PlayerID("player-1"), comp.Registrations[0].PlayerID)
	s.Equal(comp.ID, comp.Registrations[0].CompetitionID)
	s.Equal(s.now.UTC(), comp.Registrations[0].RegisteredAt)
	s.True(comp.IsRegistered("player-1"))
}

func (s *CompetitionSuite) TestRegisterTwiceFails() {
	comp := s.newCompetition()
	s.Require().NoError(comp.Register("player-1", s.now))

	err := comp.Register("player-1", s.now)
	s.ErrorIs(err, ErrAlreadyRegistered)

	// The failed second call leaves the set untouched
	s.Len(comp.Registrations, 1)
	s.True(comp.IsRegistered("player-1"))
}

func (s *CompetitionSuite) TestRegisterRequiresPlayerID() {
	comp := s.newCompetition()
	s.ErrorIs(comp.Register("", s.now), ErrValidation)
}

func (s *CompetitionSuite) TestUnregisterRemovesRegistration() {
	comp := s.newCompetition()
	s.Require().NoError(comp.Register("player-1", s.now))
	s.Require().NoError(comp.Register("player-2", s.now))

	comp.Unregister("player-1", s.now)

	s.False(comp.IsRegistered("player-1"))
	s.True(comp.IsRegistered("player-2"))
	s.Len(comp.Registrations, 1)
}

func (s *CompetitionSuite) TestUnregisterAbsentPlayerIsNoop() {
	comp := s.newCompetition()
	s.Require().NoError(comp.Register("player-1", s.now))

	comp.Unregister("ghost", s.now)

	s.Len(comp.Registrations, 1)
}

func (s *CompetitionSuite) TestReplaceRegistrations() {
	comp := s.newCompetition()
	s.Require().NoError(comp.Register("player-1", s.now))

	regs := []Registration{
		{CompetitionID: comp.ID, PlayerID: "player-2", RegisteredAt: s.now},
		{CompetitionID: comp.ID, PlayerID: "player-3", RegisteredAt: s.now},
	}
	comp.ReplaceRegistrations(regs)

	s.False(comp.IsRegistered("player-1"))
	s.True(comp.IsRegistered("player-2"))
	s.True(comp.IsRegistered("player-3"))
}

func (s *CompetitionSuite) TestRenameAndChangeLocation() {
	comp := s.newCompetition()

	s.Require().NoError(comp.Rename("Winter Open", s.now))
	s.Equal("Winter Open", comp.Name)
	s.ErrorIs(comp.Rename(" ", s.now), ErrValidation)

	s.Require().NoError(comp.ChangeLocation("Antwerp", s.now))
	s.Equal("Antwerp", comp.Location)
	s.ErrorIs(comp.ChangeLocation("", s.now), ErrValidation)
}

func (s *CompetitionSuite) TestCloneIsIndependent() {
	comp := s.newCompetition()
	s.Require().NoError(comp.Register("player-1", s.now))

	clone := comp.Clone()
	s.Require().NoError(clone.Register("player-2", s.now))

	s.Len(comp.Registrations, 1)
	s.Len(clone.Registrations, 2)
}
