package position

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/davidgomes/haxball-clone/internal/dependencies/mocks"
	"github.com/davidgomes/haxball-clone/internal/model"
	"github.com/davidgomes/haxball-clone/internal/storage/memory"
	"github.com/davidgomes/haxball-clone/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, model.DefaultField(), s.clock, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) seedPlayer() *model.Player {
	player := &model.Player{
		ID:        "player-1",
		Name:      "Alice",
		X:         100,
		Y:         300,
		Team:      model.TeamRed,
		IsOnline:  true,
		CreatedAt: s.clock.CurrentTime,
		UpdatedAt: s.clock.CurrentTime,
	}
	_ = s.storage.SavePlayer(s.ctx, player)
	return player
}

// UpdatePlayerPosition tests

func (s *ServiceSuite) TestUpdatePlayerPosition() {
	s.seedPlayer()
	s.clock.Advance(time.Second)

	player, err := s.service.UpdatePlayerPosition(s.ctx, "player-1", 250, 180, 120, -60)
	s.Require().NoError(err)

	s.Equal(250.0, player.X)
	s.Equal(180.0, player.Y)
	s.Equal(120.0, player.VelocityX)
	s.Equal(-60.0, player.VelocityY)
	s.Equal(s.clock.CurrentTime, player.UpdatedAt)
}

func (s *ServiceSuite) TestUpdatePlayerPositionNotFound() {
	_, err := s.service.UpdatePlayerPosition(s.ctx, "nonexistent", 100, 100, 0, 0)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ServiceSuite) TestUpdatePlayerPositionClampsToField() {
	s.seedPlayer()

	player, err := s.service.UpdatePlayerPosition(s.ctx, "player-1", 5000, -200, 0, 0)
	s.Require().NoError(err)

	s.Equal(785.0, player.X, "clamped to width minus player radius")
	s.Equal(15.0, player.Y, "clamped to player radius")
}

func (s *ServiceSuite) TestUpdatePlayerPositionKeepsVelocityUnclamped() {
	s.seedPlayer()

	player, err := s.service.UpdatePlayerPosition(s.ctx, "player-1", 400, 300, 99999, -99999)
	s.Require().NoError(err)

	s.Equal(99999.0, player.VelocityX)
	s.Equal(-99999.0, player.VelocityY)
}

func (s *ServiceSuite) TestUpdatePlayerPositionPreservesOtherFields() {
	seeded := s.seedPlayer()
	s.clock.Advance(time.Minute)

	player, err := s.service.UpdatePlayerPosition(s.ctx, "player-1", 400, 300, 1, 1)
	s.Require().NoError(err)

	s.Equal(seeded.Name, player.Name)
	s.Equal(seeded.Team, player.Team)
	s.Equal(seeded.IsOnline, player.IsOnline)
	s.Equal(seeded.CreatedAt, player.CreatedAt)
}

// MovePlayer tests

func (s *ServiceSuite) TestMovePlayerIntegratesVelocity() {
	s.seedPlayer()

	// Full right for a tenth of a second at 200 px/s
	player, err := s.service.MovePlayer(s.ctx, "player-1", 1, 0, 0.1)
	s.Require().NoError(err)

	s.InDelta(120.0, player.X, 1e-9)
	s.Equal(300.0, player.Y)
	s.Equal(200.0, player.VelocityX)
	s.Equal(0.0, player.VelocityY)
}

func (s *ServiceSuite) TestMovePlayerClampsAtWall() {
	s.seedPlayer()

	// Moving hard left from the spawn point runs into the wall
	player, err := s.service.MovePlayer(s.ctx, "player-1", -1, 0, 1.0)
	s.Require().NoError(err)

	s.Equal(15.0, player.X)
}

func (s *ServiceSuite) TestMovePlayerRejectsOutOfRangeDirection() {
	s.seedPlayer()

	_, err := s.service.MovePlayer(s.ctx, "player-1", 1.5, 0, 0.1)
	s.ErrorIs(err, model.ErrInvalidDirection)

	_, err = s.service.MovePlayer(s.ctx, "player-1", 0, -2, 0.1)
	s.ErrorIs(err, model.ErrInvalidDirection)
}

func (s *ServiceSuite) TestMovePlayerNotFound() {
	_, err := s.service.MovePlayer(s.ctx, "nonexistent", 1, 0, 0.1)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

// UpdateBall tests

func (s *ServiceSuite) TestUpdateBallCreatesSingleton() {
	ball, err := s.service.UpdateBall(s.ctx, 420, 280, 50, -25)
	s.Require().NoError(err)

	s.Equal(420.0, ball.X)
	s.Equal(280.0, ball.Y)
	s.Equal(50.0, ball.VelocityX)
	s.Equal(-25.0, ball.VelocityY)

	stored, err := s.storage.GetBall(s.ctx)
	s.Require().NoError(err)
	s.Equal(420.0, stored.X)
}

func (s *ServiceSuite) TestUpdateBallOverwritesInPlace() {
	_, _ = s.service.UpdateBall(s.ctx, 400, 300, 0, 0)
	s.clock.Advance(time.Second)

	ball, err := s.service.UpdateBall(s.ctx, 100, 100, 5, 5)
	s.Require().NoError(err)
	s.Equal(100.0, ball.X)
	s.Equal(s.clock.CurrentTime, ball.UpdatedAt)
}

func (s *ServiceSuite) TestUpdateBallAcceptsAnyNumericInput() {
	// Out-of-field ball positions are a caller policy decision
	ball, err := s.service.UpdateBall(s.ctx, -500, 10000, 1e6, -1e6)
	s.Require().NoError(err)
	s.Equal(-500.0, ball.X)
	s.Equal(10000.0, ball.Y)
}

// StepBall tests

func (s *ServiceSuite) TestStepBallAdvancesPosition() {
	_, _ = s.service.UpdateBall(s.ctx, 400, 300, 100, -50)

	ball, err := s.service.StepBall(s.ctx, 0.5)
	s.Require().NoError(err)

	s.InDelta(450.0, ball.X, 1e-9)
	s.InDelta(275.0, ball.Y, 1e-9)
	s.Equal(100.0, ball.VelocityX)
}

func (s *ServiceSuite) TestStepBallBouncesOffRightWall() {
	_, _ = s.service.UpdateBall(s.ctx, 780, 300, 100, 0)

	ball, err := s.service.StepBall(s.ctx, 1.0)
	s.Require().NoError(err)

	s.Equal(792.0, ball.X, "clamped to width minus ball radius")
	s.InDelta(-80.0, ball.VelocityX, 1e-9, "reflected and scaled by restitution")
}

func (s *ServiceSuite) TestStepBallBouncesOffTopWall() {
	_, _ = s.service.UpdateBall(s.ctx, 400, 12, 0, -100)

	ball, err := s.service.StepBall(s.ctx, 0.5)
	s.Require().NoError(err)

	s.Equal(8.0, ball.Y)
	s.InDelta(80.0, ball.VelocityY, 1e-9)
}

func (s *ServiceSuite) TestStepBallMaterializesMissingBall() {
	ball, err := s.service.StepBall(s.ctx, 0.1)
	s.Require().NoError(err)

	s.Equal(400.0, ball.X)
	s.Equal(300.0, ball.Y)
}
