package scoring

import (
	"context"
	"sync"
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
	s.service = New(s.storage, model.DefaultField(), s.clock, &sync.RWMutex{}, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestScoreGoalIncrementsRedOnly() {
	_ = s.storage.SaveGameState(s.ctx, &model.GameState{RedScore: 1, BlueScore: 2, MatchTime: 90, IsActive: true})

	state, err := s.service.ScoreGoal(s.ctx, model.TeamRed)
	s.Require().NoError(err)

	s.Equal(2, state.RedScore)
	s.Equal(2, state.BlueScore)
	s.Equal(90, state.MatchTime, "match time is untouched by goals")
}

func (s *ServiceSuite) TestScoreGoalIncrementsBlueOnly() {
	_ = s.storage.SaveGameState(s.ctx, &model.GameState{RedScore: 1, BlueScore: 2, IsActive: true})

	state, err := s.service.ScoreGoal(s.ctx, model.TeamBlue)
	s.Require().NoError(err)

	s.Equal(1, state.RedScore)
	s.Equal(3, state.BlueScore)
}

func (s *ServiceSuite) TestScoreGoalMaterializesGameState() {
	state, err := s.service.ScoreGoal(s.ctx, model.TeamBlue)
	s.Require().NoError(err)

	s.Equal(0, state.RedScore)
	s.Equal(1, state.BlueScore)
	s.Equal(0, state.MatchTime)
	s.True(state.IsActive)
}

func (s *ServiceSuite) TestScoreGoalResetsBall() {
	_ = s.storage.SaveBall(s.ctx, &model.Ball{X: 750, Y: 280, VelocityX: 300, VelocityY: -40})

	_, err := s.service.ScoreGoal(s.ctx, model.TeamRed)
	s.Require().NoError(err)

	ball, err := s.storage.GetBall(s.ctx)
	s.Require().NoError(err)
	s.Equal(400.0, ball.X)
	s.Equal(300.0, ball.Y)
	s.Equal(0.0, ball.VelocityX)
	s.Equal(0.0, ball.VelocityY)
}

func (s *ServiceSuite) TestScoreGoalResetsBallEvenWhenNoneExists() {
	_, err := s.service.ScoreGoal(s.ctx, model.TeamRed)
	s.Require().NoError(err)

	ball, err := s.storage.GetBall(s.ctx)
	s.Require().NoError(err)
	s.Equal(400.0, ball.X)
	s.Equal(300.0, ball.Y)
}

func (s *ServiceSuite) TestScoreGoalPreservesCreatedAt() {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	_ = s.storage.SaveGameState(s.ctx, &model.GameState{IsActive: true, CreatedAt: created})
	s.clock.Advance(time.Hour)

	state, err := s.service.ScoreGoal(s.ctx, model.TeamRed)
	s.Require().NoError(err)

	s.Equal(created, state.CreatedAt)
	s.Equal(s.clock.CurrentTime, state.UpdatedAt)
}

func (s *ServiceSuite) TestScoreGoalRejectsUnknownTeam() {
	_, err := s.service.ScoreGoal(s.ctx, model.Team("green"))
	s.ErrorIs(err, model.ErrInvalidTeam)

	_, err = s.storage.GetGameState(s.ctx)
	s.ErrorIs(err, model.ErrGameStateNotFound, "nothing is written on invalid input")
}

func (s *ServiceSuite) TestRepeatedGoalsIncrementByExactlyOne() {
	for i := 0; i < 5; i++ {
		_, err := s.service.ScoreGoal(s.ctx, model.TeamRed)
		s.Require().NoError(err)
	}

	state, err := s.storage.GetGameState(s.ctx)
	s.Require().NoError(err)
	s.Equal(5, state.RedScore)
	s.Equal(0, state.BlueScore)
}
