package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/davidgomes/haxball-clone/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

// Player tests

func (s *StorageSuite) TestSaveAndGetPlayer() {
	player := &model.Player{
		ID:       "player-1",
		Name:     "Alice",
		X:        100,
		Y:        300,
		Team:     model.TeamRed,
		IsOnline: true,
	}

	err := s.storage.SavePlayer(s.ctx, player)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(player.ID, retrieved.ID)
	s.Equal(player.Name, retrieved.Name)
	s.Equal(player.Team, retrieved.Team)
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestGetPlayerReturnsCopy() {
	player := &model.Player{ID: "player-1", Name: "Alice", X: 100}
	_ = s.storage.SavePlayer(s.ctx, player)

	first, _ := s.storage.GetPlayer(s.ctx, "player-1")
	first.X = 999

	second, _ := s.storage.GetPlayer(s.ctx, "player-1")
	s.Equal(100.0, second.X)
}

func (s *StorageSuite) TestListPlayersOnlineOnly() {
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	_ = s.storage.SavePlayer(s.ctx, &model.Player{ID: "a", IsOnline: true, CreatedAt: base})
	_ = s.storage.SavePlayer(s.ctx, &model.Player{ID: "b", IsOnline: false, CreatedAt: base.Add(time.Second)})
	_ = s.storage.SavePlayer(s.ctx, &model.Player{ID: "c", IsOnline: true, CreatedAt: base.Add(2 * time.Second)})

	online, err := s.storage.ListPlayers(s.ctx, true)
	s.Require().NoError(err)
	s.Len(online, 2)
	s.Equal(model.PlayerID("a"), online[0].ID)
	s.Equal(model.PlayerID("c"), online[1].ID)

	all, err := s.storage.ListPlayers(s.ctx, false)
	s.Require().NoError(err)
	s.Len(all, 3)
}

func (s *StorageSuite) TestListPlayersStableOrder() {
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	// Same join time, order falls back to id
	_ = s.storage.SavePlayer(s.ctx, &model.Player{ID: "z", IsOnline: true, CreatedAt: base})
	_ = s.storage.SavePlayer(s.ctx, &model.Player{ID: "a", IsOnline: true, CreatedAt: base})

	players, err := s.storage.ListPlayers(s.ctx, true)
	s.Require().NoError(err)
	s.Equal(model.PlayerID("a"), players[0].ID)
	s.Equal(model.PlayerID("z"), players[1].ID)
}

func (s *StorageSuite) TestSavePlayerOverwrites() {
	_ = s.storage.SavePlayer(s.ctx, &model.Player{ID: "player-1", X: 100, Y: 300})
	_ = s.storage.SavePlayer(s.ctx, &model.Player{ID: "player-1", X: 200, Y: 400})

	retrieved, err := s.storage.GetPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(200.0, retrieved.X)
	s.Equal(400.0, retrieved.Y)
}

// Ball tests

func (s *StorageSuite) TestGetBallNotFound() {
	_, err := s.storage.GetBall(s.ctx)
	s.ErrorIs(err, model.ErrBallNotFound)
}

func (s *StorageSuite) TestSaveAndGetBall() {
	ball := &model.Ball{X: 400, Y: 300, VelocityX: 10, VelocityY: -5}

	err := s.storage.SaveBall(s.ctx, ball)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetBall(s.ctx)
	s.Require().NoError(err)
	s.Equal(400.0, retrieved.X)
	s.Equal(10.0, retrieved.VelocityX)
}

func (s *StorageSuite) TestSaveBallOverwritesSingleton() {
	_ = s.storage.SaveBall(s.ctx, &model.Ball{X: 400, Y: 300})
	_ = s.storage.SaveBall(s.ctx, &model.Ball{X: 100, Y: 100})

	retrieved, err := s.storage.GetBall(s.ctx)
	s.Require().NoError(err)
	s.Equal(100.0, retrieved.X)
}

// Game state tests

func (s *StorageSuite) TestGetGameStateNotFound() {
	_, err := s.storage.GetGameState(s.ctx)
	s.ErrorIs(err, model.ErrGameStateNotFound)
}

func (s *StorageSuite) TestSaveAndGetGameState() {
	state := &model.GameState{RedScore: 2, BlueScore: 1, IsActive: true}

	err := s.storage.SaveGameState(s.ctx, state)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetGameState(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, retrieved.RedScore)
	s.Equal(1, retrieved.BlueScore)
	s.True(retrieved.IsActive)
}
