package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/davidgomes/haxball-clone/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
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
	s.True(retrieved.IsOnline)
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestSavePlayerHasNoTTL() {
	player := &model.Player{ID: "player-1", Name: "Alice", IsOnline: false}
	_ = s.storage.SavePlayer(s.ctx, player)

	// Offline players are retained forever for match history
	s.Equal(time.Duration(0), s.mini.TTL(playerKey("player-1")))
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

func (s *StorageSuite) TestListPlayersEmpty() {
	players, err := s.storage.ListPlayers(s.ctx, true)
	s.Require().NoError(err)
	s.Empty(players)
}

// Ball tests

func (s *StorageSuite) TestGetBallNotFound() {
	_, err := s.storage.GetBall(s.ctx)
	s.ErrorIs(err, model.ErrBallNotFound)
}

func (s *StorageSuite) TestSaveAndGetBall() {
	ball := &model.Ball{X: 400, Y: 300, VelocityX: 12.5, VelocityY: -3}

	err := s.storage.SaveBall(s.ctx, ball)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetBall(s.ctx)
	s.Require().NoError(err)
	s.Equal(400.0, retrieved.X)
	s.Equal(12.5, retrieved.VelocityX)
}

func (s *StorageSuite) TestBallIsSingleton() {
	_ = s.storage.SaveBall(s.ctx, &model.Ball{X: 400, Y: 300})
	_ = s.storage.SaveBall(s.ctx, &model.Ball{X: 200, Y: 100})

	// Only one key exists regardless of how many saves happened
	s.Len(s.mini.Keys(), 1)

	retrieved, err := s.storage.GetBall(s.ctx)
	s.Require().NoError(err)
	s.Equal(200.0, retrieved.X)
}

// Game state tests

func (s *StorageSuite) TestGetGameStateNotFound() {
	_, err := s.storage.GetGameState(s.ctx)
	s.ErrorIs(err, model.ErrGameStateNotFound)
}

func (s *StorageSuite) TestSaveAndGetGameState() {
	state := &model.GameState{RedScore: 3, BlueScore: 2, MatchTime: 120, IsActive: true}

	err := s.storage.SaveGameState(s.ctx, state)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetGameState(s.ctx)
	s.Require().NoError(err)
	s.Equal(3, retrieved.RedScore)
	s.Equal(2, retrieved.BlueScore)
	s.Equal(120, retrieved.MatchTime)
}
