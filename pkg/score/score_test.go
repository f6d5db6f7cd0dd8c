package score

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cbg = context.Background()

func newTestService() *Service {
	return NewService(NewMemoryRepository(), []string{"Dad", "Mom", "Jonas"})
}

func TestIsGame(t *testing.T) {
	a := assert.New(t)
	for _, g := range Games() {
		a.True(IsGame(g), g)
	}

	a.False(IsGame("checkers"))
	a.False(IsGame(""))
}

func TestService_Submit(t *testing.T) {
	a := assert.New(t)
	s := newTestService()

	record, err := s.Submit(cbg, GamePoker, " Jonas ", 1500)
	require.NoError(t, err)
	a.Equal(int64(1), record.ID)
	a.Equal("Jonas", record.PlayerName)
	a.Equal(1500, record.Score)
	a.False(record.Created.IsZero())

	_, err = s.Submit(cbg, "checkers", "Jonas", 10)
	a.Equal(ErrUnknownGame, err)

	_, err = s.Submit(cbg, GamePoker, "Torvald", 10)
	a.Equal(ErrUnknownPlayer, err)

	a.NoError(s.SubmitScore(cbg, GameSudoku, "Mom", 700))
	a.Equal(ErrUnknownPlayer, s.SubmitScore(cbg, GameSudoku, "", 700))
}

func TestService_Top(t *testing.T) {
	a := assert.New(t)
	s := newTestService()

	for i := 1; i <= 12; i++ {
		require.NoError(t, s.SubmitScore(cbg, GameSolitaire, "Dad", i*10))
	}
	require.NoError(t, s.SubmitScore(cbg, GameSudoku, "Dad", 5000))

	top, err := s.Top(cbg, GameSolitaire)
	require.NoError(t, err)
	require.Len(t, top, TopLimit)
	a.Equal(120, top[0].Score)
	a.Equal(30, top[9].Score)
	for _, sc := range top {
		a.Equal(GameSolitaire, sc.Game)
	}

	top, err = s.Top(cbg, GameMemory)
	a.NoError(err)
	a.Empty(top)

	_, err = s.Top(cbg, "checkers")
	a.Equal(ErrUnknownGame, err)
}

func TestService_Leaderboard(t *testing.T) {
	a := assert.New(t)
	s := newTestService()

	standings, err := s.Leaderboard(cbg)
	a.NoError(err)
	a.Empty(standings)

	require.NoError(t, s.SubmitScore(cbg, GamePoker, "Jonas", 3000))   // 160
	require.NoError(t, s.SubmitScore(cbg, GameMemory, "Jonas", 50))    // 100
	require.NoError(t, s.SubmitScore(cbg, GameSolitaire, "Mom", 1000)) // 200
	require.NoError(t, s.SubmitScore(cbg, GameCodeQuest, "Dad", 1))    // 100
	require.NoError(t, s.SubmitScore(cbg, GameCodeQuest, "Dad", 1))    // 100

	standings, err = s.Leaderboard(cbg)
	require.NoError(t, err)
	a.Equal([]Standing{
		{PlayerName: "Jonas", TotalPoints: 260, GamesPlayed: 2},
		{PlayerName: "Dad", TotalPoints: 200, GamesPlayed: 2},
		{PlayerName: "Mom", TotalPoints: 200, GamesPlayed: 1},
	}, standings)
}

type failingRepository struct {
	MemoryRepository
}

func (f *failingRepository) All(ctx context.Context) ([]*Score, error) {
	return nil, errors.New("connection refused")
}

func TestService_Leaderboard_error(t *testing.T) {
	s := NewService(&failingRepository{}, []string{"Dad"})
	_, err := s.Leaderboard(cbg)
	assert.EqualError(t, err, "connection refused")
}

func TestMemoryRepository_copies(t *testing.T) {
	a := assert.New(t)
	m := NewMemoryRepository()

	s := &Score{Game: GamePoker, PlayerName: "Bo", Score: 10}
	require.NoError(t, m.Insert(cbg, s))
	s.Score = 20

	all, err := m.All(cbg)
	require.NoError(t, err)
	require.Len(t, all, 1)
	a.Equal(10, all[0].Score)

	all[0].Score = 30
	top, _ := m.Top(cbg, GamePoker, 1)
	a.Equal(10, top[0].Score, fmt.Sprintf("%+v", top[0]))
}
