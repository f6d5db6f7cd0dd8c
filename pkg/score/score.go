// Package score records game results for the family leaderboard
package score

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"
)

// games with a leaderboard
const (
	GameSolitaire  = "solitaire"
	GameSudoku     = "sudoku"
	GameMemory     = "memory"
	GamePixelHoops = "pixel-hoops"
	GamePoker      = "poker"
	GameCodeQuest  = "code-quest"
)

// TopLimit is how many scores Top returns
const TopLimit = 10

// ErrUnknownGame is returned for a game without a leaderboard
var ErrUnknownGame = errors.New("unknown game")

// ErrUnknownPlayer is returned for a player who is not a family member
var ErrUnknownPlayer = errors.New("invalid player name")

// Games returns every game with a leaderboard
func Games() []string {
	return []string{GameSolitaire, GameSudoku, GameMemory, GamePixelHoops, GamePoker, GameCodeQuest}
}

// IsGame returns true if the game has a leaderboard
func IsGame(game string) bool {
	for _, g := range Games() {
		if g == game {
			return true
		}
	}

	return false
}

// Score is a record in the `scores` table
type Score struct {
	ID         int64     `json:"id"`
	Game       string    `json:"game"`
	PlayerName string    `json:"playerName"`
	Score      int       `json:"score"`
	Created    time.Time `json:"createdAt"`
}

// Standing is one row of the leaderboard
type Standing struct {
	PlayerName  string `json:"playerName"`
	TotalPoints int    `json:"totalPoints"`
	GamesPlayed int    `json:"gamesPlayed"`
}

// Repository persists scores
type Repository interface {
	Insert(ctx context.Context, s *Score) error
	Top(ctx context.Context, game string, limit int) ([]*Score, error)
	All(ctx context.Context) ([]*Score, error)
}

// Service validates and records scores
type Service struct {
	repo    Repository
	members []string
}

// NewService returns a service that accepts scores from the named family members
func NewService(repo Repository, members []string) *Service {
	return &Service{
		repo:    repo,
		members: members,
	}
}

// Members returns the family members who can submit scores
func (s *Service) Members() []string {
	return append([]string{}, s.members...)
}

func (s *Service) isMember(name string) bool {
	for _, m := range s.members {
		if m == name {
			return true
		}
	}

	return false
}

// Submit validates and records a score
func (s *Service) Submit(ctx context.Context, game, playerName string, score int) (*Score, error) {
	if !IsGame(game) {
		return nil, ErrUnknownGame
	}

	playerName = strings.TrimSpace(playerName)
	if !s.isMember(playerName) {
		return nil, ErrUnknownPlayer
	}

	record := &Score{
		Game:       game,
		PlayerName: playerName,
		Score:      score,
	}

	if err := s.repo.Insert(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

// SubmitScore records a score, discarding the record
func (s *Service) SubmitScore(ctx context.Context, game, playerName string, score int) error {
	_, err := s.Submit(ctx, game, playerName, score)
	return err
}

// Top returns the highest scores for a game, best first
func (s *Service) Top(ctx context.Context, game string) ([]*Score, error) {
	if !IsGame(game) {
		return nil, ErrUnknownGame
	}

	return s.repo.Top(ctx, game, TopLimit)
}

// Leaderboard totals each player's normalized points across every game
func (s *Service) Leaderboard(ctx context.Context) ([]Standing, error) {
	scores, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	byPlayer := make(map[string]*Standing)
	for _, sc := range scores {
		st, ok := byPlayer[sc.PlayerName]
		if !ok {
			st = &Standing{PlayerName: sc.PlayerName}
			byPlayer[sc.PlayerName] = st
		}

		st.TotalPoints += NormalizedPoints(sc.Game, sc.Score).Total
		st.GamesPlayed++
	}

	standings := make([]Standing, 0, len(byPlayer))
	for _, st := range byPlayer {
		standings = append(standings, *st)
	}

	sort.Slice(standings, func(i, j int) bool {
		if standings[i].TotalPoints == standings[j].TotalPoints {
			return standings[i].PlayerName < standings[j].PlayerName
		}

		return standings[i].TotalPoints > standings[j].TotalPoints
	})

	return standings, nil
}
