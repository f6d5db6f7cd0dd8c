package score

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"familyhub-server/pkg/db"
)

const scoreColumns = `
scores.id,
scores.game,
scores.player_name,
scores.score,
scores.created`

const pqCheckViolationErrorCode pq.ErrorCode = "23514"

// PostgresRepository stores scores in the `scores` table
type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a repository backed by the database
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func getScoreByRow(row db.Scanner) (*Score, error) {
	var s Score
	if err := row.Scan(&s.ID, &s.Game, &s.PlayerName, &s.Score, &s.Created); err != nil {
		return nil, err
	}

	return &s, nil
}

// Insert implements Repository
func (p *PostgresRepository) Insert(ctx context.Context, s *Score) error {
	const query = `
INSERT INTO scores (game, player_name, score)
VALUES ($1, $2, $3)
RETURNING id, created`

	row := p.db.QueryRowContext(ctx, query, s.Game, s.PlayerName, s.Score)
	if err := row.Scan(&s.ID, &s.Created); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqCheckViolationErrorCode {
			return ErrUnknownGame
		}

		return err
	}

	return nil
}

// Top implements Repository
func (p *PostgresRepository) Top(ctx context.Context, game string, limit int) ([]*Score, error) {
	query := `
SELECT ` + scoreColumns + `
FROM scores
WHERE game = $1
ORDER BY score DESC, id
LIMIT $2`

	return p.list(ctx, query, game, limit)
}

// All implements Repository
func (p *PostgresRepository) All(ctx context.Context) ([]*Score, error) {
	query := `
SELECT ` + scoreColumns + `
FROM scores
ORDER BY id`

	return p.list(ctx, query)
}

func (p *PostgresRepository) list(ctx context.Context, query string, args ...interface{}) ([]*Score, error) {
	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	scores := make([]*Score, 0)
	for rows.Next() {
		s, err := getScoreByRow(rows)
		if err != nil {
			return nil, err
		}

		scores = append(scores, s)
	}

	return scores, rows.Err()
}
