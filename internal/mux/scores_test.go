package mux

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"familyhub-server/pkg/score"
)

func intPtr(i int) *int {
	return &i
}

func TestPostScores(t *testing.T) {
	a := assert.New(t)
	m, token := newTestMux(t)
	ts := httptest.NewServer(m)
	defer ts.Close()

	var record score.Score
	assertPost(t, ts, "/scores", scorePayload{Game: score.GameSudoku, PlayerName: "Jonas", Score: intPtr(700)}, &record, http.StatusCreated, token)
	a.Equal(int64(1), record.ID)
	a.Equal("Jonas", record.PlayerName)
	a.Equal(700, record.Score)

	// zero is a valid score
	assertPost(t, ts, "/scores", scorePayload{Game: score.GameSudoku, PlayerName: "Mom", Score: intPtr(0)}, nil, http.StatusCreated, token)

	var errObj errorResponse
	assertPost(t, ts, "/scores", scorePayload{Game: score.GameSudoku, PlayerName: "Jonas"}, &errObj, http.StatusBadRequest, token)
	a.Equal("missing required fields: game, playerName, score", errObj.Message)

	assertPost(t, ts, "/scores", scorePayload{Game: "checkers", PlayerName: "Jonas", Score: intPtr(1)}, &errObj, http.StatusBadRequest, token)
	a.Equal("unknown game", errObj.Message)

	assertPost(t, ts, "/scores", scorePayload{Game: score.GameSudoku, PlayerName: "Torvald", Score: intPtr(1)}, &errObj, http.StatusBadRequest, token)
	a.Equal("invalid player name", errObj.Message)

	assertPost(t, ts, "/scores", `{"game":"sudoku","playerName":"Jonas","score":"high"}`, nil, http.StatusBadRequest, token)

	assertPost(t, ts, "/scores", scorePayload{Game: score.GameSudoku, PlayerName: "Jonas", Score: intPtr(1)}, nil, http.StatusUnauthorized)
}

func TestGetScores(t *testing.T) {
	a := assert.New(t)
	m, token := newTestMux(t)
	ts := httptest.NewServer(m)
	defer ts.Close()

	for i := 1; i <= 11; i++ {
		require.NoError(t, m.scores.SubmitScore(cbg, score.GamePixelHoops, "Dad", i))
	}

	var scores []*score.Score
	assertGet(t, ts, "/scores?game=pixel-hoops", &scores, http.StatusOK, token)
	require.Len(t, scores, score.TopLimit)
	a.Equal(11, scores[0].Score)
	a.Equal(2, scores[9].Score)

	assertGet(t, ts, "/scores?game=memory", &scores, http.StatusOK, token)
	a.Empty(scores)

	var errObj errorResponse
	assertGet(t, ts, "/scores", &errObj, http.StatusBadRequest, token)
	a.Equal("game parameter required", errObj.Message)

	assertGet(t, ts, "/scores?game=checkers", &errObj, http.StatusBadRequest, token)
	a.Equal("unknown game", errObj.Message)
}

func TestGetLeaderboard(t *testing.T) {
	m, token := newTestMux(t)
	ts := httptest.NewServer(m)
	defer ts.Close()

	require.NoError(t, m.scores.SubmitScore(cbg, score.GamePoker, "Jonas", 3000))
	require.NoError(t, m.scores.SubmitScore(cbg, score.GameSolitaire, "Mom", 100))

	var standings []score.Standing
	assertGet(t, ts, "/leaderboard", &standings, http.StatusOK, token)
	assert.Equal(t, []score.Standing{
		{PlayerName: "Jonas", TotalPoints: 160, GamesPlayed: 1},
		{PlayerName: "Mom", TotalPoints: 120, GamesPlayed: 1},
	}, standings)
}
