package mux

import (
	"errors"
	"net/http"
)

type scorePayload struct {
	Game       string `json:"game"`
	PlayerName string `json:"playerName"`
	Score      *int   `json:"score"`
}

func (m *Mux) getScores() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		game := r.FormValue("game")
		if game == "" {
			writeJSONError(w, http.StatusBadRequest, errors.New("game parameter required"))
			return
		}

		scores, err := m.scores.Top(r.Context(), game)
		if err != nil {
			writeUserError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, scores)
	}
}

func (m *Mux) postScores() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var sp scorePayload
		if !decodeRequest(w, r, &sp) {
			return
		}

		if sp.Game == "" || sp.PlayerName == "" || sp.Score == nil {
			writeJSONError(w, http.StatusBadRequest, errors.New("missing required fields: game, playerName, score"))
			return
		}

		record, err := m.scores.Submit(r.Context(), sp.Game, sp.PlayerName, *sp.Score)
		if err != nil {
			writeUserError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, record)
	}
}

func (m *Mux) getLeaderboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		standings, err := m.scores.Leaderboard(r.Context())
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, standings)
	}
}
