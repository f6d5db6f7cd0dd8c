package mux

import (
	"net/http"

	"familyhub-server/pkg/playable/poker/action"
	"familyhub-server/pkg/room"
)

type postPokerPayload struct {
	PlayerName string `json:"playerName"`
}

type postPokerResponse struct {
	UUID     string     `json:"uuid"`
	PlayerID string     `json:"playerId"`
	View     *room.View `json:"view"`
}

type pokerActionPayload struct {
	PlayerID string        `json:"playerId"`
	Action   action.Action `json:"action"`
	Amount   int           `json:"amount"`
}

func (m *Mux) postPoker() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postPokerPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		s, playerID, err := m.pitBoss.CreateSession(pp.PlayerName)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		v, err := s.View(playerID)
		if err != nil {
			writeUserError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, postPokerResponse{
			UUID:     s.UUID,
			PlayerID: playerID,
			View:     v,
		})
	}
}

func (m *Mux) getPokerUUID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := r.Context().Value(ctxSessionKey).(*room.Session)
		v, err := s.View(r.FormValue("playerId"))
		if err != nil {
			writeUserError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, v)
	}
}

func (m *Mux) deletePokerUUID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := r.Context().Value(ctxSessionKey).(*room.Session)
		if err := m.pitBoss.EndSession(s.UUID); err != nil {
			writeUserError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, statusOK)
	}
}

func (m *Mux) postPokerUUIDAction() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var ap pokerActionPayload
		if !decodeRequest(w, r, &ap) {
			return
		}

		s := r.Context().Value(ctxSessionKey).(*room.Session)
		if err := s.Act(ap.PlayerID, ap.Action, ap.Amount); err != nil {
			writeUserError(w, err)
			return
		}

		m.writeView(w, s, ap.PlayerID)
	}
}

func (m *Mux) postPokerUUIDHand() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := r.Context().Value(ctxSessionKey).(*room.Session)
		if err := s.NextHand(); err != nil {
			writeUserError(w, err)
			return
		}

		m.writeView(w, s, r.FormValue("playerId"))
	}
}

func (m *Mux) postPokerUUIDReset() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := r.Context().Value(ctxSessionKey).(*room.Session)
		if err := s.Reset(); err != nil {
			writeUserError(w, err)
			return
		}

		m.writeView(w, s, r.FormValue("playerId"))
	}
}

func (m *Mux) writeView(w http.ResponseWriter, s *room.Session, playerID string) {
	v, err := s.View(playerID)
	if err != nil {
		writeUserError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, v)
}
