package mux

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"familyhub-server/pkg/room"
	"familyhub-server/pkg/score"
)

var statusOK = map[string]string{
	"status": "OK",
}

func decodeRequest(w http.ResponseWriter, r *http.Request, payload interface{}) bool {
	if ct := r.Header.Get("Content-Type"); ct != "application/json" && ct != "text/json" {
		writeJSONError(w, http.StatusUnsupportedMediaType, nil)
		return false
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSONError(w, http.StatusBadRequest, err)
		return false
	}

	return true
}

func writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("could not write JSON response")
	}
}

type errorResponse struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

// writeUserError maps errors a player can cause to a 400, a missing session to a 404, and anything else to a 500
func writeUserError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, room.ErrSessionNotFound), errors.Is(err, room.ErrSessionClosed):
		writeJSONError(w, http.StatusNotFound, err)
	case errors.Is(err, room.ErrNotYourTurn),
		errors.Is(err, room.ErrIllegalAction),
		errors.Is(err, room.ErrHandInProgress),
		errors.Is(err, room.ErrGameOver),
		errors.Is(err, score.ErrUnknownGame),
		errors.Is(err, score.ErrUnknownPlayer):
		writeJSONError(w, http.StatusBadRequest, err)
	default:
		writeJSONError(w, http.StatusInternalServerError, err)
	}
}

func writeJSONError(w http.ResponseWriter, statusCode int, err error) {
	var msg string

	if statusCode < 500 && err != nil {
		msg = err.Error()
	} else {
		msg = http.StatusText(statusCode)
	}

	if statusCode >= 500 {
		logrus.WithField("statusCode", statusCode).Error(err)
	}

	writeJSON(w, statusCode, errorResponse{
		Message:    msg,
		StatusCode: statusCode,
	})
}
