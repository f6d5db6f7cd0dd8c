package mux

import (
	"errors"
	"net/http"

	"github.com/synacor/argon2id"
)

var errInvalidPasscode = errors.New("invalid passcode")

type authPayload struct {
	Passcode       string `json:"passcode"`
	RecaptchaToken string `json:"recaptchaToken"`
}

type authResponse struct {
	Status string `json:"status"`
	Token  string `json:"token"`
}

func (m *Mux) postAuth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var ap authPayload
		if !decodeRequest(w, r, &ap) {
			return
		}

		if m.recaptcha != nil {
			if err := m.recaptcha.Verify(ap.RecaptchaToken); err != nil {
				writeJSONError(w, http.StatusBadRequest, err)
				return
			}
		}

		if m.passcodeHash == "" {
			// prevent timing attacks
			_ = argon2id.Compare("", "")
			writeJSONError(w, http.StatusUnauthorized, errInvalidPasscode)
			return
		}

		if err := argon2id.Compare(m.passcodeHash, ap.Passcode); err != nil {
			writeJSONError(w, http.StatusUnauthorized, errInvalidPasscode)
			return
		}

		token, err := m.signer.Sign()
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookie,
			Value:    token,
			Path:     "/",
			MaxAge:   int(m.signer.TTL().Seconds()),
			HttpOnly: true,
			Secure:   r.TLS != nil,
			SameSite: http.SameSiteLaxMode,
		})

		writeJSON(w, http.StatusOK, authResponse{Status: "OK", Token: token})
	}
}

func (m *Mux) deleteAuth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookie,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		writeJSON(w, http.StatusOK, statusOK)
	}
}
