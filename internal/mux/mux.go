package mux

import (
	"context"
	"net/http"
	"strings"

	gmux "github.com/gorilla/mux"

	"familyhub-server/internal/jwt"
	"familyhub-server/pkg/room"
	"familyhub-server/pkg/score"
)

type ctxKey int

const (
	ctxSessionKey ctxKey = iota
)

// sessionCookie holds the signed session token
const sessionCookie = "fhub_session"

// Options are the collaborators the HTTP handlers depend on
type Options struct {
	Version string

	// PasscodeHash is the argon2id hash of the family passcode
	PasscodeHash string

	// RecaptchaSecret enables recaptcha verification on sign in when set
	RecaptchaSecret string

	Signer  *jwt.Signer
	Scores  *score.Service
	PitBoss *room.PitBoss
}

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version      string
	passcodeHash string
	recaptcha    recaptcha
	signer       *jwt.Signer
	scores       *score.Service
	pitBoss      *room.PitBoss

	// store for testing purposes
	authRouter *gmux.Router
}

// NewMux returns a new HTTP mux
func NewMux(opts Options) *Mux {
	this := &Mux{
		Router:       gmux.NewRouter(),
		version:      opts.Version,
		passcodeHash: opts.PasscodeHash,
		signer:       opts.Signer,
		scores:       opts.Scores,
		pitBoss:      opts.PitBoss,
	}

	if opts.RecaptchaSecret != "" {
		this.recaptcha = newRecaptcha(opts.RecaptchaSecret)
	}

	this.authRouter = this.Router.NewRoute().Subrouter()
	this.authRouter.Use(this.authMiddleware)

	// unauthorized endpoints
	{
		r := this.Router
		r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
		r.Methods(http.MethodPost).Path("/auth").Handler(this.postAuth())
		r.Methods(http.MethodDelete).Path("/auth").Handler(this.deleteAuth())
	}

	// requires the session cookie or bearer authorization
	{
		r := this.authRouter

		r.Methods(http.MethodGet).Path("/scores").Handler(this.getScores())
		r.Methods(http.MethodPost).Path("/scores").Handler(this.postScores())
		r.Methods(http.MethodGet).Path("/leaderboard").Handler(this.getLeaderboard())

		r.Methods(http.MethodPost).Path("/poker").Handler(this.postPoker())

		pr := r.PathPrefix("/poker/{uuid:(?i)[a-f0-9]{8}(?:-[a-f0-9]{4}){3}-[a-f0-9]{12}}").Subrouter()
		pr.Use(this.sessionMiddleware)

		pr.Methods(http.MethodGet).Path("").Handler(this.getPokerUUID())
		pr.Methods(http.MethodDelete).Path("").Handler(this.deletePokerUUID())
		pr.Methods(http.MethodGet).Path("/ws").Handler(this.getPokerUUIDWS())
		pr.Methods(http.MethodPost).Path("/action").Handler(this.postPokerUUIDAction())
		pr.Methods(http.MethodPost).Path("/hand").Handler(this.postPokerUUIDHand())
		pr.Methods(http.MethodPost).Path("/reset").Handler(this.postPokerUUIDReset())
	}

	return this
}

func (m *Mux) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := requestToken(r)
		if token == "" {
			writeJSONError(w, http.StatusUnauthorized, nil)
			return
		}

		if err := m.signer.Validate(token); err != nil {
			writeJSONError(w, http.StatusUnauthorized, nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// requestToken looks for the session token in the cookie, then the access_token parameter, then the Authorization header
func requestToken(r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		return c.Value
	}

	if token := r.FormValue("access_token"); token != "" {
		return token
	}

	authHeader := strings.Split(r.Header.Get("Authorization"), " ")
	if len(authHeader) != 2 || strings.ToLower(authHeader[0]) != "bearer" {
		return ""
	}

	return authHeader[1]
}

func (m *Mux) sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, err := m.pitBoss.Session(strings.ToLower(gmux.Vars(r)["uuid"]))
		if err != nil {
			writeJSONError(w, http.StatusNotFound, err)
			return
		}

		newCtx := context.WithValue(r.Context(), ctxSessionKey, s)
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}
