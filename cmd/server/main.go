package main

import (
	"flag"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gorilla/handlers"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"familyhub-server/internal/config"
	"familyhub-server/internal/jwt"
	"familyhub-server/internal/mux"
	"familyhub-server/pkg/db"
	"familyhub-server/pkg/room"
	"familyhub-server/pkg/score"
)

const readTimeout = time.Second * 5
const writeTimeout = time.Second * 10

// Version is the server version
var Version = "v0.0.0-dev"

var addr = flag.String("addr", ":5000", "the listen address")

func main() {
	flag.Parse()
	setupLogger()

	cfg := config.Instance()

	// fail fast
	signer, err := jwt.NewSigner(cfg.JWT.Secret, cfg.JWTTTL())
	if err != nil {
		logrus.WithError(err).Fatal("could not create jwt signer")
	}

	if cfg.PasscodeHash == "" {
		logrus.Warn("no passcode hash configured, nobody will be able to sign in")
	}

	scores := score.NewService(scoreRepository(), cfg.FamilyMembers)

	pitBoss := room.NewPitBoss(logrus.StandardLogger(), room.OptionsFromConfig(cfg.Poker), scores)
	pitBoss.StartShift()
	defer pitBoss.Shutdown()

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedHeaders:   []string{"Origin", "Accept", "Content-Type", "X-Requested-With", "Authorization"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	})

	m := mux.NewMux(mux.Options{
		Version:         Version,
		PasscodeHash:    cfg.PasscodeHash,
		RecaptchaSecret: cfg.RecaptchaSecret,
		Signer:          signer,
		Scores:          scores,
		PitBoss:         pitBoss,
	})

	srv := &http.Server{
		Addr:         *addr,
		Handler:      loggingHandler(c.Handler(m)),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	logrus.WithField("addr", srv.Addr).Info("listening")
	logrus.Fatal(srv.ListenAndServe())
}

// scoreRepository uses Postgres when a DSN is configured and memory otherwise
func scoreRepository() score.Repository {
	if !db.Configured() {
		logrus.Warn("no database configured, scores will not survive a restart")
		return score.NewMemoryRepository()
	}

	// run the db migrations
	if err := db.Migrate(); err != nil {
		logrus.WithError(err).Fatal("could not run migrations")
	}

	return score.NewPostgresRepository(db.Instance())
}

func loggingHandler(next http.Handler) http.Handler {
	if config.Instance().Log.DisableAccessLogs {
		return next
	}

	return handlers.CombinedLoggingHandler(os.Stdout, next)
}

func setupLogger() {
	lvl := config.Instance().Log.Level
	if env := os.Getenv("LOG_LEVEL"); env != "" {
		lvl = env
	}

	if lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
