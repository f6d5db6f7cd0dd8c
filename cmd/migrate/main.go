package main

import (
	"database/sql"
	"time"

	"github.com/sirupsen/logrus"

	"familyhub-server/pkg/db"
)

func main() {
	if !db.Configured() {
		logrus.Fatal("FHUB_PG_DSN is not set")
	}

	waitForDB()
	if err := db.Migrate(); err != nil {
		logrus.WithError(err).Fatal("could not run migrations")
	}

	logrus.Info("migrations complete")
}

func waitForDB() {
	timeout := time.NewTimer(time.Second * 10)
	for {
		select {
		case <-timeout.C:
			logrus.Fatal("could not connect to database")
		default:
			dbh := func() *sql.DB {
				defer func() { _ = recover() }()
				return db.Instance()
			}()

			if dbh != nil {
				return
			}

			time.Sleep(time.Millisecond * 500)
		}
	}
}
