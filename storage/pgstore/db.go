// Package pgstore is the Postgres storage backend, selected with
// storage.backend=postgres. The flat-file backend remains the default; this
// one exists for deployments that outgrow a single ledger file.
package pgstore

import (
	"fmt"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/campusmark/rollcall/core"
)

const schema = `
CREATE TABLE IF NOT EXISTS student (
	id       INT PRIMARY KEY,
	admin_no TEXT NOT NULL,
	roll_no  TEXT NOT NULL,
	name     TEXT NOT NULL,
	section  TEXT NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS student_credentials_idx
	ON student (LOWER(admin_no), roll_no);

CREATE TABLE IF NOT EXISTS attendance_record (
	id          UUID PRIMARY KEY,
	admin_no    TEXT NOT NULL,
	date        TEXT NOT NULL,
	status      TEXT NOT NULL,
	latitude    DOUBLE PRECISION,
	longitude   DOUBLE PRECISION,
	reason      TEXT NOT NULL DEFAULT '',
	position    BIGSERIAL,
	recorded_at TIMESTAMPTZ NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS attendance_natural_key_idx
	ON attendance_record (LOWER(admin_no), date);
`

// Open connects to Postgres, waits for it to be ready and bootstraps the
// schema.
func Open(conf *core.Config) (*sqlx.DB, error) {
	sslMode := "require"
	if conf.Database.DisableTLS {
		sslMode = "disable"
	}
	q := make(url.Values)
	q.Set("sslmode", sslMode)
	q.Set("timezone", "utc")

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(conf.Database.User, conf.Database.Password),
		Host:     fmt.Sprintf("%s:%d", conf.Database.Host, conf.Database.Port),
		Path:     conf.Database.Name,
		RawQuery: q.Encode(),
	}

	db, err := sqlx.Open("postgres", u.String())
	if err != nil {
		return nil, errors.Wrap(err, "opening database")
	}
	if err = ping(db); err != nil {
		return nil, errors.Wrap(err, "pinging database")
	}
	if _, err = db.Exec(schema); err != nil {
		return nil, errors.Wrap(err, "bootstrapping schema")
	}
	return db, nil
}

// ping waits for the database to be ready. Waits 100ms longer between each attempt.
func ping(db *sqlx.DB) error {
	var err error
	maxAttempts := 30
	for attempts := 1; attempts <= maxAttempts; attempts++ {
		err = db.Ping()
		if err == nil {
			break
		}
		time.Sleep(time.Duration(attempts) * 100 * time.Millisecond)
	}

	if err != nil {
		return errors.Wrap(err, "DB ping timeout")
	}
	return nil
}
