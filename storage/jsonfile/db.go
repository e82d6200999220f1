// Package jsonfile is the flat-file storage backend: a read-only roster file
// and an attendance ledger file that is rewritten in full on every upsert.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	"github.com/campusmark/rollcall/core"
	"github.com/campusmark/rollcall/core/attendance"
	"github.com/campusmark/rollcall/core/student"
)

type (
	DB struct {
		students []student.Student
		ledger   *ledgerFile
	}

	ledgerFile struct {
		sync.Mutex
		path string
		rows []attendance.Record
	}
)

// Open loads the roster and ledger files. Load failures are non-fatal: the
// affected store starts empty and the condition is logged. A corrupt ledger
// file is renamed aside so the first rewrite does not destroy it.
func Open(conf *core.Config, logger core.Logger) (*DB, error) {
	db := &DB{
		ledger: &ledgerFile{path: conf.Storage.LedgerPath},
	}

	students, err := LoadRoster(conf.Storage.RosterPath)
	if err != nil {
		logger.Error(fmt.Sprintf("loading roster %s, starting with an empty roster: %v", conf.Storage.RosterPath, err), err)
	} else {
		db.students = students
		logger.Info(fmt.Sprintf("loaded %d student records", len(students)))
	}

	rows, err := loadLedger(conf.Storage.LedgerPath)
	switch {
	case err == nil:
		db.ledger.rows = rows
		logger.Info(fmt.Sprintf("loaded %d attendance records", len(rows)))
	case os.IsNotExist(errors.Cause(err)):
		logger.Warn(fmt.Sprintf("ledger %s not found, initializing empty", conf.Storage.LedgerPath))
	default:
		logger.Error(fmt.Sprintf("loading ledger %s, starting with an empty ledger: %v", conf.Storage.LedgerPath, err), err)
		if renameErr := os.Rename(conf.Storage.LedgerPath, conf.Storage.LedgerPath+".corrupt"); renameErr != nil {
			logger.Error(fmt.Sprintf("setting aside corrupt ledger: %v", renameErr), renameErr)
		}
	}

	return db, nil
}

// LoadRoster reads a roster file: a JSON array of student objects.
func LoadRoster(path string) ([]student.Student, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading roster file")
	}
	var students []student.Student
	if err := json.Unmarshal(data, &students); err != nil {
		return nil, errors.Wrap(err, "parsing roster file")
	}
	return students, nil
}

func loadLedger(path string) ([]attendance.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading ledger file")
	}
	var rows []attendance.Record
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, errors.Wrap(err, "parsing ledger file")
	}
	return rows, nil
}

// save serializes the full ledger and replaces the backing file. The write
// goes to a temp file first and is moved into place, so a crash mid-write
// leaves the prior on-disk state intact. Callers must hold the lock.
func (lf *ledgerFile) save() error {
	data, err := json.MarshalIndent(lf.rows, "", "  ")
	if err != nil {
		return errors.Wrap(err, "serializing ledger")
	}

	dir := filepath.Dir(lf.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(lf.path)+".tmp*")
	if err != nil {
		return errors.Wrap(err, "creating ledger temp file")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(err, "writing ledger temp file")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "closing ledger temp file")
	}
	if err := os.Rename(tmp.Name(), lf.path); err != nil {
		return errors.Wrap(err, "replacing ledger file")
	}
	return nil
}
