package jsonfile

import (
	"strings"

	"github.com/google/uuid"

	"github.com/campusmark/rollcall/core/attendance"
)

type attendanceRepository struct {
	ledger *ledgerFile
}

var _ attendance.Repository = (*attendanceRepository)(nil) // interface compliance check

func NewAttendanceRepository(db *DB) attendance.Repository {
	return &attendanceRepository{ledger: db.ledger}
}

// UpsertRecord applies the upsert in memory, then rewrites the ledger file
// under the same lock. If the rewrite fails, the in-memory change is rolled
// back so memory and disk cannot drift apart.
func (repo *attendanceRepository) UpsertRecord(rec attendance.Record) (attendance.Record, error) {
	repo.ledger.Lock()
	defer repo.ledger.Unlock()

	replacedAt := -1
	var replaced attendance.Record
	for i, row := range repo.ledger.rows {
		if row.KeyMatches(rec.AdminNo, rec.Date) {
			rec.ID = row.ID
			replacedAt, replaced = i, row
			repo.ledger.rows[i] = rec
			break
		}
	}
	if replacedAt == -1 {
		rec.ID = uuid.New().String()
		repo.ledger.rows = append(repo.ledger.rows, rec)
	}

	if err := repo.ledger.save(); err != nil {
		if replacedAt >= 0 {
			repo.ledger.rows[replacedAt] = replaced
		} else {
			repo.ledger.rows = repo.ledger.rows[:len(repo.ledger.rows)-1]
		}
		return attendance.Record{}, err
	}
	return rec, nil
}

func (repo *attendanceRepository) FilterRecordsByStudent(adminNo string) ([]attendance.Record, error) {
	repo.ledger.Lock()
	defer repo.ledger.Unlock()

	matches := make([]attendance.Record, 0)
	for _, row := range repo.ledger.rows {
		if strings.EqualFold(row.AdminNo, adminNo) {
			matches = append(matches, row)
		}
	}
	return matches, nil
}

func (repo *attendanceRepository) QueryAllRecords() ([]attendance.Record, error) {
	repo.ledger.Lock()
	defer repo.ledger.Unlock()

	all := make([]attendance.Record, len(repo.ledger.rows))
	copy(all, repo.ledger.rows)
	return all, nil
}
