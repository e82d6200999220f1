package inmem

import (
	"strings"

	"github.com/google/uuid"

	"github.com/campusmark/rollcall/core/attendance"
)

type attendanceRepository struct {
	db *recordTable
}

var _ attendance.Repository = (*attendanceRepository)(nil) // interface compliance check

func NewAttendanceRepository(db *DB) attendance.Repository {
	return &attendanceRepository{db: db.records}
}

func (repo *attendanceRepository) UpsertRecord(rec attendance.Record) (attendance.Record, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	for i, row := range repo.db.rows {
		if row.KeyMatches(rec.AdminNo, rec.Date) {
			rec.ID = row.ID // replace in place, identity survives
			repo.db.rows[i] = rec
			return rec, nil
		}
	}
	rec.ID = uuid.New().String()
	repo.db.rows = append(repo.db.rows, rec)
	return rec, nil
}

func (repo *attendanceRepository) FilterRecordsByStudent(adminNo string) ([]attendance.Record, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	matches := make([]attendance.Record, 0)
	for _, row := range repo.db.rows {
		if strings.EqualFold(row.AdminNo, adminNo) {
			matches = append(matches, row)
		}
	}
	return matches, nil
}

func (repo *attendanceRepository) QueryAllRecords() ([]attendance.Record, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	all := make([]attendance.Record, len(repo.db.rows))
	copy(all, repo.db.rows)
	return all, nil
}
