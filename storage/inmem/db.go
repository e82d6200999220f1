// Package inmem provides in-memory roster and ledger repositories. It backs
// tests and the explicit "inmem" storage backend (useful when no roster file
// is available yet).
package inmem

import (
	"sync"

	"github.com/campusmark/rollcall/core/attendance"
	"github.com/campusmark/rollcall/core/student"
)

type (
	DB struct {
		students *studentTable
		records  *recordTable
	}

	studentTable struct {
		sync.RWMutex
		rows []student.Student
	}

	recordTable struct {
		sync.RWMutex
		rows []attendance.Record
	}
)

func Open() (*DB, error) {
	db := &DB{
		students: &studentTable{},
		records:  &recordTable{},
	}
	return db, nil
}

// SeedStudents loads roster entries; the roster is read-only afterwards.
func (db *DB) SeedStudents(students ...student.Student) {
	db.students.Lock()
	defer db.students.Unlock()
	db.students.rows = append(db.students.rows, students...)
}
