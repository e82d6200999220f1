package jsonfile

import (
	"strings"

	"github.com/campusmark/rollcall/core/student"
)

// studentRepository serves the roster loaded at Open. The roster is
// immutable after load, so reads take no lock.
type studentRepository struct {
	rows []student.Student
}

var _ student.Repository = (*studentRepository)(nil) // interface compliance check

func NewStudentRepository(db *DB) student.Repository {
	return &studentRepository{rows: db.students}
}

func (repo *studentRepository) GetStudentByCredentials(adminNo, rollNo string) (student.Student, error) {
	for _, s := range repo.rows {
		if strings.EqualFold(s.AdminNo, adminNo) && string(s.RollNo) == rollNo {
			return s, nil
		}
	}
	return student.Student{}, student.ErrNotFound
}

func (repo *studentRepository) FilterStudentsBySection(section string) ([]student.Student, error) {
	matches := make([]student.Student, 0)
	for _, s := range repo.rows {
		if strings.EqualFold(s.Section, section) {
			matches = append(matches, s)
		}
	}
	return matches, nil
}

func (repo *studentRepository) QueryAllStudents() ([]student.Student, error) {
	all := make([]student.Student, len(repo.rows))
	copy(all, repo.rows)
	return all, nil
}
