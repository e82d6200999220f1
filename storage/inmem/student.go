package inmem

import (
	"strings"

	"github.com/campusmark/rollcall/core/student"
)

type studentRepository struct {
	db *studentTable
}

var _ student.Repository = (*studentRepository)(nil) // interface compliance check

func NewStudentRepository(db *DB) student.Repository {
	return &studentRepository{db: db.students}
}

func (repo *studentRepository) GetStudentByCredentials(adminNo, rollNo string) (student.Student, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, s := range repo.db.rows {
		if strings.EqualFold(s.AdminNo, adminNo) && string(s.RollNo) == rollNo {
			return s, nil
		}
	}
	return student.Student{}, student.ErrNotFound
}

func (repo *studentRepository) FilterStudentsBySection(section string) ([]student.Student, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	matches := make([]student.Student, 0)
	for _, s := range repo.db.rows {
		if strings.EqualFold(s.Section, section) {
			matches = append(matches, s)
		}
	}
	return matches, nil
}

func (repo *studentRepository) QueryAllStudents() ([]student.Student, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	all := make([]student.Student, len(repo.db.rows))
	copy(all, repo.db.rows)
	return all, nil
}
