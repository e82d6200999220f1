package student

import (
	"errors"
	"strings"

	"github.com/campusmark/rollcall/core"
)

var (
	// ErrNotFound is returned when no roster entry matches.
	ErrNotFound = errors.New("student not found")
)

type (
	Repository interface {
		// GetStudentByCredentials matches adminNo case-insensitively and
		// rollNo by exact string comparison.
		GetStudentByCredentials(adminNo, rollNo string) (Student, error)
		// FilterStudentsBySection matches the (case-normalized) section exactly.
		FilterStudentsBySection(section string) ([]Student, error)
		QueryAllStudents() ([]Student, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Authenticate looks up the roster entry matching the given credentials.
func (svc *Service) Authenticate(creds Credentials) (Student, error) {
	creds.Clean()
	return svc.repo.GetStudentByCredentials(creds.AdminNo, creds.RollNo)
}

// BySection returns the roster entries of one section, case-normalized.
func (svc *Service) BySection(section string) ([]Student, error) {
	return svc.repo.FilterStudentsBySection(strings.ToUpper(core.CleanString(section)))
}

func (svc *Service) All() ([]Student, error) {
	return svc.repo.QueryAllStudents()
}
