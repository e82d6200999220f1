package pgstore

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/campusmark/rollcall/core/student"
)

type studentRow struct {
	ID      int    `db:"id"`
	AdminNo string `db:"admin_no"`
	RollNo  string `db:"roll_no"`
	Name    string `db:"name"`
	Section string `db:"section"`
}

func (r studentRow) toStudent() student.Student {
	return student.Student{
		ID:      r.ID,
		AdminNo: r.AdminNo,
		RollNo:  student.RollNo(r.RollNo),
		Name:    r.Name,
		Section: r.Section,
	}
}

type StudentRepository struct {
	db *sqlx.DB
}

var _ student.Repository = (*StudentRepository)(nil) // interface compliance check

func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// ReplaceRoster overwrites the student table with the given roster; used at
// startup to sync the roster file into the database.
func (repo *StudentRepository) ReplaceRoster(students []student.Student) error {
	tx, err := repo.db.Beginx()
	if err != nil {
		return errors.Wrap(err, "beginning roster sync")
	}
	if _, err = tx.Exec(`DELETE FROM student`); err != nil {
		_ = tx.Rollback()
		return errors.Wrap(err, "clearing roster")
	}
	for _, s := range students {
		_, err = tx.Exec(
			`INSERT INTO student (id, admin_no, roll_no, name, section) VALUES ($1, $2, $3, $4, $5)`,
			s.ID, s.AdminNo, string(s.RollNo), s.Name, s.Section,
		)
		if err != nil {
			_ = tx.Rollback()
			return errors.Wrapf(err, "inserting roster entry %s", s.AdminNo)
		}
	}
	return errors.Wrap(tx.Commit(), "committing roster sync")
}

func (repo *StudentRepository) GetStudentByCredentials(adminNo, rollNo string) (student.Student, error) {
	var row studentRow
	err := repo.db.Get(&row,
		`SELECT id, admin_no, roll_no, name, section FROM student
		 WHERE LOWER(admin_no) = LOWER($1) AND roll_no = $2`,
		adminNo, rollNo,
	)
	if err == sql.ErrNoRows {
		return student.Student{}, student.ErrNotFound
	}
	if err != nil {
		return student.Student{}, errors.Wrap(err, "querying student by credentials")
	}
	return row.toStudent(), nil
}

func (repo *StudentRepository) FilterStudentsBySection(section string) ([]student.Student, error) {
	var rows []studentRow
	err := repo.db.Select(&rows,
		`SELECT id, admin_no, roll_no, name, section FROM student
		 WHERE UPPER(section) = UPPER($1) ORDER BY id`,
		section,
	)
	if err != nil {
		return nil, errors.Wrap(err, "querying students by section")
	}
	return toStudents(rows), nil
}

func (repo *StudentRepository) QueryAllStudents() ([]student.Student, error) {
	var rows []studentRow
	err := repo.db.Select(&rows, `SELECT id, admin_no, roll_no, name, section FROM student ORDER BY id`)
	if err != nil {
		return nil, errors.Wrap(err, "querying all students")
	}
	return toStudents(rows), nil
}

func toStudents(rows []studentRow) []student.Student {
	students := make([]student.Student, len(rows))
	for i, r := range rows {
		students[i] = r.toStudent()
	}
	return students
}
