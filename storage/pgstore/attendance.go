package pgstore

import (
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/campusmark/rollcall/core/attendance"
)

type recordRow struct {
	ID         string    `db:"id"`
	AdminNo    string    `db:"admin_no"`
	Date       string    `db:"date"`
	Status     string    `db:"status"`
	Latitude   *float64  `db:"latitude"`
	Longitude  *float64  `db:"longitude"`
	Reason     string    `db:"reason"`
	RecordedAt time.Time `db:"recorded_at"`
}

func (r recordRow) toRecord() attendance.Record {
	return attendance.Record{
		ID:         r.ID,
		AdminNo:    r.AdminNo,
		Date:       r.Date,
		Status:     attendance.Status(r.Status),
		Latitude:   r.Latitude,
		Longitude:  r.Longitude,
		Reason:     r.Reason,
		RecordedAt: r.RecordedAt,
	}
}

type attendanceRepository struct {
	db *sqlx.DB
}

var _ attendance.Repository = (*attendanceRepository)(nil) // interface compliance check

func NewAttendanceRepository(db *sqlx.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

// UpsertRecord relies on the unique (LOWER(admin_no), date) index: a conflict
// updates the existing row, keeping its id and position.
func (repo *attendanceRepository) UpsertRecord(rec attendance.Record) (attendance.Record, error) {
	row := recordRow{
		ID:         uuid.New().String(),
		AdminNo:    rec.AdminNo,
		Date:       rec.Date,
		Status:     string(rec.Status),
		Latitude:   rec.Latitude,
		Longitude:  rec.Longitude,
		Reason:     rec.Reason,
		RecordedAt: rec.RecordedAt,
	}

	var saved recordRow
	err := repo.db.Get(&saved, `
		INSERT INTO attendance_record (id, admin_no, date, status, latitude, longitude, reason, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (LOWER(admin_no), date) DO UPDATE SET
			admin_no    = EXCLUDED.admin_no,
			status      = EXCLUDED.status,
			latitude    = EXCLUDED.latitude,
			longitude   = EXCLUDED.longitude,
			reason      = EXCLUDED.reason,
			recorded_at = EXCLUDED.recorded_at
		RETURNING id, admin_no, date, status, latitude, longitude, reason, recorded_at`,
		row.ID, row.AdminNo, row.Date, row.Status, row.Latitude, row.Longitude, row.Reason, row.RecordedAt,
	)
	if err != nil {
		return attendance.Record{}, errors.Wrap(err, "upserting attendance record")
	}
	return saved.toRecord(), nil
}

func (repo *attendanceRepository) FilterRecordsByStudent(adminNo string) ([]attendance.Record, error) {
	var rows []recordRow
	err := repo.db.Select(&rows, `
		SELECT id, admin_no, date, status, latitude, longitude, reason, recorded_at
		FROM attendance_record
		WHERE LOWER(admin_no) = LOWER($1)
		ORDER BY position`,
		adminNo,
	)
	if err != nil {
		return nil, errors.Wrap(err, "querying attendance by student")
	}
	return toRecords(rows), nil
}

func (repo *attendanceRepository) QueryAllRecords() ([]attendance.Record, error) {
	var rows []recordRow
	err := repo.db.Select(&rows, `
		SELECT id, admin_no, date, status, latitude, longitude, reason, recorded_at
		FROM attendance_record
		ORDER BY position`)
	if err != nil {
		return nil, errors.Wrap(err, "querying all attendance records")
	}
	return toRecords(rows), nil
}

func toRecords(rows []recordRow) []attendance.Record {
	records := make([]attendance.Record, len(rows))
	for i, r := range rows {
		records[i] = r.toRecord()
	}
	return records
}
