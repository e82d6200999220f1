package attendance

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/campusmark/rollcall/core"
)

// Statuses
const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"
	StatusMedical Status = "medical"
	StatusExcused Status = "excused"
)

var Statuses = []Status{StatusPresent, StatusAbsent, StatusLate, StatusMedical, StatusExcused}

type Status string

func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// Record is one attendance entry. At most one Record exists per
// (AdminNo, Date) pair; AdminNo compares case-insensitively.
type Record struct {
	ID         string    `json:"id"`
	AdminNo    string    `json:"adminNo"`
	Date       string    `json:"date"` // ISO-8601 calendar date
	Status     Status    `json:"status"`
	Latitude   *float64  `json:"latitude,omitempty"`
	Longitude  *float64  `json:"longitude,omitempty"`
	Reason     string    `json:"reason,omitempty"`
	RecordedAt time.Time `json:"recordedAt"` // UTC
}

// KeyMatches reports whether rec and other share the same natural key.
func (rec Record) KeyMatches(adminNo, date string) bool {
	return core.CleanString(rec.AdminNo, true /* lower */) == core.CleanString(adminNo, true /* lower */) &&
		rec.Date == date
}

// NewRecord contains information needed to submit an attendance record.
// Coordinates are optional but must come as a pair.
type NewRecord struct {
	AdminNo   string   `json:"adminNo" validate:"required"`
	Date      string   `json:"date" validate:"required,datetime=2006-01-02"`
	Status    Status   `json:"status" validate:"required,status"`
	Latitude  *float64 `json:"latitude" validate:"required_with=Longitude"`
	Longitude *float64 `json:"longitude" validate:"required_with=Latitude"`
}

func (nr *NewRecord) Validate(validate *validator.Validate) error {
	nr.AdminNo = core.CleanString(nr.AdminNo)
	nr.Date = core.CleanString(nr.Date)
	return validate.Struct(nr)
}
