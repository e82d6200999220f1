package attendance

import (
	"errors"
	"fmt"
	"time"

	pkgerrors "github.com/pkg/errors"

	"github.com/campusmark/rollcall/core"
	"github.com/campusmark/rollcall/core/geo"
)

var (
	errCoordsRequired = errors.New("coordinates are required to record attendance")
)

type (
	Repository interface {
		// UpsertRecord replaces the entry sharing rec's natural key in place
		// (preserving its position and ID) or appends rec, then persists the
		// full ledger. A persistence failure leaves the prior state intact
		// and is returned to the caller.
		UpsertRecord(rec Record) (Record, error)
		// FilterRecordsByStudent matches adminNo case-insensitively and
		// returns records in ledger insertion order.
		FilterRecordsByStudent(adminNo string) ([]Record, error)
		QueryAllRecords() ([]Record, error)
	}

	Service struct {
		repo          Repository
		fence         geo.Fence
		requireCoords bool
		logger        core.Logger
	}
)

func NewService(repo Repository, conf *core.Config, logger core.Logger) *Service {
	return &Service{
		repo: repo,
		fence: geo.Fence{
			Center:   geo.Point{Lat: conf.Geofence.Latitude, Lng: conf.Geofence.Longitude},
			RadiusKm: conf.Geofence.RadiusKm,
		},
		requireCoords: conf.Geofence.RequireCoordinates,
		logger:        logger,
	}
}

// Submit applies the geofence policy to nr and upserts the resulting record.
// When coordinates are supplied and fall outside the fence, the requested
// status is force-overwritten to absent with a human-readable reason,
// regardless of what the client asked for.
func (svc *Service) Submit(nr NewRecord) (Record, error) {
	rec := Record{
		AdminNo:    nr.AdminNo,
		Date:       nr.Date,
		Status:     nr.Status,
		Latitude:   nr.Latitude,
		Longitude:  nr.Longitude,
		RecordedAt: time.Now().UTC(),
	}

	if rec.Latitude != nil && rec.Longitude != nil {
		dist := svc.fence.Distance(geo.Point{Lat: *rec.Latitude, Lng: *rec.Longitude})
		if dist > svc.fence.RadiusKm {
			rec.Status = StatusAbsent
			rec.Reason = fmt.Sprintf("Out of campus range (%.2f km away)", dist)
			svc.logger.Info(fmt.Sprintf("student %s marked absent due to distance (%.2f km)", rec.AdminNo, dist))
		}
	} else if svc.requireCoords {
		return Record{}, core.NewValidationError(
			errCoordsRequired,
			core.FieldError{Field: "latitude", Error: "this field is required"},
			core.FieldError{Field: "longitude", Error: "this field is required"},
		)
	}

	saved, err := svc.repo.UpsertRecord(rec)
	if err != nil {
		return Record{}, pkgerrors.Wrap(err, "upserting attendance record")
	}
	return saved, nil
}

// History returns all records of one student, case-insensitive on adminNo,
// in ledger insertion order.
func (svc *Service) History(adminNo string) ([]Record, error) {
	return svc.repo.FilterRecordsByStudent(core.CleanString(adminNo, true /* lower */))
}

func (svc *Service) All() ([]Record, error) {
	return svc.repo.QueryAllRecords()
}
