package echoapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusmark/rollcall/core/attendance"
)

func getHistory(t *testing.T, app Server, path string) []attendance.Record {
	t.Helper()
	req, rec := newRequest(http.MethodGet, path)
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	var records []attendance.Record
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
	return records
}

func submit(t *testing.T, app Server, body string) *http.Response {
	t.Helper()
	req, rec := newRequest(http.MethodPost, "/attendance", []byte(body))
	app.ServeHTTP(rec, req)
	return rec.Result()
}

func Test_attendanceApi_submit(t *testing.T) {
	app, _ := initApp(t, nil, testRoster()...)

	// first submission appends
	res := submit(t, app, `{"adminNo":"123","date":"2025-01-10","status":"present"}`)
	require.Equal(t, http.StatusOK, res.StatusCode)

	records := getHistory(t, app, "/attendance/123")
	require.Len(t, records, 1)
	assert.Equal(t, attendance.StatusPresent, records[0].Status)
	assert.NotEmpty(t, records[0].ID)

	// same (adminNo, date) replaces the record, keeping one entry
	res = submit(t, app, `{"adminNo":"123","date":"2025-01-10","status":"late"}`)
	require.Equal(t, http.StatusOK, res.StatusCode)

	updated := getHistory(t, app, "/attendance/123")
	require.Len(t, updated, 1)
	assert.Equal(t, attendance.StatusLate, updated[0].Status)
	assert.Equal(t, records[0].ID, updated[0].ID)

	// a different date appends
	res = submit(t, app, `{"adminNo":"123","date":"2025-01-11","status":"present"}`)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Len(t, getHistory(t, app, "/attendance/123"), 2)

	// history lookup is case-insensitive and the student portal path matches
	assert.Len(t, getHistory(t, app, "/student-attendance/123"), 2)
}

func Test_attendanceApi_submit_missingFields(t *testing.T) {
	app, _ := initApp(t, nil, testRoster()...)

	tests := []httpTest{
		{name: "only adminNo", body: []byte(`{"adminNo":"123"}`)},
		{name: "empty body", body: []byte(`{}`)},
		{name: "bad date", body: []byte(`{"adminNo":"123","date":"10-01-2025","status":"present"}`)},
		{name: "bad status", body: []byte(`{"adminNo":"123","date":"2025-01-10","status":"vacation"}`)},
		{name: "lone latitude", body: []byte(`{"adminNo":"123","date":"2025-01-10","status":"present","latitude":23.5492}`)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.method = http.MethodPost
			tt.path = "/attendance"
			tt.wantCode = http.StatusBadRequest
			req, rec := newRequest(tt.method, tt.path, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}

	// no mutation occurred
	assert.Empty(t, getHistory(t, app, "/attendance/123"))
}

func Test_attendanceApi_submit_geofenceOverride(t *testing.T) {
	app, _ := initApp(t, nil, testRoster()...)

	// ~10 km north of the campus reference point
	body := fmt.Sprintf(
		`{"adminNo":"123","date":"2025-01-10","status":"present","latitude":%f,"longitude":%f}`,
		23.5492+10.0/111.195, 87.2912,
	)
	res := submit(t, app, body)
	require.Equal(t, http.StatusOK, res.StatusCode)

	records := getHistory(t, app, "/attendance/123")
	require.Len(t, records, 1)
	assert.Equal(t, attendance.StatusAbsent, records[0].Status)
	assert.NotEmpty(t, records[0].Reason)
	assert.Contains(t, records[0].Reason, "Out of campus range")
}

func Test_attendanceApi_submit_onCampusCoordinates(t *testing.T) {
	app, _ := initApp(t, nil, testRoster()...)

	res := submit(t, app, `{"adminNo":"123","date":"2025-01-10","status":"present","latitude":23.5493,"longitude":87.2913}`)
	require.Equal(t, http.StatusOK, res.StatusCode)

	records := getHistory(t, app, "/attendance/123")
	require.Len(t, records, 1)
	assert.Equal(t, attendance.StatusPresent, records[0].Status)
	assert.Empty(t, records[0].Reason)
}

func Test_attendanceApi_submit_requireCoordinates(t *testing.T) {
	conf := testConfig()
	conf.Geofence.RequireCoordinates = true
	app, _ := initApp(t, conf, testRoster()...)

	res := submit(t, app, `{"adminNo":"123","date":"2025-01-10","status":"present"}`)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Empty(t, getHistory(t, app, "/attendance/123"))
}

func Test_attendanceApi_history_unknownStudent(t *testing.T) {
	app, _ := initApp(t, nil, testRoster()...)

	req, rec := newRequest(http.MethodGet, "/attendance/unknown")
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
