package echoapi

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusmark/rollcall/core/timetable"
)

func Test_timetableApi_bySection(t *testing.T) {
	app, _ := initApp(t, nil)

	req, rec := newRequest(http.MethodGet, "/timetable/x")
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var entries []timetable.Entry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	require.Len(t, entries, 3)
	assert.Equal(t, "Operating Systems", entries[0].Subject)
}

func Test_timetableApi_unknownSection(t *testing.T) {
	app, _ := initApp(t, nil)

	req, rec := newRequest(http.MethodGet, "/timetable/Z")
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Time table not found for this section.")
}
