package echoapi

import (
	"bytes"
	"encoding/json"
	"io"
	stdlog "log"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/campusmark/rollcall/core"
	"github.com/campusmark/rollcall/core/attendance"
	"github.com/campusmark/rollcall/core/student"
	"github.com/campusmark/rollcall/core/timetable"
	logsvc "github.com/campusmark/rollcall/services/logger"
	"github.com/campusmark/rollcall/storage/inmem"
)

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	wantCode int
	wantData []byte
}

func testRoster() []student.Student {
	return []student.Student{
		{ID: 1, AdminNo: "123", RollNo: "7", Name: "Asha", Section: student.SectionX},
		{ID: 2, AdminNo: "abc123", RollNo: "8", Name: "Ravi", Section: student.SectionX},
		{ID: 3, AdminNo: "xyz789", RollNo: "9", Name: "Dia", Section: student.SectionY},
	}
}

func testConfig() *core.Config {
	conf := &core.Config{TestMode: true, AppName: "Rollcall", Env: "TEST"}
	conf.Auth = core.AuthConfig{AdminUsername: "admin", AdminSecret: "adminpass"}
	conf.Geofence = core.GeofenceConfig{Latitude: 23.5492, Longitude: 87.2912, RadiusKm: 0.5}
	return conf
}

// initApp builds a full server over in-memory storage.
func initApp(t *testing.T, conf *core.Config, students ...student.Student) (Server, *core.Config) {
	t.Helper()
	if conf == nil {
		conf = testConfig()
	}

	db, err := inmem.Open()
	if err != nil {
		t.Fatalf("initApp() failed: %v", err)
	}
	db.SeedStudents(students...)

	logger := logsvc.NewConsoleLogger(stdlog.New(io.Discard, "", 0))

	validate := validator.New()
	_en := en.New()
	translator, _ := ut.New(_en, _en).GetTranslator("en")
	core.InitValidators(validate, translator)
	student.InitValidators(validate, translator)
	attendance.InitValidators(validate, translator)

	srv := NewServer(ServerDeps{
		Conf:           conf,
		Logger:         logger,
		StudentSvc:     student.NewService(inmem.NewStudentRepository(db)),
		AttendanceSvc:  attendance.NewService(inmem.NewAttendanceRepository(db), conf, logger),
		Timetable:      timetable.NewStore("", logger),
		Validate:       validate,
		Translator:     translator,
		DisableReqLogs: true,
	})
	return srv, conf
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return req, rec
}

func marshallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marshallObj() failed: %v", err)
	}
	return data
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	return assert.ObjectsAreEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	t.Helper()
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}
