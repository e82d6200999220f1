package echoapi

import (
	"net/http"
	"testing"
)

func Test_authApi_login(t *testing.T) {
	app, _ := initApp(t, nil, testRoster()...)

	tests := []httpTest{
		{
			name:     "student login",
			body:     []byte(`{"adminNo":"123","rollNo":"7","role":"student"}`),
			wantCode: http.StatusOK,
			wantData: []byte(`{"success":true,"user":{"adminNo":"123","rollNo":"7","name":"Asha","role":"student"}}`),
		},
		{
			name:     "student login is case-insensitive on adminNo",
			body:     []byte(`{"adminNo":"ABC123","rollNo":"8","role":"student"}`),
			wantCode: http.StatusOK,
			wantData: []byte(`{"success":true,"user":{"adminNo":"abc123","rollNo":"8","name":"Ravi","role":"student"}}`),
		},
		{
			name:     "numeric rollNo matches its string form",
			body:     []byte(`{"adminNo":"123","rollNo":7,"role":"student"}`),
			wantCode: http.StatusBadRequest, // JSON number does not bind to a string field
		},
		{
			name:     "admin login",
			body:     []byte(`{"adminNo":"admin","rollNo":"adminpass","role":"admin"}`),
			wantCode: http.StatusOK,
			wantData: []byte(`{"success":true,"user":{"adminNo":"admin","name":"Administrator","role":"admin"}}`),
		},
		{
			name:     "wrong admin secret",
			body:     []byte(`{"adminNo":"admin","rollNo":"nope","role":"admin"}`),
			wantCode: http.StatusUnauthorized,
			wantData: []byte(`{"success":false,"message":"Invalid credentials or role."}`),
		},
		{
			name:     "unknown student",
			body:     []byte(`{"adminNo":"999","rollNo":"1","role":"student"}`),
			wantCode: http.StatusUnauthorized,
			wantData: []byte(`{"success":false,"message":"Invalid credentials or role."}`),
		},
		{
			name:     "wrong rollNo",
			body:     []byte(`{"adminNo":"123","rollNo":"8","role":"student"}`),
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "unknown role",
			body:     []byte(`{"adminNo":"123","rollNo":"7","role":"teacher"}`),
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "missing fields",
			body:     []byte(`{"adminNo":"123"}`),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "empty body",
			body:     []byte(`{}`),
			wantCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodPost, "/login", tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}
