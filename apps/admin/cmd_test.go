package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusmark/rollcall/core/student"
)

type cliTest struct {
	name    string
	args    []string // without program name
	wantErr error
}

func Test_commandLine_usage(t *testing.T) {
	tests := []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "convert without -in", args: []string{"convert"}, wantErr: errHelp},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			cli := &commandLine{out: &bytes.Buffer{}}
			if err := cli.run(args); err != tt.wantErr {
				t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func Test_commandLine_convert(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "export.csv")
	out := filepath.Join(dir, "students.json")

	csvData := "Admin Number, Roll Number, Name\n" +
		"abc101, 1, Asha\n" +
		"abc102, 2, Ravi\n" +
		", 3, Nameless\n" + // incomplete, skipped
		"abc103, 003, Dia\n"
	require.NoError(t, os.WriteFile(in, []byte(csvData), 0o644))

	var buf bytes.Buffer
	cli := &commandLine{out: &buf}
	require.NoError(t, cli.run([]string{"admin", "convert", "-in", in, "-out", out, "-section-split", "2"}))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var students []student.Student
	require.NoError(t, json.Unmarshal(data, &students))

	require.Len(t, students, 3)
	assert.Equal(t, student.Student{ID: 1, AdminNo: "abc101", RollNo: "1", Name: "Asha", Section: "X"}, students[0])
	assert.Equal(t, student.Student{ID: 2, AdminNo: "abc102", RollNo: "2", Name: "Ravi", Section: "X"}, students[1])
	// past the split, and the padded roll number survives as a string
	assert.Equal(t, student.Student{ID: 3, AdminNo: "abc103", RollNo: "003", Name: "Dia", Section: "Y"}, students[2])

	assert.Contains(t, buf.String(), "3 records")
	assert.Contains(t, buf.String(), "1 rows skipped")
}

func Test_commandLine_convert_lowercaseHeaders(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "export.csv")
	out := filepath.Join(dir, "students.json")

	csvData := "admin no,roll no,name\nabc101,7,Asha\n"
	require.NoError(t, os.WriteFile(in, []byte(csvData), 0o644))

	cli := &commandLine{out: &bytes.Buffer{}}
	require.NoError(t, cli.run([]string{"admin", "convert", "-in", in, "-out", out}))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var students []student.Student
	require.NoError(t, json.Unmarshal(data, &students))
	require.Len(t, students, 1)
	assert.Equal(t, student.RollNo("7"), students[0].RollNo)
}

func Test_commandLine_convert_missingColumn(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "export.csv")
	require.NoError(t, os.WriteFile(in, []byte("Admin Number,Name\nabc101,Asha\n"), 0o644))

	cli := &commandLine{out: &bytes.Buffer{}}
	err := cli.run([]string{"admin", "convert", "-in", in, "-out", filepath.Join(dir, "students.json")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rollNo")
}

func Test_commandLine_inspect(t *testing.T) {
	dir := t.TempDir()
	roster := filepath.Join(dir, "students.json")
	rosterData := `[{"id":1,"adminNo":"abc101","rollNo":"1","name":"Asha","section":"X"},
		{"id":2,"adminNo":"abc102","rollNo":2,"name":"Ravi","section":"Y"}]`
	require.NoError(t, os.WriteFile(roster, []byte(rosterData), 0o644))

	var buf bytes.Buffer
	cli := &commandLine{out: &buf}
	require.NoError(t, cli.run([]string{"admin", "inspect", "-roster", roster}))

	assert.Contains(t, buf.String(), "2 students")
	assert.Contains(t, buf.String(), "section X: 1")
	assert.Contains(t, buf.String(), "section Y: 1")
}
