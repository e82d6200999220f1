// Package timetable serves the per-section class timetable. The table is
// static: loaded once from an optional JSON file, falling back to the
// built-in schedule.
package timetable

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/campusmark/rollcall/core"
)

// ErrNotFound is returned for sections that have no timetable.
var ErrNotFound = errors.New("timetable not found")

type Entry struct {
	Day     string `json:"day"`
	Time    string `json:"time"`
	Subject string `json:"subject"`
	Faculty string `json:"faculty"`
	Room    string `json:"room"`
}

type Store struct {
	entries map[string][]Entry
}

// NewStore loads the timetable from path when set; a missing or malformed
// file degrades to the built-in schedule with an error log.
func NewStore(path string, logger core.Logger) *Store {
	entries := defaultEntries()
	if path != "" {
		loaded := make(map[string][]Entry)
		data, err := os.ReadFile(path)
		if err == nil {
			err = json.Unmarshal(data, &loaded)
		}
		if err != nil {
			logger.Error(fmt.Sprintf("loading timetable %s, falling back to built-in: %v", path, err), err)
		} else {
			entries = make(map[string][]Entry, len(loaded))
			for section, es := range loaded {
				entries[strings.ToUpper(section)] = es
			}
		}
	}
	return &Store{entries: entries}
}

// BySection returns the timetable of one section, case-normalized.
func (s *Store) BySection(section string) ([]Entry, error) {
	entries, ok := s.entries[strings.ToUpper(core.CleanString(section))]
	if !ok {
		return nil, ErrNotFound
	}
	return entries, nil
}

// Sections lists the sections that have a timetable, sorted.
func (s *Store) Sections() []string {
	sections := make([]string, 0, len(s.entries))
	for section := range s.entries {
		sections = append(sections, section)
	}
	sort.Strings(sections)
	return sections
}

func defaultEntries() map[string][]Entry {
	return map[string][]Entry{
		"X": {
			{Day: "Monday", Time: "09:00 - 10:00", Subject: "Operating Systems", Faculty: "Dr. A. Sharma", Room: "LH1"},
			{Day: "Monday", Time: "10:00 - 11:00", Subject: "Database Management", Faculty: "Prof. S. Roy", Room: "LH2"},
			{Day: "Tuesday", Time: "11:00 - 12:00", Subject: "Computer Networks", Faculty: "Dr. B. Sen", Room: "LH3"},
		},
		"Y": {
			{Day: "Monday", Time: "09:00 - 10:00", Subject: "Data Structures", Faculty: "Dr. P. Choudhury", Room: "LH4"},
			{Day: "Monday", Time: "10:00 - 11:00", Subject: "Algorithms", Faculty: "Prof. D. Mitra", Room: "LH5"},
			{Day: "Tuesday", Time: "11:00 - 12:00", Subject: "Software Engineering", Faculty: "Dr. S. Bhattacharjee", Room: "LH6"},
		},
	}
}
