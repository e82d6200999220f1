package student

import (
	"bytes"
	"encoding/json"

	"github.com/campusmark/rollcall/core"
)

// Sections
const (
	SectionX = "X"
	SectionY = "Y"
)

var Sections = []string{SectionX, SectionY}

// RollNo is a roll number as found in roster files. Spreadsheet exports
// sometimes carry it as a bare number; it always compares as its string form
// (7 matches "7").
type RollNo string

func (rn *RollNo) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*rn = RollNo(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*rn = RollNo(n.String())
	return nil
}

// Student is one enrolled-roster entry. The roster is loaded once at startup
// and never mutated.
type Student struct {
	ID      int    `json:"id"`
	AdminNo string `json:"adminNo"`
	RollNo  RollNo `json:"rollNo"`
	Name    string `json:"name"`
	Section string `json:"section"`
}

// Credentials is the student login payload.
type Credentials struct {
	AdminNo string `json:"adminNo" validate:"required"`
	RollNo  string `json:"rollNo" validate:"required"`
}

func (c *Credentials) Clean() {
	c.AdminNo = core.CleanString(c.AdminNo)
	c.RollNo = core.CleanString(c.RollNo)
}
