package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/campusmark/rollcall/core/student"
	"github.com/campusmark/rollcall/storage/jsonfile"
)

// Spreadsheet exports are inconsistent about header names; accept the known
// variants (normalized to lower case).
var rosterHeaders = map[string][]string{
	"adminNo": {"admin number", "admin no", "adminno"},
	"rollNo":  {"roll number", "roll no", "rollno"},
	"name":    {"name"},
}

// convert reads a spreadsheet CSV export and writes the roster file. Rows
// missing any required column are skipped; the first sectionSplit kept rows
// go to section X, the rest to Y.
func (cli *commandLine) convert(in, out string, sectionSplit int) error {
	f, err := os.Open(in)
	if err != nil {
		return errors.Wrap(err, "opening CSV export")
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil {
		return errors.Wrap(err, "reading CSV export")
	}
	if len(rows) < 2 {
		return errors.New("CSV export has no data rows")
	}

	cols, err := mapColumns(rows[0])
	if err != nil {
		return err
	}

	var students []student.Student
	var skipped int
	for _, row := range rows[1:] {
		adminNo := strings.TrimSpace(row[cols["adminNo"]])
		rollNo := strings.TrimSpace(row[cols["rollNo"]])
		name := strings.TrimSpace(row[cols["name"]])
		if adminNo == "" || rollNo == "" || name == "" {
			skipped++
			continue
		}

		id := len(students) + 1
		section := student.SectionX
		if id > sectionSplit {
			section = student.SectionY
		}
		students = append(students, student.Student{
			ID:      id,
			AdminNo: adminNo,
			RollNo:  student.RollNo(rollNo),
			Name:    name,
			Section: section,
		})
	}

	data, err := json.MarshalIndent(students, "", "  ")
	if err != nil {
		return errors.Wrap(err, "serializing roster")
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return errors.Wrap(err, "writing roster file")
	}

	fmt.Fprintf(cli.out, "%s generated with %d records (%d rows skipped)\n", out, len(students), skipped)
	return nil
}

func mapColumns(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(rosterHeaders))
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(h))
		for field, variants := range rosterHeaders {
			for _, v := range variants {
				if h == v {
					cols[field] = i
				}
			}
		}
	}
	for field := range rosterHeaders {
		if _, ok := cols[field]; !ok {
			return nil, errors.Errorf("CSV export is missing a %q column", field)
		}
	}
	return cols, nil
}

func (cli *commandLine) inspect(rosterPath string) error {
	students, err := jsonfile.LoadRoster(rosterPath)
	if err != nil {
		return err
	}

	counts := make(map[string]int)
	for _, s := range students {
		counts[strings.ToUpper(s.Section)]++
	}

	fmt.Fprintf(cli.out, "%s: %d students\n", rosterPath, len(students))
	for _, section := range student.Sections {
		fmt.Fprintf(cli.out, "  section %s: %d\n", section, counts[section])
	}
	return nil
}
