// Package batch runs the generation pipeline for many roles at once, driven
// by a spreadsheet: one row per team/role, loaded from a Google Sheet URL, a
// local CSV, or an XLSX workbook.
package batch

import (
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// Row is one spreadsheet row describing a pipeline run.
type Row struct {
	Index        int
	Team         string
	JobRole      string
	JobLevel     string
	Language     string
	Model        string // optional per-row model override
	Topic        string // optional research topic override
	ExternalLink string // when set, the team already has a portal elsewhere
}

// HasExternalLink reports whether the row points at an existing external
// portal and should therefore be skipped.
func (r Row) HasExternalLink() (has bool) {
	normalized := strings.ToLower(strings.TrimSpace(r.ExternalLink))
	has = normalized != "" && normalized != "no" && normalized != "n" && normalized != "none"
	return has
}

//nolint:gochecknoglobals // Pre-compiled sheet URL patterns
var (
	sheetIDPattern  = regexp.MustCompile(`/d/([\w-]+)/`)
	sheetGIDPattern = regexp.MustCompile(`gid=(\d+)`)
)

// SheetCSVURL converts a Google Sheet edit-view URL into its CSV export URL.
func SheetCSVURL(sheetURL string) (csvURL string, err error) {
	match := sheetIDPattern.FindStringSubmatch(sheetURL)
	if match == nil {
		err = errors.Errorf("not a valid Google Sheet URL: %s", sheetURL)
		return csvURL, err
	}

	gid := "0"
	if gidMatch := sheetGIDPattern.FindStringSubmatch(sheetURL); gidMatch != nil {
		gid = gidMatch[1]
	}

	csvURL = fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/export?format=csv&gid=%s", match[1], gid)
	return csvURL, err
}

// FetchSheet downloads a Google Sheet as CSV and parses its rows.
func FetchSheet(ctx context.Context, sheetURL string) (rows []Row, err error) {
	csvURL, err := SheetCSVURL(sheetURL)
	if err != nil {
		return rows, err
	}

	rows, err = fetchCSV(ctx, csvURL)
	return rows, err
}

// fetchCSV downloads and parses a CSV document of pipeline rows.
func fetchCSV(ctx context.Context, csvURL string) (rows []Row, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, csvURL, nil)
	if err != nil {
		err = errors.Wrap(err, "failed to create sheet request")
		return rows, err
	}

	req.Header.Set("User-Agent", "takehome-forge/1.0")

	client := &http.Client{Timeout: 30 * time.Second}

	resp, err := client.Do(req)
	if err != nil {
		err = errors.Wrapf(err, "failed to fetch sheet: %s", csvURL)
		return rows, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err = errors.Errorf("sheet fetch failed with status: %d", resp.StatusCode)
		return rows, err
	}

	records, err := csv.NewReader(resp.Body).ReadAll()
	if err != nil {
		err = errors.Wrap(err, "failed to parse sheet CSV")
		return rows, err
	}

	rows, err = parseRecords(records)
	return rows, err
}

// LoadCSV reads pipeline rows from a local CSV file.
func LoadCSV(path string) (rows []Row, err error) {
	file, err := os.Open(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to open sheet CSV: %s", path)
		return rows, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		err = errors.Wrapf(err, "failed to parse sheet CSV: %s", path)
		return rows, err
	}

	rows, err = parseRecords(records)
	return rows, err
}

// LoadXLSX reads pipeline rows from the first sheet of an XLSX workbook.
func LoadXLSX(path string) (rows []Row, err error) {
	workbook, err := excelize.OpenFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to open workbook: %s", path)
		return rows, err
	}
	defer workbook.Close()

	sheetName := workbook.GetSheetName(0)
	if sheetName == "" {
		err = errors.Errorf("workbook has no sheets: %s", path)
		return rows, err
	}

	records, err := workbook.GetRows(sheetName)
	if err != nil {
		err = errors.Wrapf(err, "failed to read sheet %s", sheetName)
		return rows, err
	}

	rows, err = parseRecords(records)
	return rows, err
}

// LoadRows dispatches on the file extension: .xlsx goes through excelize,
// anything else is treated as CSV.
func LoadRows(path string) (rows []Row, err error) {
	if strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		rows, err = LoadXLSX(path)
		return rows, err
	}

	rows, err = LoadCSV(path)
	return rows, err
}

// parseRecords turns a header row plus data rows into pipeline rows. Rows
// without a team are skipped; level and language get defaults matching the
// interactive pipeline.
func parseRecords(records [][]string) (rows []Row, err error) {
	if len(records) == 0 {
		err = errors.New("sheet is empty")
		return rows, err
	}

	columns := map[string]int{}
	for i, name := range records[0] {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	for _, required := range []string{"team", "level"} {
		if _, ok := columns[required]; !ok {
			err = errors.Errorf("sheet is missing required column: %s", required)
			return rows, err
		}
	}

	cell := func(record []string, name string) (value string) {
		index, ok := columns[name]
		if !ok || index >= len(record) {
			return value
		}
		value = strings.TrimSpace(record[index])
		return value
	}

	for i, record := range records[1:] {
		team := cell(record, "team")
		if team == "" {
			continue
		}

		level := cell(record, "level")
		if level == "" {
			level = "Mid-level"
		}

		language := cell(record, "language")
		if language == "" {
			language = "Korean"
		}

		rows = append(rows, Row{
			Index:        i,
			Team:         team,
			JobRole:      inferJobRole(team, cell(record, "job_role")),
			JobLevel:     level,
			Language:     language,
			Model:        cleanOptional(cell(record, "model")),
			Topic:        cleanOptional(cell(record, "topic")),
			ExternalLink: cleanOptional(cell(record, "external_link")),
		})
	}

	return rows, err
}

// cleanOptional treats spreadsheet placeholder values as empty.
func cleanOptional(value string) (cleaned string) {
	switch strings.ToLower(value) {
	case "none", "null", "n/a", "na":
		cleaned = ""
	default:
		cleaned = value
	}
	return cleaned
}

// inferJobRole derives a role from the team name when the sheet omits one.
func inferJobRole(team, jobRole string) (role string) {
	if jobRole != "" {
		role = jobRole
		return role
	}

	lowered := strings.ToLower(team)
	if strings.HasSuffix(lowered, "developer") || strings.HasSuffix(lowered, "engineer") {
		role = team
		return role
	}

	role = team + " Developer"
	return role
}
