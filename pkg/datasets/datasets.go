// Package datasets fabricates the sample data files declared by generated
// assignments. Fabrication is deterministic: the same dataset declaration
// always produces the same file, so regenerating a portal never churns data
// the candidate may already have downloaded.
package datasets

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"math/rand"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/hireloop/takehome-forge/pkg/assignments"
	"github.com/pkg/errors"
)

//nolint:gochecknoglobals // Pre-compiled slug pattern
var nonSlugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// GenerateAll fabricates every dataset declared by the document into
// outputDir and returns the written paths in declaration order.
func GenerateAll(doc assignments.Document, outputDir string) (paths []string, err error) {
	err = os.MkdirAll(outputDir, 0755)
	if err != nil {
		err = errors.Wrapf(err, "failed to create datasets directory: %s", outputDir)
		return paths, err
	}

	for _, assignment := range doc.Assignments {
		for _, dataset := range assignment.Datasets {
			var path string
			path, err = Generate(dataset, outputDir)
			if err != nil {
				err = errors.Wrapf(err, "failed to generate dataset %s for assignment %s",
					dataset.Name, assignment.ID)
				return paths, err
			}

			paths = append(paths, path)
			fmt.Printf("--- Dataset written: %s (%d records) ---\n", path, clampRecords(dataset.Records))
		}
	}

	return paths, err
}

// Generate fabricates a single dataset file and returns its path.
func Generate(dataset assignments.Dataset, outputDir string) (path string, err error) {
	if len(dataset.Columns) == 0 {
		err = errors.Errorf("dataset %s declares no columns", dataset.Name)
		return path, err
	}

	path = filepath.Join(outputDir, Filename(dataset))

	records := fabricateRecords(dataset)

	switch dataset.Format {
	case "csv":
		err = writeCSV(path, dataset.Columns, records)
	case "json":
		err = writeJSON(path, dataset.Columns, records)
	default:
		err = errors.Errorf("dataset %s has unsupported format: %s", dataset.Name, dataset.Format)
	}

	if err != nil {
		return path, err
	}

	return path, err
}

// Filename returns the on-disk name a dataset declaration maps to: the
// declared filename when present, otherwise a slug of the dataset name plus
// the format extension. Portal link resolution relies on this being stable.
func Filename(dataset assignments.Dataset) (filename string) {
	filename = dataset.Filename
	if filename == "" {
		filename = slug(dataset.Name) + "." + dataset.Format
	}
	return filename
}

// fabricateRecords builds the row values. The generator is seeded from the
// dataset name so output is stable across runs.
func fabricateRecords(dataset assignments.Dataset) (records [][]interface{}) {
	count := clampRecords(dataset.Records)

	hasher := fnv.New64a()
	_, _ = hasher.Write([]byte(dataset.Name))
	rng := rand.New(rand.NewSource(int64(hasher.Sum64())))

	records = make([][]interface{}, 0, count)
	for row := 0; row < count; row++ {
		values := make([]interface{}, 0, len(dataset.Columns))
		for _, column := range dataset.Columns {
			values = append(values, fabricateValue(column, row, rng))
		}
		records = append(records, values)
	}

	return records
}

// clampRecords bounds the record count to the declared content rule range.
func clampRecords(records int) (clamped int) {
	clamped = records
	if clamped < assignments.MinDatasetRecords {
		clamped = assignments.MinDatasetRecords
	}
	if clamped > assignments.MaxDatasetRecords {
		clamped = assignments.MaxDatasetRecords
	}
	return clamped
}

//nolint:gochecknoglobals // Fixed vocabulary for text columns
var textFragments = []string{
	"Customer reported a delay during checkout.",
	"Session completed without errors.",
	"User compared several options before purchase.",
	"Support ticket opened and resolved same day.",
	"Repeat visitor converted after a promotion.",
	"Abandoned flow resumed from a notification.",
}

// fabricateValue produces one cell value for a column. Unknown types fall
// back to string.
func fabricateValue(column assignments.Column, row int, rng *rand.Rand) (value interface{}) {
	base := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	switch column.Type {
	case "integer":
		value = rng.Intn(10000)
	case "float":
		value = float64(rng.Intn(1000000)) / 100.0
	case "boolean":
		value = rng.Intn(2) == 1
	case "date":
		value = base.AddDate(0, 0, rng.Intn(365)).Format("2006-01-02")
	case "datetime":
		value = base.Add(time.Duration(rng.Intn(365*24*3600)) * time.Second).Format("2006-01-02 15:04:05")
	case "category":
		if len(column.Choices) > 0 {
			value = column.Choices[rng.Intn(len(column.Choices))]
		} else {
			value = fmt.Sprintf("%s_%d", slug(column.Name), rng.Intn(4)+1)
		}
	case "text":
		value = textFragments[rng.Intn(len(textFragments))]
	default:
		value = fmt.Sprintf("%s_%04d", slug(column.Name), row+1)
	}

	return value
}

// writeCSV writes the header row plus one line per record.
func writeCSV(path string, columns []assignments.Column, records [][]interface{}) (err error) {
	file, err := os.Create(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to create dataset file: %s", path)
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	header := make([]string, 0, len(columns))
	for _, column := range columns {
		header = append(header, column.Name)
	}

	err = writer.Write(header)
	if err != nil {
		err = errors.Wrap(err, "failed to write CSV header")
		return err
	}

	for _, record := range records {
		row := make([]string, 0, len(record))
		for _, value := range record {
			row = append(row, fmt.Sprintf("%v", value))
		}

		err = writer.Write(row)
		if err != nil {
			err = errors.Wrap(err, "failed to write CSV record")
			return err
		}
	}

	writer.Flush()
	err = writer.Error()
	if err != nil {
		err = errors.Wrapf(err, "failed to flush CSV file: %s", path)
		return err
	}

	return err
}

// writeJSON writes the records as an array of objects keyed by column name.
func writeJSON(path string, columns []assignments.Column, records [][]interface{}) (err error) {
	rows := make([]map[string]interface{}, 0, len(records))
	for _, record := range records {
		row := make(map[string]interface{}, len(columns))
		for i, column := range columns {
			row[column.Name] = record[i]
		}
		rows = append(rows, row)
	}

	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to serialize dataset records")
		return err
	}

	err = os.WriteFile(path, append(data, '\n'), 0644)
	if err != nil {
		err = errors.Wrapf(err, "failed to write dataset file: %s", path)
		return err
	}

	return err
}

// slug lowercases a name and collapses everything non-alphanumeric to
// underscores for use in filenames.
func slug(name string) (slugged string) {
	slugged = strings.ToLower(strings.TrimSpace(name))
	slugged = nonSlugPattern.ReplaceAllString(slugged, "_")
	slugged = strings.Trim(slugged, "_")
	if slugged == "" {
		slugged = "dataset"
	}
	return slugged
}
