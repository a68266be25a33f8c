package assignments

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// Load reads an assignment document from a JSON file.
func Load(path string) (doc Document, err error) {
	// Read file
	var fileData []byte
	fileData, err = os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read assignments file: %s", path)
		return doc, err
	}

	// Parse JSON
	err = json.Unmarshal(fileData, &doc)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse assignments JSON: %s", path)
		return doc, err
	}

	// Validate data
	err = doc.Validate()
	if err != nil {
		err = errors.Wrap(err, "assignments validation failed")
		return doc, err
	}

	return doc, err
}

// Validate checks that the assignment document is well-formed.
func (d *Document) Validate() (err error) {
	if len(d.Assignments) == 0 {
		err = errors.New("no assignments found in document")
		return err
	}

	if d.Company == "" {
		err = errors.New("company is required")
		return err
	}

	// Validate each assignment has required fields
	for i, assignment := range d.Assignments {
		if assignment.ID == "" {
			err = errors.Errorf("assignment at index %d missing ID", i)
			return err
		}
		if assignment.Title == "" {
			err = errors.Errorf("assignment %s missing title", assignment.ID)
			return err
		}
		if assignment.Mission == "" {
			err = errors.Errorf("assignment %s missing mission", assignment.ID)
			return err
		}
	}

	return err
}
