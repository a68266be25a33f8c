package assignments

import (
	"encoding/json"

	"github.com/hireloop/takehome-forge/pkg/payload"
	"github.com/pkg/errors"
)

// Document is the structured assignment set produced for one role.
type Document struct {
	Company     string       `json:"company"`
	JobRole     string       `json:"job_role"`
	JobLevel    string       `json:"job_level"`
	Assignments []Assignment `json:"assignments"`
}

// Assignment represents a single take-home assignment.
type Assignment struct {
	ID                  string       `json:"id"`
	Title               string       `json:"title"`
	Mission             string       `json:"mission"`
	Summary             string       `json:"summary,omitempty"`
	Requirements        []string     `json:"requirements"`
	Deliverables        []string     `json:"deliverables"`
	AIGuidelines        []string     `json:"ai_guidelines"`
	Evaluation          []string     `json:"evaluation"`
	Timeline            string       `json:"timeline"`
	DiscussionQuestions []string     `json:"discussion_questions"`
	Datasets            []Dataset    `json:"datasets"`
	StarterCode         *StarterCode `json:"starter_code,omitempty"`
}

// Dataset declares a sample dataset an assignment ships with. The declared
// columns drive deterministic fabrication of the actual file.
type Dataset struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Format      string   `json:"format"`
	Records     int      `json:"records"`
	Filename    string   `json:"filename,omitempty"`
	Columns     []Column `json:"columns"`
}

// Column describes one field of a fabricated dataset.
type Column struct {
	Name        string   `json:"name"`
	Type        string   `json:"type,omitempty"`
	Description string   `json:"description,omitempty"`
	Choices     []string `json:"choices,omitempty"`
}

// StarterCode is the metadata for an assignment's starter file.
type StarterCode struct {
	Language    string `json:"language,omitempty"`
	Description string `json:"description,omitempty"`
	Filename    string `json:"filename,omitempty"`
}

// DocumentShape returns the payload shape an assignment document must
// satisfy after parsing.
func DocumentShape() (shape payload.Shape) {
	shape = payload.Shape{
		Required: []string{"company", "job_role", "job_level", "assignments"},
		ArrayKey: "assignments",
	}
	return shape
}

// FromMap converts a parsed payload document into a typed Document.
func FromMap(raw map[string]interface{}) (doc Document, err error) {
	var data []byte
	data, err = json.Marshal(raw)
	if err != nil {
		err = errors.Wrap(err, "failed to re-serialize assignment document")
		return doc, err
	}

	err = json.Unmarshal(data, &doc)
	if err != nil {
		err = errors.Wrap(err, "failed to decode assignment document")
		return doc, err
	}

	return doc, err
}
