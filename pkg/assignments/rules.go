package assignments

import "fmt"

// Content rule bounds for a generated assignment. These mirror the limits
// stated in the JSON Schema given to the model; CheckContentRules enforces
// them on the parsed result since models routinely ignore schema minimums.
const (
	MinDiscussionQuestions = 3
	MaxDiscussionQuestions = 5
	MinDatasetRecords      = 10
	MaxDatasetRecords      = 2000
	MinDatasetColumns      = 2
	MaxDatasetColumns      = 8
)

// Violation records one content rule broken by a generated assignment.
type Violation struct {
	AssignmentID string
	Rule         string
	Detail       string
}

// String formats the violation for a warning line.
func (v Violation) String() (s string) {
	s = fmt.Sprintf("assignment %s: %s: %s", v.AssignmentID, v.Rule, v.Detail)
	return s
}

// CheckContentRules validates the generated document against the content
// bounds. Violations are advisory: the document is still usable, but a human
// should review it before sending it to a candidate.
func CheckContentRules(doc Document) (violations []Violation) {
	for _, assignment := range doc.Assignments {
		count := len(assignment.DiscussionQuestions)
		if count < MinDiscussionQuestions || count > MaxDiscussionQuestions {
			violations = append(violations, Violation{
				AssignmentID: assignment.ID,
				Rule:         "DISCUSSION_QUESTION_COUNT",
				Detail: fmt.Sprintf("expected %d-%d discussion questions, got %d",
					MinDiscussionQuestions, MaxDiscussionQuestions, count),
			})
		}

		if len(assignment.Datasets) == 0 {
			violations = append(violations, Violation{
				AssignmentID: assignment.ID,
				Rule:         "DATASET_MISSING",
				Detail:       "assignment declares no datasets",
			})
		}

		for _, dataset := range assignment.Datasets {
			violations = append(violations, checkDataset(assignment.ID, dataset)...)
		}
	}

	return violations
}

func checkDataset(assignmentID string, dataset Dataset) (violations []Violation) {
	if dataset.Format != "csv" && dataset.Format != "json" {
		violations = append(violations, Violation{
			AssignmentID: assignmentID,
			Rule:         "DATASET_FORMAT",
			Detail:       fmt.Sprintf("dataset %s has unsupported format %q", dataset.Name, dataset.Format),
		})
	}

	if dataset.Records < MinDatasetRecords || dataset.Records > MaxDatasetRecords {
		violations = append(violations, Violation{
			AssignmentID: assignmentID,
			Rule:         "DATASET_RECORD_BOUNDS",
			Detail: fmt.Sprintf("dataset %s declares %d records, expected %d-%d",
				dataset.Name, dataset.Records, MinDatasetRecords, MaxDatasetRecords),
		})
	}

	columns := len(dataset.Columns)
	if columns < MinDatasetColumns || columns > MaxDatasetColumns {
		violations = append(violations, Violation{
			AssignmentID: assignmentID,
			Rule:         "DATASET_COLUMN_BOUNDS",
			Detail: fmt.Sprintf("dataset %s declares %d columns, expected %d-%d",
				dataset.Name, columns, MinDatasetColumns, MaxDatasetColumns),
		})
	}

	return violations
}
